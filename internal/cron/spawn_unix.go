//go:build !windows

package cron

import "syscall"

// spawnAttrs places each child in its own process group so terminal
// signals aimed at the daemon never reach running jobs.
func spawnAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
