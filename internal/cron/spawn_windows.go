//go:build windows

package cron

import "syscall"

// spawnAttrs returns no special attributes on Windows; children are
// ordinary detached processes.
func spawnAttrs() *syscall.SysProcAttr {
	return nil
}
