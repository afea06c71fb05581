package cron

import (
	"os/exec"

	"github.com/xcrond/xcrond/pkg/cronlib"
)

// DefaultSpawn launches the job's command fully detached: stdio wired
// to the null device and no Wait on the handle. The exit status is
// collected later by the reaper through the process table, never here.
func DefaultSpawn(job cronlib.Job) (int, error) {
	cmd := exec.Command(job.Path, job.Args[1:]...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = spawnAttrs()
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Drop the handle so nothing here ever waits on the child.
	_ = cmd.Process.Release()
	return pid, nil
}
