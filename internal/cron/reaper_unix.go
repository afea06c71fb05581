//go:build !windows

package cron

import (
	"golang.org/x/sys/unix"

	"github.com/xcrond/xcrond/internal/history"
)

// reapOne performs a single non-blocking wait for any child. It
// returns true when a child was collected and another may be pending.
//
// Waiting on pid -1 is safe here because the daemon never calls Wait
// on the processes it spawns; the reaper is the only collector.
func (r *Reaper) reapOne() bool {
	var ws unix.WaitStatus
	pid, err := unix.Wait4(-1, &ws, unix.WNOHANG|unix.WUNTRACED, nil)
	switch {
	case err == unix.EINTR:
		return true
	case err == unix.ECHILD:
		r.log.Info("[Reaper] No childs present")
		return false
	case err != nil:
		r.log.Error("[Reaper] Wait failed: %v", err)
		return false
	case pid == 0:
		// Children exist but none has terminated yet.
		return false
	}
	r.collect(pid, ws)
	return true
}

// collect logs one collected child and persists its outcome.
func (r *Reaper) collect(pid int, ws unix.WaitStatus) {
	switch {
	case ws.Exited():
		r.log.Info("[Reaper] Process %d exited with code %d", pid, ws.ExitStatus())
		r.persist(pid, history.OutcomeExited, ws.ExitStatus())
	case ws.Signaled():
		r.log.Info("[Reaper] Process %d signaled to stop with %s", pid, unix.SignalName(ws.Signal()))
		r.persist(pid, history.OutcomeSignaled, int(ws.Signal()))
	case ws.Stopped():
		r.log.Info("[Reaper] Process %d stopped by signal %s", pid, unix.SignalName(ws.StopSignal()))
		r.persist(pid, history.OutcomeStopped, int(ws.StopSignal()))
	}
}
