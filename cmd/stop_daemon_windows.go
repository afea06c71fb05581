//go:build windows

package cmd

import (
	"fmt"
	"os"
	"time"
)

// killDaemon asks the daemon to exit and falls back to a hard kill
// when it does not shut down within the timeout.
func killDaemon(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process not found: %w", err)
	}

	if err := process.Signal(os.Interrupt); err != nil {
		// Interrupt delivery is unreliable on Windows, go straight to Kill
		return process.Kill()
	}

	done := make(chan error, 1)
	go func() {
		_, err := process.Wait()
		done <- err
	}()

	select {
	case <-done:
		return nil
	case <-time.After(DEF_STOP_TIMEOUT):
		fmt.Println("Graceful shutdown timeout, forcing kill...")
		return process.Kill()
	}
}
