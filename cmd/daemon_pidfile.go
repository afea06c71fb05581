package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xcrond/xcrond/pkg/paths"
)

// ErrDaemonAlreadyRunning indicates a live daemon already owns the PID file.
var ErrDaemonAlreadyRunning = errors.New("daemon is already running")

// getPidFilePath returns the path to the daemon PID file.
func getPidFilePath() string {
	return paths.PidFile()
}

// WritePidFile writes the current process ID to the PID file.
func WritePidFile() error {
	pid := os.Getpid()
	return os.WriteFile(getPidFilePath(), []byte(strconv.Itoa(pid)), 0644)
}

// ReadPidFile reads and returns the PID from the PID file.
func ReadPidFile() (int, error) {
	data, err := os.ReadFile(getPidFilePath())
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid PID: %d", pid)
	}
	return pid, nil
}

// RemovePidFile removes the PID file.
func RemovePidFile() error {
	err := os.Remove(getPidFilePath())
	if os.IsNotExist(err) {
		return nil // Already removed, not an error
	}
	return err
}

// CleanupStalePidFile clears a PID file left behind by a crashed
// daemon. It returns ErrDaemonAlreadyRunning when the recorded process
// is still alive, nil once no PID file stands in the way.
func CleanupStalePidFile() error {
	pid, err := ReadPidFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		// Unreadable or corrupt content counts as stale.
		return RemovePidFile()
	}
	if isProcessRunning(pid) {
		return fmt.Errorf("%w (PID %d)", ErrDaemonAlreadyRunning, pid)
	}
	return RemovePidFile()
}
