package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/xcrond/xcrond/cmd/common"
)

const socketPollInterval = 50 * time.Millisecond

func start(ctx *cli.Context) error {
	if pid, err := ReadPidFile(); err == nil && isProcessRunning(pid) {
		fmt.Printf("xcrond daemon is already running (PID %d)\n", pid)
		return nil
	}
	if pingDaemon() {
		fmt.Println("xcrond daemon is already running")
		return nil
	}

	if err := spawnDaemon(); err != nil {
		common.PrintRuntimeErr(ctx, "start", "spawn_daemon", err)
		return nil
	}
	if err := waitForSocket(DEF_START_TIMEOUT); err != nil {
		common.PrintRuntimeErr(ctx, "start", "wait_socket", err)
		return nil
	}

	// The daemon writes its pidfile before serving the socket.
	if pid, err := ReadPidFile(); err == nil {
		fmt.Printf("xcrond daemon started (PID %d)\n", pid)
	} else {
		fmt.Println("xcrond daemon started")
	}
	return nil
}

// waitForSocket polls until the control socket accepts connections or
// the timeout expires.
func waitForSocket(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if pingDaemon() {
			return nil
		}
		time.Sleep(socketPollInterval)
	}
	return fmt.Errorf("daemon failed to start within %v", timeout)
}
