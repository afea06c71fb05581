//go:build windows

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/xcrond/xcrond/pkg/logger"
)

// setupShutdownHandler sets up signal handling for graceful shutdown.
// It returns a context that is canceled when an interrupt signal is
// received. On Windows, syscall.SIGTERM is not available, so we use
// os.Interrupt only.
func setupShutdownHandler(log logger.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		signal.Stop(sigChan) // Unregister handler to prevent leak
		log.Info("Terminate signal received. Exiting.")
		cancel()
	}()

	return ctx, cancel
}
