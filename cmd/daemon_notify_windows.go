//go:build windows

package cmd

import "github.com/xcrond/xcrond/pkg/logger"

// notifyReady is a no-op on Windows; there is no notify supervisor.
func notifyReady(logger.Logger) {}

// notifyStopping is a no-op on Windows.
func notifyStopping(logger.Logger) {}
