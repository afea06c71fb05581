//go:build !windows

package cmd

import (
	systemd "github.com/coreos/go-systemd/v22/daemon"

	"github.com/xcrond/xcrond/pkg/logger"
)

// notifyReady tells a supervising systemd that startup is complete.
// Outside a Type=notify unit this is a silent no-op.
func notifyReady(log logger.Logger) {
	sent, err := systemd.SdNotify(false, systemd.SdNotifyReady)
	if err != nil {
		log.Warning("systemd ready notification failed: %v", err)
		return
	}
	if sent {
		log.Debug("Notified systemd: ready")
	}
}

// notifyStopping announces the beginning of shutdown to systemd.
func notifyStopping(log logger.Logger) {
	if _, err := systemd.SdNotify(false, systemd.SdNotifyStopping); err != nil {
		log.Warning("systemd stopping notification failed: %v", err)
	}
}
