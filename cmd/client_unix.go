//go:build !windows

package cmd

import (
	"context"
	"net"
	"net/http"

	"github.com/xcrond/xcrond/pkg/paths"
)

// newRPCTransport dials the daemon's unix control socket regardless of
// the request URL.
func newRPCTransport() *http.Transport {
	return &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", paths.Socket())
		},
	}
}

// pingDaemon reports whether the control socket accepts connections.
func pingDaemon() bool {
	conn, err := net.DialTimeout("unix", paths.Socket(), socketDialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
