//go:build windows

package cmd

import (
	"context"
	"net"
	"net/http"

	"github.com/xcrond/xcrond/pkg/paths"
)

// newRPCTransport dials the daemon's loopback TCP fallback.
func newRPCTransport() *http.Transport {
	return &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "tcp", paths.TCPFallbackAddr)
		},
	}
}

// pingDaemon reports whether the control endpoint accepts connections.
func pingDaemon() bool {
	conn, err := net.DialTimeout("tcp", paths.TCPFallbackAddr, socketDialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
