//go:build windows

package server

import (
	"fmt"
	"net"

	"github.com/xcrond/xcrond/pkg/paths"
)

// createListener binds the loopback TCP fallback used on Windows.
func (s *Server) createListener() (net.Listener, error) {
	l, err := net.Listen("tcp", paths.TCPFallbackAddr)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", paths.TCPFallbackAddr, err)
	}
	return l, nil
}

// cleanupListener has nothing to remove on Windows.
func (s *Server) cleanupListener() {}
