//go:build !windows

package server

import (
	"fmt"
	"net"
	"os"
)

// createListener binds the unix domain socket, replacing any stale
// socket file a crashed daemon left behind. Permissions are tightened
// to the owner: holding the socket is what authorizes control of the
// daemon.
func (s *Server) createListener() (net.Listener, error) {
	_ = os.Remove(s.socketPath)
	l, err := net.ListenUnix("unix", &net.UnixAddr{
		Name: s.socketPath,
		Net:  "unix",
	})
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", s.socketPath, err)
	}
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		l.Close()
		_ = os.Remove(s.socketPath)
		return nil, fmt.Errorf("error securing socket %s: %w", s.socketPath, err)
	}
	return l, nil
}

// cleanupListener removes the socket file after shutdown.
func (s *Server) cleanupListener() {
	_ = os.Remove(s.socketPath)
}
