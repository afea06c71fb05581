// Package server exposes the daemon's control surface: a JSON-RPC 2.0
// endpoint bridged over HTTP on a local socket. Unix builds serve on a
// unix domain socket with owner-only permissions; Windows builds fall
// back to a loopback TCP port.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/xcrond/xcrond/pkg/logger"
)

// Server serves the JSON-RPC bridge on a local listener.
type Server struct {
	log        logger.Logger
	rpc        *RPCServer
	socketPath string
	http       *http.Server
	listener   net.Listener
}

// NewServer creates a server for the given RPC surface. socketPath is
// the unix socket to bind; Windows builds ignore it and use loopback
// TCP instead.
func NewServer(l logger.Logger, rpc *RPCServer, socketPath string) *Server {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Server{
		log:        l,
		rpc:        rpc,
		socketPath: socketPath,
	}
}

// Start binds the platform listener and begins serving on a background
// goroutine. It returns once the listener is bound.
func (s *Server) Start() error {
	ln, err := s.createListener()
	if err != nil {
		return err
	}
	s.listener = ln
	s.http = &http.Server{Handler: s.rpc.bridge}

	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error("RPC server stopped: %v", err)
		}
	}()

	s.log.Info("RPC listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound listener address, or the empty string before
// Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests, closes the bridge and removes
// the socket file where one was created.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	s.rpc.Close()
	s.cleanupListener()
	return err
}
