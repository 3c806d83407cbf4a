package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Timeouts bounds request handling on a server.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

// Server is an HTTP listener with an explicit Start/Shutdown lifecycle.
type Server struct {
	name   string
	srv    *http.Server
	logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	errCh    chan error
}

// New creates a server; nothing is bound until Start.
func New(name, addr string, handler http.Handler, timeouts Timeouts, logger *slog.Logger) *Server {
	return &Server{
		name: name,
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  timeouts.Read,
			WriteTimeout: timeouts.Write,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		logger: logger,
		errCh:  make(chan error, 1),
	}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned directly; later serve failures are delivered on Err.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("%s server already started", s.name)
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	s.listener = ln

	s.logger.Info("server listening", "server", s.name, "address", ln.Addr().String())

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed", "server", s.name, "error", err)
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

// Err is closed when the server stops; it carries the error if serving failed.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server...", "server", s.name)

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", s.name, err)
	}
	return nil
}

// Wait blocks until ctx is done or one of the servers fails while serving.
// It returns the first serve failure, or nil when ctx ended the wait.
// Nil servers are ignored.
func Wait(ctx context.Context, servers ...*Server) error {
	failed := make(chan error, len(servers))
	for _, s := range servers {
		if s == nil {
			continue
		}
		go func(s *Server) {
			if err, ok := <-s.Err(); ok {
				failed <- fmt.Errorf("%s server: %w", s.name, err)
			}
		}(s)
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-failed:
		return err
	}
}
