package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/logandonley/fontlist/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server runs the bridge router on a local address
type Server struct {
	logger   *slog.Logger
	listener net.Listener
	http     *http.Server
	done     chan error
	started  bool
}

// NewServer binds addr and prepares the HTTP server. Use "127.0.0.1:0" to
// pick a free port.
func NewServer(addr string, cfg RouterConfig) (*Server, error) {
	if cfg.App == nil {
		return nil, errors.New("bridge server requires an app")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
		cfg.Logger = logger
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	return &Server{
		logger:   logger,
		listener: listener,
		http: &http.Server{
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: 10 * time.Second,
		},
		done: make(chan error, 1),
	}, nil
}

// Addr returns the address the server is listening on
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves requests in the background
func (s *Server) Start() {
	s.started = true
	s.logger.Info("bridge listening", slog.String("addr", s.Addr()))
	go func() {
		err := s.http.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.started {
		return s.listener.Close()
	}
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down bridge: %w", err)
	}
	return <-s.done
}

// ListenAndServe runs the server until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.Start()
	select {
	case err := <-s.done:
		if err != nil {
			return fmt.Errorf("serving bridge: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("bridge shutting down")
	return s.Shutdown(shutdownCtx)
}
