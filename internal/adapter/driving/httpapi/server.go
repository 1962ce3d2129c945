package httpapi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/gorilla/handlers"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the dashboard over HTTP until its context is cancelled.
type Server struct {
	console types.ConsoleInterface
	http    *http.Server
}

// NewServer monta o servidor com log de acesso no formato Common Log.
func NewServer(dashboard Dashboard, charts repository.ChartRepository, console types.ConsoleInterface, accessLog io.Writer) *Server {
	router := NewRouter(dashboard, charts)
	return &Server{
		console: console,
		http: &http.Server{
			Handler:           handlers.LoggingHandler(accessLog, router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Serve listens on addr and blocks until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on an already open listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.console.LogInfo("Dashboard API listening on %s", ln.Addr())
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.console.LogInfo("Shutting down dashboard API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
