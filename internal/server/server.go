package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"skidoodle/spotify-badge/internal/spotify"
)

const shutdownTimeout = 10 * time.Second

// Source resolves the track the badge should show.
type Source interface {
	Latest(ctx context.Context) (*spotify.Playback, error)
}

// Server serves the badge over HTTP.
type Server struct {
	addr       string
	httpServer *http.Server
	source     Source
}

// NewServer creates a new badge server.
func NewServer(addr string, source Source) *Server {
	return &Server{
		addr:   addr,
		source: source,
	}
}

// Handler returns the routes served by the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/", s.badgeHandler)
	return logRequests(mux)
}

// Run starts the server and blocks until ctx is cancelled or it fails.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received, stopping http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown error", "error", err)
		}
	}()

	slog.Info("http server listening", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
