package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"skidoodle/spotify-badge/internal/badge"
	"skidoodle/spotify-badge/internal/logging"
	"skidoodle/spotify-badge/internal/spotify"
)

const (
	contentTypeSVG  = "image/svg+xml"
	contentTypeJSON = "application/json"
	cacheControl    = "s-maxage=1, stale-while-revalidate"
)

type errorResponse struct {
	Error string `json:"error"`
}

// badgeHandler answers every method and path with the current badge.
func (s *Server) badgeHandler(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			slog.Error("badge handler panicked", logging.Err(err))
			writeError(w, err)
		}
	}()

	playback, err := s.source.Latest(r.Context())
	if err != nil {
		slog.Error("failed to build badge", logging.Err(err))
		writeError(w, err)
		return
	}

	var track *spotify.TrackItem
	isPlaying := false
	if playback != nil {
		track = playback.Track
		isPlaying = playback.IsPlaying
	}

	svg := badge.Render(track, isPlaying)

	w.Header().Set("Content-Type", contentTypeSVG)
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		slog.Warn("failed to write badge response", "error", err)
	}
}

// writeError reports err to the caller as a JSON 500.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); err != nil {
		slog.Warn("failed to write error response", "error", err)
	}
}

// healthHandler responds to Docker health checks.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Warn("failed to write health check response", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
