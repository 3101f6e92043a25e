// Package web serves the leaderboard as a read-only JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skyhop-dev/skyhop/internal/registry"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Addr   string
	DBPath string
}

// DefaultServerConfig returns default HTTP server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:   ":8080",
		DBPath: storage.DefaultPath,
	}
}

// Server is the leaderboard HTTP server.
type Server struct {
	store  *storage.Store
	logger *log.Logger
	srv    *http.Server
}

// NewServer creates a server reading from store.
func NewServer(addr string, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{store: store, logger: logger}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Routes configures all routes and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/games", s.listGames)
		r.Get("/scores/{game}", s.topScores)
		r.Get("/stats/{game}", s.gameStats)
		r.Get("/runs", s.recentRuns)
	})

	return r
}

// ListenAndServe starts the server. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Starting HTTP server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.srv.Shutdown(ctx)
}

// requestLogger logs one line per request with its status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// gameSummary is one entry of GET /api/games.
type gameSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	HighScore int    `json:"high_score"`
}

// listGames handles GET /api/games
func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]gameSummary, 0, len(games))
	for _, g := range games {
		high, err := s.store.HighScore(g.ID)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		out = append(out, gameSummary{ID: g.ID, Title: g.Title, HighScore: high})
	}
	respondJSON(w, http.StatusOK, out)
}

// topScores handles GET /api/scores/{game}
func (s *Server) topScores(w http.ResponseWriter, r *http.Request) {
	gameID, ok := s.knownGame(w, r)
	if !ok {
		return
	}

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	scores, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	respondJSON(w, http.StatusOK, scores)
}

// gameStats handles GET /api/stats/{game}
func (s *Server) gameStats(w http.ResponseWriter, r *http.Request) {
	gameID, ok := s.knownGame(w, r)
	if !ok {
		return
	}

	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// recentRuns handles GET /api/runs
func (s *Server) recentRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if runs == nil {
		runs = []storage.RunRecord{}
	}
	respondJSON(w, http.StatusOK, runs)
}

func (s *Server) knownGame(w http.ResponseWriter, r *http.Request) (string, bool) {
	gameID := chi.URLParam(r, "game")
	if !registry.Exists(gameID) {
		respondError(w, http.StatusNotFound, "unknown game")
		return "", false
	}
	return gameID, true
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

// parseLimit reads the optional ?limit= query, capped at maxLimit.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		respondError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return min(limit, maxLimit), true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
