package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/markov"
)

const (
	// MaxWalksPerRequest bounds the count query parameter.
	MaxWalksPerRequest = 100
	// MaxWalkLength bounds the max query parameter.
	MaxWalkLength = 1000
)

// Generator defines what the HTTP surface needs from a chain.
type Generator interface {
	Walks(ctx context.Context, count, maxLength int) ([]WalkResponse, error)
	Mermaid() string
	Healthy() error
}

// Server exposes a Generator over HTTP.
type Server struct {
	Generator     Generator
	DefaultLength int
}

// NewHandler creates the chi router for gen. Walks default to defaultLength
// states, clamped to [1, MaxWalkLength]. metrics, when not nil, is mounted on
// /metrics.
func NewHandler(gen Generator, defaultLength int, metrics http.Handler) http.Handler {
	server := &Server{Generator: gen, DefaultLength: min(max(defaultLength, 1), MaxWalkLength)}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/walks", server.Walks)
	r.Get("/graph", server.Graph)
	r.Get("/healthz", server.Health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Walks handles GET /walks?count=N&max=L.
func (s *Server) Walks(w http.ResponseWriter, r *http.Request) {
	count, err := intParam(r, "count", 1, MaxWalksPerRequest)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Warn("Walks: invalid count", "error", err)
		return
	}
	maxLength, err := intParam(r, "max", s.DefaultLength, MaxWalkLength)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Warn("Walks: invalid max", "error", err)
		return
	}

	walks, err := s.Generator.Walks(r.Context(), count, maxLength)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, markov.ErrNoStartState) || errors.Is(err, markov.ErrNoTransitions) {
			status = http.StatusConflict
		}
		http.Error(w, fmt.Sprintf("Walk error: %v", err), status)
		slog.Error("Walks failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(walks); err != nil {
		slog.Error("Walks response encode failed", "error", err)
	}
}

// Graph handles GET /graph.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.Generator.Mermaid()))
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.Generator.Healthy(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// intParam reads a positive integer query parameter bounded by limit.
func intParam(r *http.Request, name string, def, limit int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > limit {
		return 0, fmt.Errorf("%s must be an integer between 1 and %d", name, limit)
	}
	return v, nil
}
