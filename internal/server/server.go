// internal/server/server.go

// Package server is the HTTP shell around the assistant pipeline.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"inventory-assistant/internal/assistant/pipeline"
	"inventory-assistant/internal/assistant/renderer"
	"inventory-assistant/internal/common/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxRequestBody = 64 << 10
	tenantHeader   = "X-Tenant-ID"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type Server struct {
	router  *chi.Mux
	handler *pipeline.Pipeline
	checks  map[string]Check
	timeout time.Duration
	log     logger.Logger
}

type Option func(*Server)

// WithReadinessCheck adds a dependency probed by /ready.
func WithReadinessCheck(name string, check Check) Option {
	return func(s *Server) {
		s.checks[name] = check
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

func New(p *pipeline.Pipeline, log logger.Logger, opts ...Option) *Server {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	s := &Server{
		handler: p,
		checks:  make(map[string]Check),
		timeout: 25 * time.Second,
		log:     log.With(map[string]interface{}{"component": "http"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/chatbot", s.handleChat)
	r.Post("/api/v1/chat", s.handleChat)

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleChat answers 200 with a reply for any well-formed body. Only a body
// that is not JSON gets a 400, still carrying a reply.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.log.Warn("malformed chat request", map[string]interface{}{
			"requestId": middleware.GetReqID(r.Context()),
			"error":     err.Error(),
		})
		respondJSON(w, http.StatusBadRequest, pipeline.Response{
			Reply: s.handler.Renderer().Message("", renderer.MessageFailure),
		})
		return
	}
	if req.TenantID == "" {
		req.TenantID = r.Header.Get(tenantHeader)
	}

	respondJSON(w, http.StatusOK, s.handler.Handle(r.Context(), req))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	failed := make(map[string]string)
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "not ready",
			"checks": failed,
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
