// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apihandler "github.com/newthinker/tacall/internal/api/handler/api"
	"github.com/newthinker/tacall/internal/api/job"
	"github.com/newthinker/tacall/internal/api/middleware"
	"github.com/newthinker/tacall/internal/metrics"
	"github.com/newthinker/tacall/internal/storage/archive"
	"github.com/newthinker/tacall/internal/ta"
	"go.uber.org/zap"
)

// Server represents the HTTP server for tacall
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	APIKey       string
	MetricsPath  string // empty disables the metrics endpoint
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
	RateLimit    float64 // requests per second, 0 disables
	RateBurst    int
}

// Dependencies holds the components the handlers serve. Results and
// Metrics may be nil.
type Dependencies struct {
	Adapter *ta.Adapter
	Results *archive.ResultStore
	Jobs    *job.Store
	Metrics *metrics.Registry
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if deps.Adapter == nil {
		return nil, fmt.Errorf("server requires an adapter")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Jobs == nil {
		deps.Jobs = job.NewStore(100, time.Hour)
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 60 * time.Second
	}

	mux := http.NewServeMux()
	s := &Server{
		logger: logger,
		mux:    mux,
	}
	s.setupRoutes(cfg, deps)

	var handler http.Handler = mux
	if cfg.MaxBodyBytes > 0 {
		handler = limitBody(cfg.MaxBodyBytes, handler)
	}
	handler = middleware.APIKeyAuth(cfg.APIKey, "/api/health", cfg.MetricsPath)(handler)
	handler = middleware.RateLimit(cfg.RateLimit, cfg.RateBurst, logger)(handler)
	if deps.Metrics != nil {
		handler = metrics.HTTPMiddleware(deps.Metrics, mux)(handler)
	}
	handler = metrics.LoggingMiddleware(logger)(handler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cfg Config, deps Dependencies) {
	functions := apihandler.NewFunctionsHandler(deps.Adapter.Catalog(), deps.Adapter)
	s.mux.HandleFunc("GET /api/v1/functions", functions.List)
	s.mux.HandleFunc("GET /api/v1/functions/{name}", functions.Get)

	var store apihandler.Archive
	if deps.Results != nil {
		store = deps.Results
	}
	compute := apihandler.NewComputeHandler(deps.Adapter, store, deps.Jobs, s.logger)
	s.mux.HandleFunc("POST /api/v1/compute/{name}", compute.Compute)
	s.mux.HandleFunc("POST /api/v1/batch", compute.Batch)
	s.mux.HandleFunc("GET /api/v1/jobs/{id}", compute.JobStatus)

	if deps.Results != nil {
		results := apihandler.NewResultsHandler(deps.Results, deps.Adapter.Catalog())
		s.mux.HandleFunc("GET /api/v1/results/{func}", results.List)
		s.mux.HandleFunc("GET /api/v1/results/{func}/{id}", results.Get)
	}

	if deps.Metrics != nil && cfg.MetricsPath != "" {
		s.mux.Handle("GET "+cfg.MetricsPath, deps.Metrics.Handler())
	}

	s.mux.HandleFunc("GET /api/health", s.handleHealth)
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func limitBody(n int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		next.ServeHTTP(w, r)
	})
}
