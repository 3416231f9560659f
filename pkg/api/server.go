// Package api serves a read-only HTTP view over a directory of state
// archives: file listings, decoded headers, printed states, health and
// Prometheus metrics. It never mutates archives.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// Server handles inspection requests over a data directory of archives
type Server struct {
	space   space.Space
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new inspection server
func NewServer(sp space.Space, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		space:   sp,
		config:  config,
		metrics: metrics,
	}
}

// Router builds the chi router with all routes configured
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Get("/archives", s.metrics.InstrumentHandler("GET", "/api/v1/archives", s.handleListArchives))
		r.Get("/archives/{name}", s.metrics.InstrumentHandler("GET", "/api/v1/archives/{name}", s.handleArchiveInfo))
		r.Get("/archives/{name}/states", s.metrics.InstrumentHandler("GET", "/api/v1/archives/{name}/states", s.handleArchiveStates))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(sp space.Space, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(sp, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting statebank inspection API on %s (data dir %s)\n", addr, config.DataDir)
	return http.ListenAndServe(addr, server.Router())
}
