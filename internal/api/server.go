// Package api implements the Narravis layout HTTP API.
//
// The API exposes the same pipeline the CLI uses:
//
//	POST /v1/layout        compute layouts for a document, persist, return them
//	GET  /v1/layouts       list recent layout records
//	GET  /v1/layouts/{id}  fetch one stored record
//	GET  /healthz          liveness probe
//
// Errors are returned as a JSON envelope with the structured error code, so
// clients can branch on the code rather than parsing messages.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/narravis/narravis/pkg/pipeline"
	"github.com/narravis/narravis/pkg/store"
)

// Config holds the server's dependencies and listen address.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Runner executes layout computations. Required.
	Runner *pipeline.Runner

	// Store persists layout records. Defaults to an in-memory store.
	Store store.Store

	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server is the layout API server.
type Server struct {
	addr   string
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server and mounts its routes.
func NewServer(cfg Config) *Server {
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		addr:   cfg.Addr,
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleCreateLayout)
		r.Get("/layouts", s.handleListLayouts)
		r.Get("/layouts/{id}", s.handleGetLayout)
	})
	s.router = r

	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
