package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ternarybob/tickerlens/internal/app"
	"github.com/ternarybob/tickerlens/internal/common"
)

// DefaultRequestTimeout bounds a single API request when server.request_timeout is unset
const DefaultRequestTimeout = 90 * time.Second

// Server manages the HTTP server and routes
type Server struct {
	app            *app.App
	router         *chi.Mux
	server         *http.Server
	requestTimeout time.Duration
}

// New creates a new HTTP server with the given app
func New(application *app.App) *Server {
	s := &Server{
		app:            application,
		router:         chi.NewRouter(),
		requestTimeout: common.ParseDuration(application.Config.Server.RequestTimeout, DefaultRequestTimeout),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", application.Config.Server.Host, application.Config.Server.Port)
	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		// Analysis requests may wait on a subprocess and a hosted model
		WriteTimeout: s.requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.app.Logger.Info().
		Str("address", s.server.Addr).
		Msg("HTTP server starting")

	s.app.Logger.Info().
		Str("url", fmt.Sprintf("http://%s/api/stock/AAPL", s.server.Addr)).
		Msg("API available")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.app.Logger.Info().Msg("Shutting down HTTP server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.app.Logger.Info().Msg("HTTP server stopped")
	return nil
}
