package server

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.NotFound(s.app.APIHandler.NotFoundHandler)
	s.router.MethodNotAllowed(s.app.APIHandler.MethodNotAllowedHandler)

	s.router.Route("/api", func(r chi.Router) {
		// Stock analysis; the bare prefix has an empty symbol and is rejected by the handler
		r.Get("/stock/{symbol}", s.app.StockHandler.GetStockHandler)
		r.Get("/stock/", s.app.StockHandler.GetStockHandler)

		// Symbol validation
		r.Get("/validate/{symbol}", s.app.StockHandler.ValidateHandler)
		r.Get("/validate/", s.app.StockHandler.ValidateHandler)

		// Cached analyses
		r.Get("/analyses", s.app.StockHandler.ListHandler)

		// Catalog search
		r.Get("/stocks/search", s.app.CatalogHandler.SearchHandler)

		// System
		r.Get("/version", s.app.APIHandler.VersionHandler)
		r.Get("/health", s.app.APIHandler.HealthHandler)
	})
}
