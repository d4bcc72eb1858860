package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/interfaces"
)

// CatalogHandler serves stock search over the built-in catalog
type CatalogHandler struct {
	catalog interfaces.CatalogService
	logger  arbor.ILogger
}

func NewCatalogHandler(catalog interfaces.CatalogService, logger arbor.ILogger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// SearchHandler handles GET /api/stocks/search?q=
func (h *CatalogHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := h.catalog.Search(query)

	h.logger.Debug().Str("query", query).Int("results", len(results)).Msg("Catalog search")
	WriteJSON(w, http.StatusOK, results)
}
