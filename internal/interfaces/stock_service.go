package interfaces

import (
	"context"

	"github.com/ternarybob/tickerlens/internal/models"
)

// StockService answers the stock and validate endpoints.
type StockService interface {
	GetAnalysis(ctx context.Context, symbol string) (*models.StockResponse, error)
	ValidateSymbol(ctx context.Context, symbol string) (bool, error)
	ListAnalyses(ctx context.Context) ([]*models.AnalysisRecord, error)
}

// CatalogService searches the built-in stock catalog.
type CatalogService interface {
	Search(query string) []models.CatalogEntry
}
