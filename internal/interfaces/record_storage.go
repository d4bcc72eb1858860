package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/tickerlens/internal/models"
)

// ErrRecordNotFound is returned when no analysis record exists for a symbol
var ErrRecordNotFound = errors.New("analysis record not found")

// RecordStorage persists analysis records keyed case-insensitively by symbol.
// Freshness is decided by callers from UpdatedAt; the store never evicts.
type RecordStorage interface {
	// Get returns the record for symbol or ErrRecordNotFound
	Get(ctx context.Context, symbol string) (*models.AnalysisRecord, error)

	// Put creates a record, stamping ID, CreatedAt and UpdatedAt
	Put(ctx context.Context, record *models.AnalysisRecord) (*models.AnalysisRecord, error)

	// Update merges the non-nil fields of update into an existing record and restamps UpdatedAt.
	// Returns ErrRecordNotFound if no record exists.
	Update(ctx context.Context, symbol string, update models.RecordUpdate) (*models.AnalysisRecord, error)

	// List returns all records ordered by symbol
	List(ctx context.Context) ([]*models.AnalysisRecord, error)

	Close() error
}
