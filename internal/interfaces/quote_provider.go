package interfaces

import (
	"context"

	"github.com/ternarybob/tickerlens/internal/models"
)

// QuoteProvider fetches a market snapshot for a ticker symbol.
type QuoteProvider interface {
	// GetQuote returns the quote for symbol. Any error means the symbol could not be resolved.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// Name identifies the provider in logs
	Name() string
}
