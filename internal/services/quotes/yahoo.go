package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/tickerlens/internal/models"
	"github.com/ternarybob/tickerlens/internal/yahoo"
)

// YahooProvider fetches quotes in-process from Yahoo Finance
type YahooProvider struct {
	client *yahoo.Client
}

// NewYahooProvider wraps a Yahoo client
func NewYahooProvider(client *yahoo.Client) *YahooProvider {
	return &YahooProvider{client: client}
}

// Name identifies the provider
func (p *YahooProvider) Name() string {
	return "yahoo"
}

// GetQuote fetches the quote for symbol
func (p *YahooProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	quote, err := p.client.GetQuote(ctx, symbol)
	if errors.Is(err, yahoo.ErrNoData) {
		return nil, fmt.Errorf("%w: %v", ErrSymbolNotFound, err)
	}
	return quote, err
}
