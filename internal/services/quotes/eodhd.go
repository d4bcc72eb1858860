package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/eodhd"
	"github.com/ternarybob/tickerlens/internal/models"
)

// EODHDProvider builds quotes from the EODHD real-time and fundamentals endpoints
type EODHDProvider struct {
	client *eodhd.Client
	logger arbor.ILogger
}

// NewEODHDProvider wraps an EODHD client
func NewEODHDProvider(client *eodhd.Client, logger arbor.ILogger) *EODHDProvider {
	return &EODHDProvider{client: client, logger: logger}
}

// Name identifies the provider
func (p *EODHDProvider) Name() string {
	return "eodhd"
}

// GetQuote fetches a live quote for symbol and completes it from fundamentals.
// Symbols may carry an exchange ("NSE:RELIANCE"); bare symbols are looked up on US exchanges.
func (p *EODHDProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	ticker := common.ParseTicker(symbol)
	code := ticker.EODHDSymbol()

	rt, err := p.client.GetRealTimeQuote(ctx, code)
	if err != nil {
		var apiErr *eodhd.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, code)
		}
		return nil, err
	}
	if !rt.Valid() {
		return nil, fmt.Errorf("%w: no price for %s", ErrSymbolNotFound, code)
	}

	quote := &models.Quote{
		Symbol:        common.NormalizeSymbol(symbol),
		CompanyName:   ticker.Code,
		CurrentPrice:  common.RoundPrice(float64(rt.Close)),
		ChangeAmount:  common.RoundPrice(float64(rt.Change)),
		ChangePercent: common.RoundPrice(float64(rt.ChangePercent)),
		Volume:        common.FormatNumber(float64(rt.Volume)),
		MarketCap:     common.FormatNumber(0),
		WeekHigh52:    common.RoundPrice(float64(rt.Close)),
		WeekLow52:     common.RoundPrice(float64(rt.Close)),
		Exchange:      ticker.Exchange,
	}

	// Fundamentals are optional; a plan without access still yields a usable quote
	f, err := p.client.GetFundamentals(ctx, code)
	if err != nil {
		p.logger.Warn().Err(err).Str("symbol", code).Msg("Fundamentals unavailable, using real-time data only")
		return quote, nil
	}

	if f.General != nil {
		if f.General.Name != "" {
			quote.CompanyName = f.General.Name
		}
		if f.General.Exchange != "" {
			quote.Exchange = f.General.Exchange
		}
	}
	if f.Highlights != nil {
		quote.MarketCap = common.FormatNumber(float64(f.Highlights.MarketCapitalization))
	}
	if f.Technicals != nil && f.Technicals.FiftyTwoWeekHigh > 0 {
		quote.WeekHigh52 = common.RoundPrice(float64(f.Technicals.FiftyTwoWeekHigh))
		quote.WeekLow52 = common.RoundPrice(float64(f.Technicals.FiftyTwoWeekLow))
	}

	return quote, nil
}
