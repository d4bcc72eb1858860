package quotes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/eodhd"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/yahoo"
)

// NewProvider creates the quote provider selected by quotes.provider
func NewProvider(config *common.Config, logger arbor.ILogger) (interfaces.QuoteProvider, error) {
	timeout := common.ParseDuration(config.Quotes.Timeout, 30*time.Second)

	switch config.Quotes.Provider {
	case "", "script":
		if config.Quotes.Command == "" {
			return nil, fmt.Errorf("quotes.command is required for the script provider")
		}
		return NewScriptProvider(config.Quotes.Command, config.Quotes.Args, timeout, logger), nil

	case "yahoo":
		client := yahoo.NewClient(
			yahoo.WithBaseURL(config.Yahoo.BaseURL),
			yahoo.WithUserAgent(config.Yahoo.UserAgent),
			yahoo.WithHTTPClient(&http.Client{Timeout: common.ParseDuration(config.Yahoo.Timeout, 20*time.Second)}),
			yahoo.WithLogger(logger),
		)
		return NewYahooProvider(client), nil

	case "eodhd":
		apiKey, err := common.ResolveAPIKey("eodhd_api_key", config.EODHD.APIKey)
		if err != nil {
			return nil, fmt.Errorf("eodhd provider: %w", err)
		}
		opts := []eodhd.ClientOption{
			eodhd.WithLogger(logger),
			eodhd.WithRateLimit(config.EODHD.RateLimit),
		}
		if config.EODHD.BaseURL != "" {
			opts = append(opts, eodhd.WithBaseURL(config.EODHD.BaseURL))
		}
		return NewEODHDProvider(eodhd.NewClient(apiKey, opts...), logger), nil

	default:
		return nil, fmt.Errorf("unsupported quote provider: %s (expected 'script', 'yahoo' or 'eodhd')", config.Quotes.Provider)
	}
}
