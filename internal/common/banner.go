package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and logs the resolved providers.
func PrintBanner(config *Config, logger arbor.ILogger) {
	banner.PrintSimple("TickerLens", GetVersion())

	logger.Info().
		Str("version", GetVersion()).
		Str("quotes", config.Quotes.Provider).
		Str("llm", string(config.LLM.Provider)).
		Str("profile", config.Analysis.Profile).
		Str("storage", config.Storage.Type).
		Msg("TickerLens starting")
}
