package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/interfaces"
)

// NewAnalysisProvider creates the hosted analysis provider selected by llm.provider.
// It returns nil (and no error) when hosted analysis is disabled or no API key is configured;
// every request is then answered by the local synthesizer.
func NewAnalysisProvider(ctx context.Context, config *common.Config, logger arbor.ILogger) (interfaces.AnalysisProvider, error) {
	var (
		provider Provider
		timeout  time.Duration
	)

	switch config.LLM.Provider {
	case common.LLMProviderNone:
		logger.Info().Msg("Hosted analysis disabled, using local synthesizer only")
		return nil, nil

	case "", common.LLMProviderGemini:
		apiKey, err := common.ResolveAPIKey("gemini_api_key", config.Gemini.APIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini API key not configured, using local synthesizer only")
			return nil, nil
		}
		gemini, err := NewGeminiProvider(ctx, &config.Gemini, apiKey, logger)
		if err != nil {
			return nil, err
		}
		provider = gemini
		timeout = common.ParseDuration(config.Gemini.Timeout, 45*time.Second)

	case common.LLMProviderClaude:
		apiKey, err := common.ResolveAPIKey("claude_api_key", config.Claude.APIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("Claude API key not configured, using local synthesizer only")
			return nil, nil
		}
		provider = NewClaudeProvider(&config.Claude, apiKey, logger)
		timeout = common.ParseDuration(config.Claude.Timeout, 45*time.Second)

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s (expected 'gemini', 'claude' or 'none')", config.LLM.Provider)
	}

	analyzer, err := NewAnalyzer(provider, timeout, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("provider", analyzer.Name()).Dur("timeout", timeout).Msg("Hosted analysis enabled")
	return analyzer, nil
}
