package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/models"
	"github.com/ternarybob/tickerlens/internal/schemas"
)

// Analyzer implements interfaces.AnalysisProvider on top of a hosted model.
// It never retries; callers fall back to the local synthesizer on any error.
type Analyzer struct {
	provider Provider
	schema   map[string]interface{}
	timeout  time.Duration
	logger   arbor.ILogger
}

// NewAnalyzer wraps provider with the embedded analysis schema
func NewAnalyzer(provider Provider, timeout time.Duration, logger arbor.ILogger) (*Analyzer, error) {
	schema, err := schemas.LoadSchema(schemas.AnalysisSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis schema: %w", err)
	}

	return &Analyzer{
		provider: provider,
		schema:   schema,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Name identifies the hosted provider
func (a *Analyzer) Name() string {
	return string(a.provider.GetProviderType())
}

// Analyze requests an analysis of quote from the hosted model
func (a *Analyzer) Analyze(ctx context.Context, quote *models.Quote) (*models.Analysis, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := a.provider.GenerateContent(ctx, &ContentRequest{
		Prompt:            BuildPrompt(quote),
		SystemInstruction: systemInstruction,
		OutputSchema:      a.schema,
	})
	if err != nil {
		return nil, err
	}

	analysis, err := ParseAnalysis(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("%s returned an unusable analysis: %w", resp.Provider, err)
	}

	a.logger.Debug().
		Str("symbol", quote.Symbol).
		Str("provider", string(resp.Provider)).
		Str("model", resp.Model).
		Dur("duration", time.Since(start)).
		Str("verdict", string(analysis.Verdict)).
		Msg("Hosted analysis complete")

	return analysis, nil
}
