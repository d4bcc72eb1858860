// Package stock answers stock analysis requests: cache lookup, quote fetch, hosted analysis with
// local fallback, and cache write.
package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/models"
)

//go:generate mockgen -source=../../interfaces/analysis_provider.go -destination=mock_analysis_provider_test.go -package=stock

// DefaultFreshness is how long a cached record is served without recomputation
const DefaultFreshness = 5 * time.Minute

// Service implements interfaces.StockService
type Service struct {
	quotes      interfaces.QuoteProvider
	analyzer    interfaces.AnalysisProvider // nil when hosted analysis is disabled
	synthesizer interfaces.AnalysisSynthesizer
	records     interfaces.RecordStorage
	freshness   time.Duration
	now         func() time.Time
	logger      arbor.ILogger
}

// Option configures a Service
type Option func(*Service)

// WithFreshness overrides DefaultFreshness
func WithFreshness(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.freshness = d
		}
	}
}

// WithClock overrides the clock used for freshness checks
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a stock service. analyzer may be nil.
func NewService(
	quotes interfaces.QuoteProvider,
	analyzer interfaces.AnalysisProvider,
	synthesizer interfaces.AnalysisSynthesizer,
	records interfaces.RecordStorage,
	logger arbor.ILogger,
	opts ...Option,
) *Service {
	s := &Service{
		quotes:      quotes,
		analyzer:    analyzer,
		synthesizer: synthesizer,
		records:     records,
		freshness:   DefaultFreshness,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAnalysis returns the analysis for symbol, from cache when the record is fresh
func (s *Service) GetAnalysis(ctx context.Context, symbol string) (*models.StockResponse, error) {
	symbol = common.NormalizeSymbol(symbol)
	if !common.IsValidSymbol(symbol) {
		return nil, ErrInvalidSymbol
	}

	existing, err := s.records.Get(ctx, symbol)
	if err != nil && !errors.Is(err, interfaces.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	if existing != nil && s.now().Sub(existing.UpdatedAt) < s.freshness {
		s.logger.Debug().
			Str("symbol", symbol).
			Dur("age", s.now().Sub(existing.UpdatedAt)).
			Msg("Serving cached analysis")
		return models.NewStockResponse(existing), nil
	}

	quote, err := s.quotes.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Str("provider", s.quotes.Name()).Msg("Quote fetch failed")
		return nil, &NotFoundError{Symbol: symbol, Err: err}
	}
	if err := quote.Validate(); err != nil {
		return nil, fmt.Errorf("quote for %s failed validation: %w", symbol, err)
	}

	analysis := s.analyze(ctx, quote)
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("analysis for %s failed validation: %w", symbol, err)
	}

	record, err := s.store(ctx, symbol, existing, quote, analysis)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("symbol", symbol).
		Str("verdict", string(record.Verdict)).
		Int("confidence", record.Confidence).
		Msg("Analysis computed")

	return models.NewStockResponse(record), nil
}

// ValidateSymbol reports whether the quote provider can resolve symbol
func (s *Service) ValidateSymbol(ctx context.Context, symbol string) (bool, error) {
	symbol = common.NormalizeSymbol(symbol)
	if !common.IsValidSymbol(symbol) {
		return false, ErrInvalidSymbol
	}

	if _, err := s.quotes.GetQuote(ctx, symbol); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		s.logger.Debug().Err(err).Str("symbol", symbol).Msg("Symbol did not resolve")
		return false, nil
	}
	return true, nil
}

// ListAnalyses returns every cached record ordered by symbol, stale ones included
func (s *Service) ListAnalyses(ctx context.Context) ([]*models.AnalysisRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis records: %w", err)
	}
	return records, nil
}

// analyze tries the hosted provider once and falls back to the synthesizer on any failure
func (s *Service) analyze(ctx context.Context, quote *models.Quote) *models.Analysis {
	if s.analyzer != nil {
		analysis, err := s.analyzer.Analyze(ctx, quote)
		if err == nil {
			return analysis
		}
		s.logger.Warn().
			Err(err).
			Str("symbol", quote.Symbol).
			Str("provider", s.analyzer.Name()).
			Msg("Hosted analysis failed, using local synthesizer")
	}
	return s.synthesizer.Synthesize(quote)
}

func (s *Service) store(ctx context.Context, symbol string, existing *models.AnalysisRecord, quote *models.Quote, analysis *models.Analysis) (*models.AnalysisRecord, error) {
	risk := analysis.RiskFactors.OverallScore

	if existing != nil {
		record, err := s.records.Update(ctx, symbol, models.RecordUpdate{
			Quote:      quote,
			Analysis:   analysis,
			RiskScore:  &risk,
			Verdict:    &analysis.Verdict,
			Confidence: &analysis.Confidence,
		})
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, interfaces.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to update analysis record: %w", err)
		}
	}

	record, err := s.records.Put(ctx, &models.AnalysisRecord{
		Symbol:     symbol,
		Quote:      *quote,
		Analysis:   *analysis,
		RiskScore:  risk,
		Verdict:    analysis.Verdict,
		Confidence: analysis.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store analysis record: %w", err)
	}
	return record, nil
}
