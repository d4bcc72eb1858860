package interfaces

import (
	"context"

	"github.com/ternarybob/tickerlens/internal/models"
)

// AnalysisProvider produces an investment analysis from a hosted model.
// Implementations may fail; callers fall back to an AnalysisSynthesizer.
type AnalysisProvider interface {
	Analyze(ctx context.Context, quote *models.Quote) (*models.Analysis, error)
	Name() string
}

// AnalysisSynthesizer produces an analysis locally. It never fails for a validated quote.
type AnalysisSynthesizer interface {
	Synthesize(quote *models.Quote) *models.Analysis
}
