package stock

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/models"
	"github.com/ternarybob/tickerlens/internal/services/analysis"
	"github.com/ternarybob/tickerlens/internal/storage/memory"
)

// mockQuoteProvider serves quotes from a map and counts lookups
type mockQuoteProvider struct {
	quotes map[string]*models.Quote
	calls  int
}

func (m *mockQuoteProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	m.calls++
	q, ok := m.quotes[symbol]
	if !ok {
		return nil, errors.New("exit status 1: No price data available")
	}
	c := *q
	return &c, nil
}

func (m *mockQuoteProvider) Name() string { return "mock" }

// mockAnalyzer returns a fixed analysis or error
type mockAnalyzer struct {
	analysis *models.Analysis
	err      error
	calls    int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, quote *models.Quote) (*models.Analysis, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	a := *m.analysis
	return &a, nil
}

func (m *mockAnalyzer) Name() string { return "mock-llm" }

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func appleQuote() *models.Quote {
	return &models.Quote{
		Symbol: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: 190.25, ChangeAmount: 2.25, ChangePercent: 1.2,
		Volume: "55.0M", MarketCap: "2.9T", WeekHigh52: 199.62, WeekLow52: 164.08, Exchange: "NMS",
	}
}

func hostedAnalysis() *models.Analysis {
	return &models.Analysis{
		Verdict:         models.VerdictBuy,
		Confidence:      81,
		Summary:         "Hosted analysis",
		ReasoningPoints: []models.ReasoningPoint{{Title: "t", Description: "d", Type: models.ReasoningPositive}},
		TechnicalIndicators: models.TechnicalIndicators{
			RSI: "60 (Bullish)", MACD: "Positive", MovingAverage: "Above", VolumeTrend: "Rising",
		},
		FundamentalFactors: models.FundamentalFactors{
			PERatio: "30", RevenueGrowth: "+8%", ProfitMargin: "25%", DebtToEquity: "1.5",
		},
		RiskFactors: models.RiskFactors{OverallScore: 3.2},
		Timeline: models.Timeline{
			ShortTerm:  models.Outlook{Outlook: "BULLISH", Sentiment: "s", Description: "d"},
			MediumTerm: models.Outlook{Outlook: "POSITIVE", Sentiment: "s", Description: "d"},
			LongTerm:   models.Outlook{Outlook: "OPTIMISTIC", Sentiment: "s", Description: "d"},
			Catalysts:  []string{"Earnings"},
		},
		MarketContext: models.MarketContext{
			SectorPerformance: "+1%", SPYPerformance: "+1%", VIXLevel: "15", SentimentSummary: "calm",
		},
	}
}

type fixture struct {
	service  *Service
	quotes   *mockQuoteProvider
	analyzer *mockAnalyzer
	records  *memory.RecordStorage
	clock    *clock
}

func newFixture(analyzer *mockAnalyzer) *fixture {
	logger := arbor.NewLogger()
	c := &clock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	quotes := &mockQuoteProvider{quotes: map[string]*models.Quote{"AAPL": appleQuote()}}
	records := memory.NewRecordStorage(logger, memory.WithClock(c.Now))
	synth := analysis.NewSynthesizer(analysis.StandardProfile(), analysis.NewRandomSource(7), nil)

	f := &fixture{quotes: quotes, analyzer: analyzer, records: records, clock: c}
	if analyzer != nil {
		f.service = NewService(quotes, analyzer, synth, records, logger, WithClock(c.Now))
	} else {
		// a nil *mockAnalyzer must not reach the interface
		f.service = NewService(quotes, nil, synth, records, logger, WithClock(c.Now))
	}
	return f
}

func TestGetAnalysis_HostedProvider(t *testing.T) {
	f := newFixture(&mockAnalyzer{analysis: hostedAnalysis()})

	resp, err := f.service.GetAnalysis(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", resp.StockData.Symbol)
	assert.Equal(t, "Hosted analysis", resp.AIAnalysis.Summary)
	assert.Equal(t, models.VerdictBuy, resp.Verdict)
	assert.Equal(t, 81, resp.Confidence)
	assert.Equal(t, 3.2, resp.RiskScore)
}

func TestGetAnalysis_FallbackOnProviderFailure(t *testing.T) {
	f := newFixture(&mockAnalyzer{err: errors.New("503 service unavailable")})

	resp, err := f.service.GetAnalysis(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 1, f.analyzer.calls)
	assert.Equal(t, models.VerdictHold, resp.Verdict)
	assert.True(t, strings.HasPrefix(resp.AIAnalysis.Summary, "AAPL presents a balanced investment profile"))
	assert.Equal(t, resp.AIAnalysis.RiskFactors.OverallScore, resp.RiskScore)
	assert.Equal(t, resp.AIAnalysis.Confidence, resp.Confidence)
	require.NoError(t, resp.AIAnalysis.Validate())
}

func TestGetAnalysis_NoHostedProvider(t *testing.T) {
	f := newFixture(nil)

	resp, err := f.service.GetAnalysis(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.VerdictHold, resp.Verdict)
}

func TestGetAnalysis_Freshness(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.service.GetAnalysis(ctx, "AAPL")
	require.NoError(t, err)
	require.Equal(t, 1, f.quotes.calls)

	f.clock.t = f.clock.t.Add(4*time.Minute + 59*time.Second)
	_, err = f.service.GetAnalysis(ctx, "aapl")
	require.NoError(t, err)
	assert.Equal(t, 1, f.quotes.calls, "served from cache within window")

	f.clock.t = f.clock.t.Add(2 * time.Second)
	_, err = f.service.GetAnalysis(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2, f.quotes.calls, "recomputed once stale")
}

func TestGetAnalysis_StaleRecordIsUpdatedInPlace(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.service.GetAnalysis(ctx, "AAPL")
	require.NoError(t, err)
	first, err := f.records.Get(ctx, "AAPL")
	require.NoError(t, err)

	f.clock.t = f.clock.t.Add(10 * time.Minute)
	f.quotes.quotes["AAPL"].CurrentPrice = 200

	resp, err := f.service.GetAnalysis(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 200.0, resp.StockData.CurrentPrice)

	second, err := f.records.Get(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, f.clock.t, second.UpdatedAt)

	records, err := f.records.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListAnalyses(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	records, err := f.service.ListAnalyses(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = f.service.GetAnalysis(ctx, "aapl")
	require.NoError(t, err)

	records, err = f.service.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AAPL", records[0].Symbol)
	assert.Equal(t, models.VerdictHold, records[0].Verdict)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	f := newFixture(&mockAnalyzer{analysis: hostedAnalysis()})

	_, err := f.service.GetAnalysis(context.Background(), "zzzz")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ZZZZ", nf.Symbol)
	assert.Equal(t, `Stock symbol "ZZZZ" not found or data unavailable`, err.Error())
	assert.Equal(t, 0, f.analyzer.calls)
}

func TestGetAnalysis_InvalidSymbol(t *testing.T) {
	f := newFixture(nil)

	for _, sym := range []string{"", "   ", "ABCDEFGHIJK"} {
		_, err := f.service.GetAnalysis(context.Background(), sym)
		assert.ErrorIs(t, err, ErrInvalidSymbol, "symbol %q", sym)
	}
	assert.Equal(t, 0, f.quotes.calls)
}

func TestGetAnalysis_InvalidQuoteIsInternal(t *testing.T) {
	f := newFixture(nil)
	f.quotes.quotes["BAD"] = &models.Quote{Symbol: "BAD", CompanyName: "Bad", CurrentPrice: 0, Volume: "1", MarketCap: "1"}

	_, err := f.service.GetAnalysis(context.Background(), "BAD")
	require.Error(t, err)

	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
	assert.NotErrorIs(t, err, ErrInvalidSymbol)
}

func TestValidateSymbol(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	ok, err := f.service.ValidateSymbol(ctx, "aapl")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.ValidateSymbol(ctx, "ZZZZ")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.service.ValidateSymbol(ctx, "ABCDEFGHIJK")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = f.service.ValidateSymbol(ctx, "ABCDEFGHIJ")
	assert.NoError(t, err)
}
