package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysis() *Analysis {
	outlook := Outlook{Outlook: "NEUTRAL", Sentiment: "Range-bound", Description: "Watch levels."}
	return &Analysis{
		Verdict:    VerdictHold,
		Confidence: 72,
		Summary:    "Balanced profile.",
		TechnicalIndicators: TechnicalIndicators{
			RSI: "52.0 (Bullish)", MACD: "Neutral", MovingAverage: "Above 50-day MA", VolumeTrend: "Below Average",
		},
		FundamentalFactors: FundamentalFactors{
			PERatio: "22.1 (Moderate)", RevenueGrowth: "+4.2% YoY", ProfitMargin: "8.1% (Improving)", DebtToEquity: "0.45 (Moderate)",
		},
		ReasoningPoints: []ReasoningPoint{
			{Title: "Stable", Description: "Solid.", Type: ReasoningPositive},
		},
		RiskFactors: RiskFactors{MarketVolatility: 4.5, SectorRisk: 6, LiquidityRisk: 2, FinancialHealth: 5, OverallScore: 4.4},
		Timeline: Timeline{
			ShortTerm: outlook, MediumTerm: outlook, LongTerm: outlook,
			Catalysts: []string{"Quarterly earnings announcement"},
		},
		MarketContext: MarketContext{
			SectorPerformance: "+3.1%", SPYPerformance: "-0.4%", VIXLevel: "18.2", SentimentSummary: "Mixed.",
		},
	}
}

func TestAnalysisValidate(t *testing.T) {
	require.NoError(t, validAnalysis().Validate())

	tests := []struct {
		name   string
		mutate func(a *Analysis)
	}{
		{"unknown verdict", func(a *Analysis) { a.Verdict = "SELL" }},
		{"confidence above 100", func(a *Analysis) { a.Confidence = 101 }},
		{"negative confidence", func(a *Analysis) { a.Confidence = -1 }},
		{"missing summary", func(a *Analysis) { a.Summary = "" }},
		{"no reasoning points", func(a *Analysis) { a.ReasoningPoints = nil }},
		{"bad reasoning type", func(a *Analysis) { a.ReasoningPoints[0].Type = "mixed" }},
		{"risk above 10", func(a *Analysis) { a.RiskFactors.SectorRisk = 11 }},
		{"missing rsi", func(a *Analysis) { a.TechnicalIndicators.RSI = "" }},
		{"missing horizon outlook", func(a *Analysis) { a.Timeline.LongTerm.Outlook = "" }},
		{"empty catalyst", func(a *Analysis) { a.Timeline.Catalysts = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAnalysis()
			tt.mutate(a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestQuoteValidate(t *testing.T) {
	q := &Quote{Symbol: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: 190.5, Volume: "52.1M", MarketCap: "2.9T"}
	assert.NoError(t, q.Validate())

	q.CurrentPrice = 0
	assert.Error(t, q.Validate())

	q.CurrentPrice = 10
	q.Symbol = ""
	assert.Error(t, q.Validate())
}

func TestRecordUpdateApply(t *testing.T) {
	r := &AnalysisRecord{Symbol: "AAPL", Verdict: VerdictHold, Confidence: 70, RiskScore: 4}

	verdict := VerdictBuy
	confidence := 88
	RecordUpdate{Verdict: &verdict, Confidence: &confidence}.Apply(r)

	assert.Equal(t, VerdictBuy, r.Verdict)
	assert.Equal(t, 88, r.Confidence)
	assert.Equal(t, 4.0, r.RiskScore)

	resp := NewStockResponse(r)
	assert.Equal(t, r.Verdict, resp.Verdict)
	assert.Equal(t, r.Confidence, resp.Confidence)
}

func TestAnalysisRecordClone(t *testing.T) {
	r := &AnalysisRecord{
		Symbol: "AAPL",
		Analysis: Analysis{
			ReasoningPoints: []ReasoningPoint{{Title: "Services", Description: "Recurring revenue", Type: ReasoningPositive}},
			Timeline:        Timeline{Catalysts: []string{"WWDC"}},
		},
	}

	c := r.Clone()
	c.Analysis.ReasoningPoints[0].Title = "changed"
	c.Analysis.Timeline.Catalysts[0] = "changed"

	assert.Equal(t, "Services", r.Analysis.ReasoningPoints[0].Title)
	assert.Equal(t, "WWDC", r.Analysis.Timeline.Catalysts[0])
	assert.Nil(t, (&AnalysisRecord{}).Clone().Analysis.ReasoningPoints)
}
