package models

import "slices"

// Verdict is the investment recommendation carried by an analysis.
type Verdict string

const (
	VerdictBuy   Verdict = "BUY"
	VerdictHold  Verdict = "HOLD"
	VerdictAvoid Verdict = "AVOID"
)

// ReasoningType classifies a reasoning point.
type ReasoningType string

const (
	ReasoningPositive ReasoningType = "positive"
	ReasoningNegative ReasoningType = "negative"
	ReasoningNeutral  ReasoningType = "neutral"
)

// Analysis is the full investment analysis returned alongside a quote.
// The same shape is produced by the local synthesizer and requested from hosted models.
type Analysis struct {
	Verdict             Verdict             `json:"verdict" validate:"required,oneof=BUY HOLD AVOID"`
	Confidence          int                 `json:"confidence" validate:"min=0,max=100"`
	Summary             string              `json:"summary" validate:"required"`
	TechnicalIndicators TechnicalIndicators `json:"technicalIndicators"`
	FundamentalFactors  FundamentalFactors  `json:"fundamentalFactors"`
	ReasoningPoints     []ReasoningPoint    `json:"reasoningPoints" validate:"required,min=1,dive"`
	RiskFactors         RiskFactors         `json:"riskFactors"`
	Timeline            Timeline            `json:"timeline"`
	MarketContext       MarketContext       `json:"marketContext"`
}

type TechnicalIndicators struct {
	RSI           string `json:"rsi" validate:"required"`
	MACD          string `json:"macd" validate:"required"`
	MovingAverage string `json:"movingAverage" validate:"required"`
	VolumeTrend   string `json:"volumeTrend" validate:"required"`
}

type FundamentalFactors struct {
	PERatio       string `json:"peRatio" validate:"required"`
	RevenueGrowth string `json:"revenueGrowth" validate:"required"`
	ProfitMargin  string `json:"profitMargin" validate:"required"`
	DebtToEquity  string `json:"debtToEquity" validate:"required"`
}

type ReasoningPoint struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Type        ReasoningType `json:"type" validate:"required,oneof=positive negative neutral"`
}

// RiskFactors holds the risk quadruple and its mean, each on a 0-10 scale.
type RiskFactors struct {
	MarketVolatility float64 `json:"marketVolatility" validate:"gte=0,lte=10"`
	SectorRisk       float64 `json:"sectorRisk" validate:"gte=0,lte=10"`
	LiquidityRisk    float64 `json:"liquidityRisk" validate:"gte=0,lte=10"`
	FinancialHealth  float64 `json:"financialHealth" validate:"gte=0,lte=10"`
	OverallScore     float64 `json:"overallScore" validate:"gte=0,lte=10"`
}

type Outlook struct {
	Outlook     string `json:"outlook" validate:"required"`
	Sentiment   string `json:"sentiment" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Timeline struct {
	ShortTerm  Outlook  `json:"shortTerm"`
	MediumTerm Outlook  `json:"mediumTerm"`
	LongTerm   Outlook  `json:"longTerm"`
	Catalysts  []string `json:"catalysts" validate:"dive,required"`
}

type MarketContext struct {
	SectorPerformance string `json:"sectorPerformance" validate:"required"`
	SPYPerformance    string `json:"spyPerformance" validate:"required"`
	VIXLevel          string `json:"vixLevel" validate:"required"`
	SentimentSummary  string `json:"sentimentSummary" validate:"required"`
}

// Clone returns a copy of a that shares no slices with it.
func (a Analysis) Clone() Analysis {
	a.ReasoningPoints = slices.Clone(a.ReasoningPoints)
	a.Timeline.Catalysts = slices.Clone(a.Timeline.Catalysts)
	return a
}

// Validate checks the analysis against its struct tags.
func (a *Analysis) Validate() error {
	return validate.Struct(a)
}
