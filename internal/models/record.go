package models

import "time"

// AnalysisRecord is a cached quote and analysis for one symbol.
// Symbol is the upper-cased lookup key; CreatedAt survives updates, UpdatedAt drives freshness.
type AnalysisRecord struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Quote      Quote     `json:"stockData"`
	Analysis   Analysis  `json:"aiAnalysis"`
	RiskScore  float64   `json:"riskScore"`
	Verdict    Verdict   `json:"verdict"`
	Confidence int       `json:"confidence"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of r.
func (r *AnalysisRecord) Clone() *AnalysisRecord {
	out := *r
	out.Analysis = r.Analysis.Clone()
	return &out
}

// RecordUpdate is a partial record; nil fields are left untouched.
type RecordUpdate struct {
	Quote      *Quote
	Analysis   *Analysis
	RiskScore  *float64
	Verdict    *Verdict
	Confidence *int
}

// Apply merges the non-nil fields of u into r.
func (u RecordUpdate) Apply(r *AnalysisRecord) {
	if u.Quote != nil {
		r.Quote = *u.Quote
	}
	if u.Analysis != nil {
		r.Analysis = u.Analysis.Clone()
	}
	if u.RiskScore != nil {
		r.RiskScore = *u.RiskScore
	}
	if u.Verdict != nil {
		r.Verdict = *u.Verdict
	}
	if u.Confidence != nil {
		r.Confidence = *u.Confidence
	}
}

// StockResponse is the body returned by the stock endpoint.
type StockResponse struct {
	StockData  Quote    `json:"stockData"`
	AIAnalysis Analysis `json:"aiAnalysis"`
	RiskScore  float64  `json:"riskScore"`
	Verdict    Verdict  `json:"verdict"`
	Confidence int      `json:"confidence"`
}

// NewStockResponse builds the response body from a record.
func NewStockResponse(r *AnalysisRecord) *StockResponse {
	return &StockResponse{
		StockData:  r.Quote,
		AIAnalysis: r.Analysis,
		RiskScore:  r.RiskScore,
		Verdict:    r.Verdict,
		Confidence: r.Confidence,
	}
}

// CatalogEntry is a listed company in the built-in stock catalog.
type CatalogEntry struct {
	Symbol      string `json:"symbol" toml:"symbol"`
	CompanyName string `json:"companyName" toml:"company_name"`
	Sector      string `json:"sector" toml:"sector"`
	Exchange    string `json:"exchange" toml:"exchange"`
}
