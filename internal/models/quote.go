package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Quote is the market snapshot produced by a quote provider.
// Volume and MarketCap are display strings carrying a K/M/B/T suffix ("45.2M", "2.8T") or "N/A".
type Quote struct {
	Symbol        string  `json:"symbol" validate:"required"`
	CompanyName   string  `json:"companyName" validate:"required"`
	CurrentPrice  float64 `json:"currentPrice" validate:"gt=0"`
	ChangeAmount  float64 `json:"changeAmount"`
	ChangePercent float64 `json:"changePercent"`
	Volume        string  `json:"volume" validate:"required"`
	MarketCap     string  `json:"marketCap" validate:"required"`
	WeekHigh52    float64 `json:"weekHigh52" validate:"gte=0"`
	WeekLow52     float64 `json:"weekLow52" validate:"gte=0"`
	Exchange      string  `json:"exchange"`
}

// Validate checks the quote against its struct tags.
func (q *Quote) Validate() error {
	return validate.Struct(q)
}
