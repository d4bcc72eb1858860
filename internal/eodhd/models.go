package eodhd

import (
	"bytes"
	"strconv"
)

// Number decodes EODHD numeric fields, which arrive as numbers or as the string "NA".
type Number float64

// UnmarshalJSON accepts 12.5, "12.5", "NA" and null
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "NA" || string(data) == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// RealTimeQuote is the /real-time response for a single symbol.
type RealTimeQuote struct {
	Code          string `json:"code"`
	Timestamp     int64  `json:"timestamp"`
	Open          Number `json:"open"`
	High          Number `json:"high"`
	Low           Number `json:"low"`
	Close         Number `json:"close"`
	Volume        Number `json:"volume"`
	PreviousClose Number `json:"previousClose"`
	Change        Number `json:"change"`
	ChangePercent Number `json:"change_p"`
}

// Valid reports whether the quote carries a price
func (q *RealTimeQuote) Valid() bool {
	return q.Close > 0
}

// FundamentalsResponse holds the fundamentals sections used to complete a quote.
type FundamentalsResponse struct {
	General    *GeneralInfo `json:"General"`
	Highlights *Highlights  `json:"Highlights"`
	Technicals *Technicals  `json:"Technicals"`
}

// GeneralInfo contains general company information.
type GeneralInfo struct {
	Code         string `json:"Code"`
	Name         string `json:"Name"`
	Exchange     string `json:"Exchange"`
	CurrencyCode string `json:"CurrencyCode"`
	CountryName  string `json:"CountryName"`
	Sector       string `json:"Sector"`
	Industry     string `json:"Industry"`
}

// Highlights contains key financial highlights.
type Highlights struct {
	MarketCapitalization Number `json:"MarketCapitalization"`
	PERatio              Number `json:"PERatio"`
	ProfitMargin         Number `json:"ProfitMargin"`
}

// Technicals contains technical analysis data.
type Technicals struct {
	Beta             Number `json:"Beta"`
	FiftyTwoWeekHigh Number `json:"52WeekHigh"`
	FiftyTwoWeekLow  Number `json:"52WeekLow"`
	FiftyDayMA       Number `json:"50DayMA"`
}
