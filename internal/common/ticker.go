// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// MaxSymbolLength is the longest ticker symbol accepted by the API.
const MaxSymbolLength = 10

// NormalizeSymbol trims whitespace and upper-cases a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// IsValidSymbol reports whether a normalized symbol has an acceptable length (1..MaxSymbolLength).
func IsValidSymbol(symbol string) bool {
	n := len(NormalizeSymbol(symbol))
	return n >= 1 && n <= MaxSymbolLength
}

// Ticker represents a parsed exchange-qualified ticker.
// Accepted forms: EXCHANGE:CODE ("NSE:TCS"), CODE.SUFFIX ("RELIANCE.NS") or a bare CODE ("AAPL").
type Ticker struct {
	// Exchange is the exchange code (e.g., "NSE", "BSE", "US")
	Exchange string
	// Code is the stock/security code (e.g., "TCS", "AAPL")
	Code string
	// Raw is the original ticker string
	Raw string
}

// ExchangeToSuffix maps exchange codes to EODHD API suffixes.
var ExchangeToSuffix = map[string]string{
	"US":     ".US",
	"NYSE":   ".US",
	"NASDAQ": ".US",
	"NSE":    ".NSE",
	"BSE":    ".BSE",
	"LSE":    ".LSE",
	"ASX":    ".AU",
	"TSX":    ".TO",
}

// YahooSuffixToExchange maps market-data ticker suffixes to exchange codes.
var YahooSuffixToExchange = map[string]string{
	"NS": "NSE",
	"BO": "BSE",
	"L":  "LSE",
	"AX": "ASX",
	"TO": "TSX",
}

// DefaultExchange is used when a ticker carries no exchange qualifier.
var DefaultExchange = "US"

// ParseTicker parses an exchange-qualified ticker string.
//   - "NSE:TCS" -> Exchange="NSE", Code="TCS"
//   - "RELIANCE.NS" -> Exchange="NSE", Code="RELIANCE"
//   - "aapl" -> Exchange=DefaultExchange, Code="AAPL"
func ParseTicker(ticker string) Ticker {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return Ticker{}
	}

	if idx := strings.Index(ticker, ":"); idx > 0 {
		return Ticker{
			Exchange: strings.ToUpper(ticker[:idx]),
			Code:     strings.ToUpper(ticker[idx+1:]),
			Raw:      ticker,
		}
	}

	// Only treat a dot as a suffix separator for known suffixes so codes like "BRK.B" survive
	if idx := strings.LastIndex(ticker, "."); idx > 0 {
		if exchange, ok := YahooSuffixToExchange[strings.ToUpper(ticker[idx+1:])]; ok {
			return Ticker{
				Exchange: exchange,
				Code:     strings.ToUpper(ticker[:idx]),
				Raw:      ticker,
			}
		}
	}

	return Ticker{
		Exchange: DefaultExchange,
		Code:     strings.ToUpper(ticker),
		Raw:      ticker,
	}
}

// String returns the full exchange-qualified ticker string.
func (t Ticker) String() string {
	if t.Exchange == "" || t.Code == "" {
		return t.Code
	}
	return t.Exchange + ":" + t.Code
}

// EODHDSymbol returns the EODHD API symbol format.
// Example: "NSE:TCS" -> "TCS.NSE"
func (t Ticker) EODHDSymbol() string {
	if t.Code == "" {
		return ""
	}
	suffix, ok := ExchangeToSuffix[t.Exchange]
	if !ok {
		suffix = ".US"
	}
	return t.Code + suffix
}

// IsIndianExchange reports whether an exchange code refers to an Indian market.
// Market-data feeds report NSE as "NSI" and BSE as "BOM".
func IsIndianExchange(exchange string) bool {
	exchange = strings.ToUpper(exchange)
	return exchange == "NSI" || exchange == "BOM" ||
		strings.Contains(exchange, "NSE") || strings.Contains(exchange, "BSE")
}

// CurrencySymbol returns the display currency for an exchange.
func CurrencySymbol(exchange string) string {
	if IsIndianExchange(exchange) {
		return "₹"
	}
	return "$"
}
