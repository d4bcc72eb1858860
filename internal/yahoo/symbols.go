package yahoo

import "strings"

// nseSymbols are NSE listings resolved without relying on the suffix heuristic
var nseSymbols = map[string]bool{
	"RELIANCE": true, "TCS": true, "HDFCBANK": true, "INFY": true, "HINDUNILVR": true,
	"ICICIBANK": true, "ITC": true, "SBIN": true, "BHARTIARTL": true, "KOTAKBANK": true,
	"LT": true, "ASIANPAINT": true, "AXISBANK": true, "MARUTI": true, "SUNPHARMA": true,
	"ULTRACEMCO": true, "TITAN": true, "WIPRO": true, "NESTLEIND": true, "POWERGRID": true,
	"NTPC": true, "TECHM": true, "HCLTECH": true, "BAJFINANCE": true, "COALINDIA": true,
	"TATAMOTORS": true, "TATASTEEL": true, "ADANIPORTS": true, "ONGC": true, "GRASIM": true,
	"JSWSTEEL": true, "HEROMOTOCO": true, "BAJAJFINSV": true, "BPCL": true, "EICHERMOT": true,
	"BRITANNIA": true, "DRREDDY": true, "CIPLA": true, "APOLLOHOSP": true, "DIVISLAB": true,
}

// usSymbols are never given an NSE suffix
var usSymbols = map[string]bool{
	"AAPL": true, "GOOGL": true, "MSFT": true, "TSLA": true, "AMZN": true, "META": true, "NVDA": true,
}

// ResolveSymbol maps a user-entered ticker to a Yahoo Finance ticker.
// Known NSE listings and bare tickers of up to 12 characters get ".NS"; tickers already carrying
// ".NS" or ".BO", exchange-prefixed tickers and the well-known US names pass through.
func ResolveSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if nseSymbols[symbol] {
		return symbol + ".NS"
	}
	if strings.HasSuffix(symbol, ".NS") || strings.HasSuffix(symbol, ".BO") {
		return symbol
	}
	if len(symbol) <= 12 &&
		!strings.HasPrefix(symbol, "NASDAQ:") &&
		!strings.HasPrefix(symbol, "NYSE:") &&
		!strings.Contains(symbol, ".") &&
		!usSymbols[symbol] {
		return symbol + ".NS"
	}
	return symbol
}
