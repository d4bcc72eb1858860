package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

const infyChart = `{"chart":{"result":[{"meta":{"symbol":"INFY.NS","currency":"INR","exchangeName":"NSI",
"longName":"Infosys Limited","regularMarketPrice":1512.4,"regularMarketVolume":6100000,
"fiftyTwoWeekHigh":1733.0,"fiftyTwoWeekLow":1352.5},
"timestamp":[1,2,3],
"indicators":{"quote":[{"close":[1490.0,1500.0,1512.4],"volume":[5000000,5500000,6100000]}]}}],"error":null}}`

const infySummary = `{"quoteSummary":{"result":[{"price":{"marketCap":{"raw":628000000000,"fmt":"628B"}},
"summaryDetail":{"marketCap":{"raw":627500000000}}}],"error":null}}`

const notFoundChart = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

func TestResolveSymbol(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"reliance", "RELIANCE.NS"},
		{"TCS", "TCS.NS"},
		{"INFY.NS", "INFY.NS"},
		{"SBIN.BO", "SBIN.BO"},
		{"AAPL", "AAPL"},
		{"nvda", "NVDA"},
		{"IBM", "IBM.NS"},
		{"BRK.B", "BRK.B"},
		{"NASDAQ:AAPL", "NASDAQ:AAPL"},
		{"VERYLONGTICKER", "VERYLONGTICKER"},
	}

	for _, tt := range tests {
		if got := ResolveSymbol(tt.input); got != tt.want {
			t.Errorf("ResolveSymbol(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/v8/finance/chart/INFY.NS":
			assert.Equal(t, "5d", r.URL.Query().Get("range"))
			_, _ = w.Write([]byte(infyChart))
		case "/v10/finance/quoteSummary/INFY.NS":
			assert.Equal(t, "price,summaryDetail", r.URL.Query().Get("modules"))
			_, _ = w.Write([]byte(infySummary))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	q, err := c.GetQuote(context.Background(), "infy")
	require.NoError(t, err)

	assert.Equal(t, "INFY", q.Symbol)
	assert.Equal(t, "Infosys Limited", q.CompanyName)
	assert.Equal(t, 1512.4, q.CurrentPrice)
	assert.Equal(t, 12.4, q.ChangeAmount)
	assert.Equal(t, 0.83, q.ChangePercent)
	assert.Equal(t, "6.1M", q.Volume)
	assert.Equal(t, "628.0B", q.MarketCap)
	assert.Equal(t, 1733.0, q.WeekHigh52)
	assert.Equal(t, "NSI", q.Exchange)
	require.NoError(t, q.Validate())
}

func TestGetQuote_FallsBackToBareSymbol(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if strings.HasSuffix(r.URL.Path, ".NS") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(notFoundChart))
			return
		}
		if strings.HasPrefix(r.URL.Path, "/v10/") {
			_, _ = w.Write([]byte(`{"quoteSummary":{"result":[{"price":{"marketCap":{"raw":2.1e11}}}],"error":null}}`))
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(infyChart, "Infosys Limited", "International Business Machines")))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	q, err := c.GetQuote(context.Background(), "IBM")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/v8/finance/chart/IBM.NS",
		"/v8/finance/chart/IBM",
		"/v10/finance/quoteSummary/IBM",
	}, paths)
	assert.Equal(t, "IBM", q.Symbol)
	assert.Equal(t, "International Business Machines", q.CompanyName)
	assert.Equal(t, "210.0B", q.MarketCap)
}

func TestGetQuote_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundChart))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	_, err := c.GetQuote(context.Background(), "ZZZZZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoData))
	assert.Contains(t, err.Error(), "ZZZZZZ")
}

func TestGetQuote_SkipsNullBars(t *testing.T) {
	body := `{"chart":{"result":[{"meta":{"symbol":"AAPL","exchangeName":"NMS","shortName":"Apple Inc.",
"regularMarketVolume":42000000},
"timestamp":[1,2,3],
"indicators":{"quote":[{"close":[188.0,190.0,null],"volume":[50000000,null,null]}]}}],"error":null}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	q, err := c.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 190.0, q.CurrentPrice)
	assert.Equal(t, 2.0, q.ChangeAmount)
	assert.Equal(t, 1.06, q.ChangePercent)
	// last non-null bar had no volume, meta volume fills in
	assert.Equal(t, "42.0M", q.Volume)
	assert.Equal(t, "Apple Inc.", q.CompanyName)
	// no 52-week range in meta, current price fills in
	assert.Equal(t, 190.0, q.WeekHigh52)
}

func TestGetQuote_MarketCapFromSummaryDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v10/") {
			_, _ = w.Write([]byte(`{"quoteSummary":{"result":[{"price":{},"summaryDetail":{"marketCap":{"raw":45300000000}}}],"error":null}}`))
			return
		}
		_, _ = w.Write([]byte(infyChart))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	q, err := c.GetQuote(context.Background(), "INFY")
	require.NoError(t, err)
	assert.Equal(t, "45.3B", q.MarketCap)
}

func TestGetQuote_MarketCapUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v10/") {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"finance":{"result":null,"error":{"code":"Unauthorized","description":"Invalid Crumb"}}}`))
			return
		}
		_, _ = w.Write([]byte(infyChart))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL), WithLogger(arbor.NewLogger()))
	q, err := c.GetQuote(context.Background(), "INFY")
	require.NoError(t, err)
	assert.Equal(t, "N/A", q.MarketCap)
	assert.Equal(t, 1512.4, q.CurrentPrice)
}

func TestMarketCap_SummaryError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found for ticker symbol: ZZZZ"}}}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	_, err := c.MarketCap(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quote not found")
}
