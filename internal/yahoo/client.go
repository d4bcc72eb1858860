// Package yahoo fetches quote snapshots from the Yahoo Finance chart and quote summary APIs.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/models"
)

const (
	// DefaultBaseURL is the Yahoo Finance query host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"

	// DefaultUserAgent is sent with every request; Yahoo rejects empty agents.
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 20 * time.Second
)

// ErrNoData is returned when Yahoo has no price data for a ticker
var ErrNoData = errors.New("no price data available")

// Client is a Yahoo Finance chart API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     arbor.ILogger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Yahoo Finance client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse is the response structure of /v8/finance/chart.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta       chartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close  []interface{} `json:"close"`
			Volume []interface{} `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartMeta struct {
	Symbol              string  `json:"symbol"`
	Currency            string  `json:"currency"`
	ExchangeName        string  `json:"exchangeName"`
	LongName            string  `json:"longName"`
	ShortName           string  `json:"shortName"`
	RegularMarketPrice  float64 `json:"regularMarketPrice"`
	RegularMarketVolume float64 `json:"regularMarketVolume"`
	FiftyTwoWeekHigh    float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow     float64 `json:"fiftyTwoWeekLow"`
}

// quoteSummaryResponse is the response structure of /v10/finance/quoteSummary
// for the price and summaryDetail modules.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price         summaryModule `json:"price"`
			SummaryDetail summaryModule `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type summaryModule struct {
	MarketCap struct {
		Raw float64 `json:"raw"`
	} `json:"marketCap"`
}

func toFloat(v interface{}) float64 {
	if n, ok := v.(float64); ok {
		return n
	}
	return 0
}

// chart fetches five daily bars plus metadata for a Yahoo ticker.
func (c *Client) chart(ctx context.Context, ticker string) (*chartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.logger != nil {
		c.logger.Debug().Str("ticker", ticker).Msg("Yahoo chart request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w for %s: %s", ErrNoData, ticker, chart.Chart.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d for %s", resp.StatusCode, ticker)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, ticker)
	}

	return &chart.Chart.Result[0], nil
}

// MarketCap returns the market capitalization Yahoo reports for a ticker.
// The price module is preferred; summaryDetail fills in when it is empty.
func (c *Client) MarketCap(ctx context.Context, ticker string) (float64, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,summaryDetail", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("yahoo quote summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("yahoo quote summary: status %d for %s", resp.StatusCode, ticker)
	}

	var summary quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return 0, fmt.Errorf("yahoo quote summary decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return 0, fmt.Errorf("yahoo quote summary for %s: %s", ticker, summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return 0, fmt.Errorf("yahoo quote summary: no result for %s", ticker)
	}

	r := summary.QuoteSummary.Result[0]
	if r.Price.MarketCap.Raw > 0 {
		return r.Price.MarketCap.Raw, nil
	}
	return r.SummaryDetail.MarketCap.Raw, nil
}

// GetQuote returns a quote for a user-entered symbol. The resolved Yahoo ticker is tried first;
// when Yahoo has no data for it the bare symbol is tried once. A failed market cap lookup
// leaves the quote's market cap as "N/A".
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	display := common.NormalizeSymbol(symbol)
	ticker := ResolveSymbol(display)

	result, err := c.chart(ctx, ticker)
	if errors.Is(err, ErrNoData) && ticker != display {
		ticker = display
		result, err = c.chart(ctx, ticker)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching data for %s: %w", display, err)
	}

	marketCap, err := c.MarketCap(ctx, ticker)
	if err != nil && c.logger != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("Market cap unavailable")
	}

	return buildQuote(display, result, marketCap)
}

func buildQuote(symbol string, r *chartResult, marketCap float64) (*models.Quote, error) {
	var closes, volumes []float64
	if len(r.Indicators.Quote) > 0 {
		q := r.Indicators.Quote[0]
		for i := range q.Close {
			c := toFloat(q.Close[i])
			if c == 0 {
				continue // holidays and the open bar carry nulls
			}
			closes = append(closes, c)
			if i < len(q.Volume) {
				volumes = append(volumes, toFloat(q.Volume[i]))
			}
		}
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoData, symbol)
	}

	current := closes[len(closes)-1]
	previous := current
	if len(closes) > 1 {
		previous = closes[len(closes)-2]
	}
	change := current - previous
	changePercent := 0.0
	if previous > 0 {
		changePercent = change / previous * 100
	}

	volume := 0.0
	if len(volumes) > 0 {
		volume = volumes[len(volumes)-1]
	}
	if volume == 0 {
		volume = r.Meta.RegularMarketVolume
	}

	name := r.Meta.LongName
	if name == "" {
		name = r.Meta.ShortName
	}
	if name == "" {
		name = symbol
	}

	high, low := r.Meta.FiftyTwoWeekHigh, r.Meta.FiftyTwoWeekLow
	if high == 0 {
		high = current
	}
	if low == 0 {
		low = current
	}

	exchange := r.Meta.ExchangeName
	if exchange == "" {
		exchange = "UNKNOWN"
	}

	return &models.Quote{
		Symbol:        symbol,
		CompanyName:   name,
		CurrentPrice:  common.RoundPrice(current),
		ChangeAmount:  common.RoundPrice(change),
		ChangePercent: common.RoundPrice(changePercent),
		Volume:        common.FormatNumber(volume),
		MarketCap:     common.FormatNumber(marketCap),
		WeekHigh52:    common.RoundPrice(high),
		WeekLow52:     common.RoundPrice(low),
		Exchange:      exchange,
	}, nil
}
