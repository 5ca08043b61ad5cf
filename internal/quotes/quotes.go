// Package quotes fetches market index snapshots for the dashboard
// header. A primary provider is tried first and a fallback provider
// covers outages; when both fail the caller gets ErrUnavailable and
// keeps whatever it showed last.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var ErrUnavailable = errors.New("quote providers unavailable")

const (
	defaultPrimaryBaseURL  = "https://www.alphavantage.co/query"
	defaultFallbackBaseURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	defaultTimeout         = 5 * time.Second
)

// Index is a symbol tracked on the dashboard.
type Index struct {
	Symbol string
	Label  string
}

// DefaultIndices are the symbols shown when nothing is configured.
func DefaultIndices() []Index {
	return []Index{
		{Symbol: "SPY", Label: "S&P 500"},
		{Symbol: "DIA", Label: "Dow Jones"},
		{Symbol: "QQQ", Label: "Nasdaq 100"},
	}
}

type Quote struct {
	Symbol        string  `json:"symbol"`
	Label         string  `json:"label"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

type Config struct {
	PrimaryBaseURL  string
	FallbackBaseURL string
	APIKey          string
	Timeout         time.Duration
}

type Client struct {
	httpClient  *http.Client
	primaryURL  string
	fallbackURL string
	apiKey      string
}

func NewClient(cfg Config) *Client {
	if cfg.PrimaryBaseURL == "" {
		cfg.PrimaryBaseURL = defaultPrimaryBaseURL
	}
	if cfg.FallbackBaseURL == "" {
		cfg.FallbackBaseURL = defaultFallbackBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		primaryURL:  cfg.PrimaryBaseURL,
		fallbackURL: cfg.FallbackBaseURL,
		apiKey:      cfg.APIKey,
	}
}

// Fetch returns one quote per index. A symbol that fails on the
// primary provider is retried on the fallback; only when every symbol
// fails on both is ErrUnavailable returned.
func (c *Client) Fetch(ctx context.Context, indices []Index) ([]Quote, error) {
	if len(indices) == 0 {
		indices = DefaultIndices()
	}

	quotes := make([]Quote, 0, len(indices))
	for _, idx := range indices {
		q, err := c.fetchPrimary(ctx, idx)
		if err != nil {
			slog.Debug("primary quote provider failed", "symbol", idx.Symbol, "error", err)

			q, err = c.fetchFallback(ctx, idx)
		}
		if err != nil {
			slog.Warn("quote unavailable", "symbol", idx.Symbol, "error", err)
			continue
		}

		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return nil, ErrUnavailable
	}

	return quotes, nil
}

// fetchPrimary hits an Alpha Vantage style GLOBAL_QUOTE endpoint.
// The provider reports numbers as strings and the change percent with
// a trailing percent sign.
func (c *Client) fetchPrimary(ctx context.Context, idx Index) (Quote, error) {
	reqURL, err := url.Parse(c.primaryURL)
	if err != nil {
		return Quote{}, fmt.Errorf("parse primary url: %w", err)
	}

	q := reqURL.Query()
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", idx.Symbol)
	q.Set("apikey", c.apiKey)
	reqURL.RawQuery = q.Encode()

	var body struct {
		GlobalQuote struct {
			Price         string `json:"05. price"`
			ChangePercent string `json:"10. change percent"`
		} `json:"Global Quote"`
	}
	if err := c.getJSON(ctx, reqURL.String(), &body); err != nil {
		return Quote{}, err
	}

	if body.GlobalQuote.Price == "" {
		return Quote{}, fmt.Errorf("empty quote for %s", idx.Symbol)
	}

	price, err := strconv.ParseFloat(body.GlobalQuote.Price, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("parse price %q: %w", body.GlobalQuote.Price, err)
	}

	pct := body.GlobalQuote.ChangePercent
	if n := len(pct); n > 0 && pct[n-1] == '%' {
		pct = pct[:n-1]
	}
	change, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("parse change percent %q: %w", body.GlobalQuote.ChangePercent, err)
	}

	return Quote{Symbol: idx.Symbol, Label: idx.Label, Price: price, ChangePercent: change}, nil
}

// fetchFallback hits a Yahoo Finance v7 style quote endpoint.
func (c *Client) fetchFallback(ctx context.Context, idx Index) (Quote, error) {
	reqURL, err := url.Parse(c.fallbackURL)
	if err != nil {
		return Quote{}, fmt.Errorf("parse fallback url: %w", err)
	}

	q := reqURL.Query()
	q.Set("symbols", idx.Symbol)
	reqURL.RawQuery = q.Encode()

	var body struct {
		QuoteResponse struct {
			Result []struct {
				Price         float64 `json:"regularMarketPrice"`
				ChangePercent float64 `json:"regularMarketChangePercent"`
			} `json:"result"`
		} `json:"quoteResponse"`
	}
	if err := c.getJSON(ctx, reqURL.String(), &body); err != nil {
		return Quote{}, err
	}

	if len(body.QuoteResponse.Result) == 0 {
		return Quote{}, fmt.Errorf("empty quote for %s", idx.Symbol)
	}

	r := body.QuoteResponse.Result[0]

	return Quote{Symbol: idx.Symbol, Label: idx.Label, Price: r.Price, ChangePercent: r.ChangePercent}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
