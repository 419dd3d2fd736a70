/**
 * @description
 * This package provides a client for the external live FX rate source. It makes
 * a single best-effort lookup per call: no caching, no retries. Callers that
 * want a retry policy layer it on top.
 *
 * @dependencies
 * - net/http, encoding/json: Standard Go libraries.
 * - github.com/shopspring/decimal: Rates are decoded without float64 loss.
 */
package rateclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned whenever a live rate cannot be produced:
// unreachable source, non-2xx response, malformed body, or the requested pair
// missing from the response. Callers must not substitute a stale or default
// rate when they see it.
var ErrRateUnavailable = errors.New("live rate unavailable")

// Client is a client for the live-rate HTTP API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new rate source client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ratesResponse is the wire shape of the quote source:
// { "rates": { "<targetCode>": <number>, ... } } for the requested base.
type ratesResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// GetRate returns the base→target exchange rate. When base equals target it
// returns 1 without touching the network.
func (c *Client) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	if base == target {
		return decimal.NewFromInt(1), nil
	}

	endpoint := fmt.Sprintf("%s/latest?base=%s", c.BaseURL, url.QueryEscape(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: building request: %v", ErrRateUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Decimal{}, fmt.Errorf("%w: quote source returned status %d", ErrRateUnavailable, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: decoding response: %v", ErrRateUnavailable, err)
	}

	raw, ok := body.Rates[target]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: pair %s/%s absent from response", ErrRateUnavailable, base, target)
	}

	rate, err := decimal.NewFromString(raw.String())
	if err != nil || !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: malformed rate %q for %s/%s", ErrRateUnavailable, raw.String(), base, target)
	}

	return rate, nil
}
