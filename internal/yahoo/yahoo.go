// Package yahoo fetches quotes and daily price history from the Yahoo
// Finance chart API. Raw payloads are validated and mapped to domain types
// here; malformed responses surface as wrapped apperrors.ErrProviderPayload
// so no provider-specific parse detail leaks upward.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

const baseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Client provides methods for fetching price data from the Yahoo Finance API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Yahoo Finance client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchQuote returns the most recent closing price for a symbol, using the
// last five trading days so that weekends and holidays still yield a price.
//
// Parameters:
//   - ctx: request context; cancellation and timeouts propagate to the HTTP call
//   - symbol: ticker symbol (e.g. "AAPL")
//
// Returns the latest quote, or an error wrapping apperrors.ErrProviderPayload
// when the response contains no usable close price.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	url := fmt.Sprintf("%s/%s?interval=1d&range=5d", c.baseURL, symbol)

	resp, err := c.query(ctx, url)
	if err != nil {
		return model.Quote{}, err
	}

	points, currency, err := parseChart(resp)
	if err != nil {
		return model.Quote{}, err
	}

	// Walk backwards: the most recent rows can carry zero closes when the
	// exchange has not settled the day yet.
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].PriceClose > 0 {
			return model.Quote{
				Ticker:   symbol,
				Price:    points[i].PriceClose,
				Currency: currency,
				AsOf:     points[i].Date,
			}, nil
		}
	}

	return model.Quote{}, fmt.Errorf("%w: no close price for %s", apperrors.ErrProviderPayload, symbol)
}

// FetchHistory returns daily OHLCV data for a symbol between startDate and
// endDate (inclusive), oldest first.
func (c *Client) FetchHistory(ctx context.Context, symbol string, startDate, endDate time.Time) ([]model.PricePoint, error) {
	url := fmt.Sprintf(
		"%s/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL,
		symbol,
		startDate.Unix(),
		endDate.Unix(),
	)

	resp, err := c.query(ctx, url)
	if err != nil {
		return nil, err
	}

	points, _, err := parseChart(resp)
	if err != nil {
		return nil, err
	}
	return points, nil
}

// parseChart validates a raw chart response and converts it into a daily
// price series. It checks that timestamps are present and that the price
// arrays line up with them; anything else is a malformed payload.
func parseChart(resp Response) ([]model.PricePoint, string, error) {
	if len(resp.Chart.Result) == 0 {
		return nil, "", fmt.Errorf("%w: no results returned", apperrors.ErrProviderPayload)
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return nil, "", fmt.Errorf("%w: no price data returned", apperrors.ErrProviderPayload)
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, "", fmt.Errorf("%w: no quote indicators returned", apperrors.ErrProviderPayload)
	}

	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	if len(quote.Close) != n || len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n || len(quote.Volume) != n {
		return nil, "", fmt.Errorf("%w: mismatched data lengths", apperrors.ErrProviderPayload)
	}

	points := make([]model.PricePoint, n)
	for i, ts := range result.Timestamp {
		points[i] = model.PricePoint{
			Date:       time.Unix(ts, 0).UTC(),
			PriceOpen:  quote.Open[i],
			PriceClose: quote.Close[i],
			PriceHigh:  quote.High[i],
			PriceLow:   quote.Low[i],
			Volume:     quote.Volume[i],
		}
	}

	return points, result.Meta.Currency, nil
}

// query executes a chart API request and decodes the raw response.
func (c *Client) query(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("yahoo request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read yahoo response: %w", err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("%w: %v", apperrors.ErrProviderPayload, err)
	}

	if response.Chart.Error != nil {
		return response, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	return response, nil
}
