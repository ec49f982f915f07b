// Package alphavantage fetches news sentiment from the Alpha Vantage API.
// The raw feed is filtered at this boundary to articles that are actually
// about the queried ticker (relevance score above 0.7) and mapped to domain
// types.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

const baseURL = "https://www.alphavantage.co/query"

// relevanceThreshold is the minimum per-ticker relevance score an article
// needs to stay in the feed.
const relevanceThreshold = 0.7

// feedLimit is the maximum number of articles requested from the provider.
const feedLimit = 1000

// Client provides methods for fetching news sentiment from Alpha Vantage.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new Alpha Vantage client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type sentimentResponse struct {
	Feed []struct {
		Title                 string `json:"title"`
		URL                   string `json:"url"`
		TimePublished         string `json:"time_published"`
		Summary               string `json:"summary"`
		Source                string `json:"source"`
		OverallSentimentLabel string `json:"overall_sentiment_label"`
		TickerSentiment       []struct {
			Ticker               string `json:"ticker"`
			RelevanceScore       string `json:"relevance_score"`
			TickerSentimentScore string `json:"ticker_sentiment_score"`
			TickerSentimentLabel string `json:"ticker_sentiment_label"`
		} `json:"ticker_sentiment"`
	} `json:"feed"`
	Note         string `json:"Note"`
	ErrorMessage string `json:"Error Message"`
}

// FetchNewsSentiment returns the news sentiment feed for a ticker, keeping
// only articles whose relevance score for that ticker exceeds 0.7.
func (c *Client) FetchNewsSentiment(ctx context.Context, ticker string) (model.NewsSentiment, error) {
	query := url.Values{}
	query.Set("function", "NEWS_SENTIMENT")
	query.Set("tickers", ticker)
	query.Set("limit", strconv.Itoa(feedLimit))
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return model.NewsSentiment{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewsSentiment{}, fmt.Errorf("alphavantage request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.NewsSentiment{}, fmt.Errorf("failed to read alphavantage response: %w", err)
	}

	var parsed sentimentResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return model.NewsSentiment{}, fmt.Errorf("%w: %v", apperrors.ErrProviderPayload, err)
	}
	if parsed.ErrorMessage != "" {
		return model.NewsSentiment{}, fmt.Errorf("alphavantage error: %s", parsed.ErrorMessage)
	}
	// Rate-limit notes arrive as a 200 with no feed.
	if parsed.Note != "" && len(parsed.Feed) == 0 {
		return model.NewsSentiment{}, fmt.Errorf("alphavantage throttled: %s", parsed.Note)
	}

	return filterFeed(ticker, parsed), nil
}

// filterFeed keeps articles relevant to the queried ticker and flattens the
// per-ticker sentiment onto each article.
func filterFeed(ticker string, parsed sentimentResponse) model.NewsSentiment {
	feed := make([]model.NewsArticle, 0, len(parsed.Feed))

	for _, item := range parsed.Feed {
		for _, ts := range item.TickerSentiment {
			if ts.Ticker != ticker {
				continue
			}

			relevance, err := strconv.ParseFloat(ts.RelevanceScore, 64)
			if err != nil || relevance <= relevanceThreshold {
				break
			}

			score, _ := strconv.ParseFloat(ts.TickerSentimentScore, 64)
			feed = append(feed, model.NewsArticle{
				Title:                item.Title,
				URL:                  item.URL,
				TimePublished:        item.TimePublished,
				Summary:              item.Summary,
				Source:               item.Source,
				OverallSentiment:     item.OverallSentimentLabel,
				RelevanceScore:       relevance,
				TickerSentimentScore: score,
				TickerSentimentLabel: ts.TickerSentimentLabel,
			})
			break
		}
	}

	return model.NewsSentiment{
		Ticker: ticker,
		Items:  len(feed),
		Feed:   feed,
	}
}
