package service

import (
	"context"
	"fmt"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// SentimentProvider fetches the scored news feed for a ticker.
type SentimentProvider interface {
	FetchNewsSentiment(ctx context.Context, ticker string) (model.NewsSentiment, error)
}

// SentimentService serves the relevance-filtered news sentiment feed for a
// ticker through the external-data cache.
type SentimentService struct {
	provider SentimentProvider
	cache    *cache.Cache[model.NewsSentiment]
}

// NewSentimentService creates a new SentimentService with the provided
// provider and cache.
func NewSentimentService(provider SentimentProvider, c *cache.Cache[model.NewsSentiment]) *SentimentService {
	return &SentimentService{
		provider: provider,
		cache:    c,
	}
}

// GetNewsSentiment returns the cached news sentiment feed for a ticker.
func (s *SentimentService) GetNewsSentiment(ctx context.Context, ticker string) (model.NewsSentiment, error) {
	key := cache.Key("alphavantage/news-sentiment", map[string]string{"tickers": ticker})

	sentiment, err := s.cache.Get(ctx, key, func(ctx context.Context) (model.NewsSentiment, error) {
		return s.provider.FetchNewsSentiment(ctx, ticker)
	})
	if err != nil {
		return model.NewsSentiment{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveSentiment, err)
	}

	return sentiment, nil
}
