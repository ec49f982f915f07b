package service

import (
	"context"
	"log"

	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

// QuoteProvider fetches the latest market quote for a ticker.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (model.Quote, error)
}

// ValuationService derives the live valuation of a holding: the position
// folded from the transaction ledger, combined with the latest cached quote.
type ValuationService struct {
	securityRepo *repository.SecurityRepository
	eventRepo    *repository.EventRepository
	quotes       QuoteProvider
	cache        *cache.Cache[model.Quote]
}

// NewValuationService creates a new ValuationService with the provided
// repository and quote provider dependencies.
func NewValuationService(
	securityRepo *repository.SecurityRepository,
	eventRepo *repository.EventRepository,
	quotes QuoteProvider,
	c *cache.Cache[model.Quote],
) *ValuationService {
	return &ValuationService{
		securityRepo: securityRepo,
		eventRepo:    eventRepo,
		quotes:       quotes,
		cache:        c,
	}
}

// GetValuation computes the valuation snapshot for a ticker. The position is
// always derived from the ledger; the quote is fetched through the cache. A
// quote failure degrades the response rather than failing it: the position
// fields are still served and every quote-derived field stays null.
func (s *ValuationService) GetValuation(ctx context.Context, ticker string) (model.ValuationSnapshot, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.ValuationSnapshot{}, err
	}

	events, err := s.eventRepo.ListBySecurity(security.ID)
	if err != nil {
		return model.ValuationSnapshot{}, err
	}

	position := CalculatePosition(events)

	var quote *model.Quote
	key := cache.Key("yahoo/quote", map[string]string{"symbol": security.Ticker})
	q, err := s.cache.Get(ctx, key, func(ctx context.Context) (model.Quote, error) {
		return s.quotes.FetchQuote(ctx, security.Ticker)
	})
	if err != nil {
		log.Printf("quote unavailable for %s: %v", security.Ticker, err)
	} else {
		quote = &q
	}

	return BuildSnapshot(position, quote), nil
}
