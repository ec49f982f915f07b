package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

// ProfileProvider fetches the company descriptor for a ticker.
type ProfileProvider interface {
	FetchProfile(ctx context.Context, symbol string) (model.CompanyProfile, error)
}

// HistoryProvider fetches a historical daily price series for a ticker.
type HistoryProvider interface {
	FetchHistory(ctx context.Context, symbol string, startDate, endDate time.Time) ([]model.PricePoint, error)
}

// defaultHistoryRange is the price history window served when the caller
// does not bound it.
const defaultHistoryRange = 365 * 24 * time.Hour

// SecurityService handles the watchlist: registering and managing tracked
// securities and serving their cached company profile and price history.
type SecurityService struct {
	securityRepo *repository.SecurityRepository
	profiles     ProfileProvider
	history      HistoryProvider
	profileCache *cache.Cache[model.CompanyProfile]
	historyCache *cache.Cache[[]model.PricePoint]
}

// NewSecurityService creates a new SecurityService with the provided
// repository, provider and cache dependencies.
func NewSecurityService(
	securityRepo *repository.SecurityRepository,
	profiles ProfileProvider,
	history HistoryProvider,
	profileCache *cache.Cache[model.CompanyProfile],
	historyCache *cache.Cache[[]model.PricePoint],
) *SecurityService {
	return &SecurityService{
		securityRepo: securityRepo,
		profiles:     profiles,
		history:      history,
		profileCache: profileCache,
		historyCache: historyCache,
	}
}

// GetSecurities retrieves all tracked securities ordered by ticker.
func (s *SecurityService) GetSecurities() ([]model.Security, error) {
	securities, err := s.securityRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveSecurities, err)
	}
	return securities, nil
}

// GetSecurity retrieves a single tracked security by ticker.
func (s *SecurityService) GetSecurity(ticker string) (model.Security, error) {
	return s.securityRepo.GetByTicker(ticker)
}

// CreateSecurity registers a new security on the watchlist. Tickers are
// stored upper-case so lookups are case-insensitive.
func (s *SecurityService) CreateSecurity(req request.CreateSecurityRequest) (model.Security, error) {
	security := model.Security{
		ID:        uuid.New().String(),
		Ticker:    strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.securityRepo.Create(security); err != nil {
		return model.Security{}, err
	}

	return security, nil
}

// UpdateSecurity changes a security's display name and returns the updated
// record. The ticker is immutable once created and doubles as the URL
// identity of the security.
func (s *SecurityService) UpdateSecurity(ticker string, req request.UpdateSecurityRequest) (model.Security, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.Security{}, err
	}
	if err := s.securityRepo.UpdateName(security.ID, strings.TrimSpace(req.Name)); err != nil {
		return model.Security{}, err
	}
	return s.securityRepo.GetByID(security.ID)
}

// DeleteSecurity removes a security and, via cascade, its ledger and case
// document.
func (s *SecurityService) DeleteSecurity(ticker string) error {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return err
	}
	return s.securityRepo.Delete(security.ID)
}

// GetProfile returns the cached company profile for a tracked security.
func (s *SecurityService) GetProfile(ctx context.Context, ticker string) (model.CompanyProfile, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.CompanyProfile{}, err
	}

	key := cache.Key("fmp/profile", map[string]string{"symbol": security.Ticker})
	return s.profileCache.Get(ctx, key, func(ctx context.Context) (model.CompanyProfile, error) {
		return s.profiles.FetchProfile(ctx, security.Ticker)
	})
}

// GetHistory returns the cached daily price series for a tracked security.
// A zero startDate defaults to one year back; a zero endDate defaults to
// now. Dates enter the cache key truncated to the day so that every request
// within a day shares one entry.
func (s *SecurityService) GetHistory(ctx context.Context, ticker string, startDate, endDate time.Time) ([]model.PricePoint, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return nil, err
	}

	if endDate.IsZero() {
		endDate = time.Now().UTC()
	}
	if startDate.IsZero() {
		startDate = endDate.Add(-defaultHistoryRange)
	}
	if !startDate.Before(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	key := cache.Key("yahoo/history", map[string]string{
		"symbol": security.Ticker,
		"start":  startDate.UTC().Format("2006-01-02"),
		"end":    endDate.UTC().Format("2006-01-02"),
	})
	return s.historyCache.Get(ctx, key, func(ctx context.Context) ([]model.PricePoint, error) {
		return s.history.FetchHistory(ctx, security.Ticker, startDate, endDate)
	})
}
