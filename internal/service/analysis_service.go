package service

import (
	"context"
	"fmt"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

// AnalysisProvider generates a structured bull/bear analysis for a company.
type AnalysisProvider interface {
	GenerateAnalysis(ctx context.Context, companyName string) (model.AnalysisReport, error)
}

// AnalysisService serves language-model bull/bear analyses for tracked
// securities. Generation is expensive, so reports are served through the
// external-data cache like any other provider payload.
type AnalysisService struct {
	securityRepo *repository.SecurityRepository
	provider     AnalysisProvider
	cache        *cache.Cache[model.AnalysisReport]
}

// NewAnalysisService creates a new AnalysisService with the provided
// repository, provider and cache dependencies.
func NewAnalysisService(
	securityRepo *repository.SecurityRepository,
	provider AnalysisProvider,
	c *cache.Cache[model.AnalysisReport],
) *AnalysisService {
	return &AnalysisService{
		securityRepo: securityRepo,
		provider:     provider,
		cache:        c,
	}
}

// GetAnalysis returns the cached bull/bear analysis for a tracked security.
// The prompt is built from the security's display name, which reads better
// in generated prose than a bare ticker.
func (s *AnalysisService) GetAnalysis(ctx context.Context, ticker string) (model.AnalysisReport, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.AnalysisReport{}, err
	}

	key := cache.Key("gemini/analysis", map[string]string{"company": security.Name})
	report, err := s.cache.Get(ctx, key, func(ctx context.Context) (model.AnalysisReport, error) {
		return s.provider.GenerateAnalysis(ctx, security.Name)
	})
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("%w: %v", apperrors.ErrAnalysisUnavailable, err)
	}

	return report, nil
}
