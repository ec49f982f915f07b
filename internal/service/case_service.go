package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

// CaseService handles the free-text investment case kept per security.
type CaseService struct {
	caseRepo     *repository.CaseRepository
	securityRepo *repository.SecurityRepository
}

// NewCaseService creates a new CaseService with the provided repository dependencies.
func NewCaseService(
	caseRepo *repository.CaseRepository,
	securityRepo *repository.SecurityRepository,
) *CaseService {
	return &CaseService{
		caseRepo:     caseRepo,
		securityRepo: securityRepo,
	}
}

// GetCase retrieves the case document for a ticker. A security without a
// saved case yields an empty document rather than an error, so the editor
// always has something to open.
func (s *CaseService) GetCase(ticker string) (model.CaseDocument, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.CaseDocument{}, err
	}

	doc, err := s.caseRepo.GetBySecurityID(security.ID)
	if errors.Is(err, apperrors.ErrCaseNotFound) {
		return model.CaseDocument{Ticker: security.Ticker}, nil
	}
	if err != nil {
		return model.CaseDocument{}, err
	}

	doc.Ticker = security.Ticker
	return doc, nil
}

// SaveCase creates or replaces the case document for a ticker.
func (s *CaseService) SaveCase(ticker, content string) (model.CaseDocument, error) {
	security, err := s.securityRepo.GetByTicker(ticker)
	if err != nil {
		return model.CaseDocument{}, err
	}

	doc := model.CaseDocument{
		ID:         uuid.New().String(),
		SecurityID: security.ID,
		Ticker:     security.Ticker,
		Content:    content,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.caseRepo.Upsert(doc); err != nil {
		return model.CaseDocument{}, err
	}

	return doc, nil
}
