package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

// EventService handles the transaction ledger: the dated buy, sell and
// annotation events recorded per security. Positions are never stored; every
// mutation here is complete once the ledger row is written, because
// valuations recompute from the full ledger on read.
type EventService struct {
	eventRepo    *repository.EventRepository
	securityRepo *repository.SecurityRepository
}

// NewEventService creates a new EventService with the provided repository dependencies.
func NewEventService(
	eventRepo *repository.EventRepository,
	securityRepo *repository.SecurityRepository,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		securityRepo: securityRepo,
	}
}

// GetEventsBySecurity retrieves the full ledger for one security in ledger
// order (date ascending, creation order breaking ties).
func (s *EventService) GetEventsBySecurity(securityID string) ([]model.TransactionEvent, error) {
	if _, err := s.securityRepo.GetByID(securityID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListBySecurity(securityID)
}

// GetEvent retrieves a single transaction event by its ID.
func (s *EventService) GetEvent(id string) (model.TransactionEvent, error) {
	return s.eventRepo.GetByID(id)
}

// CreateEvent appends a new event to a security's ledger.
func (s *EventService) CreateEvent(req request.CreateEventRequest) (model.TransactionEvent, error) {
	if _, err := s.securityRepo.GetByID(req.SecurityID); err != nil {
		return model.TransactionEvent{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.TransactionEvent{}, fmt.Errorf("invalid event date: %w", err)
	}

	kind := model.TransactionKind(req.Kind)
	if req.Kind == "" {
		kind = model.KindNone
	}

	event := model.TransactionEvent{
		ID:         uuid.New().String(),
		SecurityID: req.SecurityID,
		Date:       date,
		Content:    req.Content,
		Kind:       kind,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.eventRepo.Create(event); err != nil {
		return model.TransactionEvent{}, err
	}

	return event, nil
}

// UpdateEvent replaces the mutable fields of a ledger event and returns the
// updated record.
func (s *EventService) UpdateEvent(id string, req request.UpdateEventRequest) (model.TransactionEvent, error) {
	existing, err := s.eventRepo.GetByID(id)
	if err != nil {
		return model.TransactionEvent{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.TransactionEvent{}, fmt.Errorf("invalid event date: %w", err)
	}

	kind := model.TransactionKind(req.Kind)
	if req.Kind == "" {
		kind = model.KindNone
	}

	existing.Date = date
	existing.Content = req.Content
	existing.Kind = kind
	existing.Quantity = req.Quantity
	existing.Price = req.Price

	if err := s.eventRepo.Update(existing); err != nil {
		return model.TransactionEvent{}, err
	}

	return existing, nil
}

// DeleteEvent removes an event from the ledger.
func (s *EventService) DeleteEvent(id string) error {
	return s.eventRepo.Delete(id)
}
