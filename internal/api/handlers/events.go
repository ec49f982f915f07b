package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
	"github.com/avosch/stock-dashboard-backend/internal/validation"
)

// EventHandler handles HTTP requests for transaction ledger endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the eventService.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler with the provided service dependency.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// EventsPerSecurity handles GET requests to retrieve the full ledger for a
// security, in ledger order.
//
// Endpoint: GET /api/events/security/{uuid}
// Response: 200 OK with array of TransactionEvent
// Error: 400 Bad Request if the security ID is invalid (validated by middleware)
// Error: 404 Not Found if the security does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) EventsPerSecurity(w http.ResponseWriter, r *http.Request) {
	securityID := chi.URLParam(r, "uuid")

	events, err := h.eventService.GetEventsBySecurity(securityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvents.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

// GetEvent handles GET requests to retrieve a single ledger event by ID.
//
// Endpoint: GET /api/events/{uuid}
// Response: 200 OK with TransactionEvent
// Error: 400 Bad Request if the event ID is invalid (validated by middleware)
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEvent.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// CreateEvent handles POST requests to append an event to a security's ledger.
// Validates the request body before it can enter the ledger.
//
// Endpoint: POST /api/events
// Request Body: CreateEventRequest (securityId, date, content, kind, quantity, price)
// Response: 201 Created with TransactionEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the security does not exist
// Error: 500 Internal Server Error if creation fails
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT requests to edit a ledger event. The edit replaces
// the event wholesale; downstream valuations recompute from the full ledger.
//
// Endpoint: PUT /api/events/{uuid}
// Request Body: UpdateEventRequest (date, content, kind, quantity, price)
// Response: 200 OK with updated TransactionEvent
// Error: 400 Bad Request if the event ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if the update fails
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE requests to remove an event from the ledger.
//
// Endpoint: DELETE /api/events/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the event ID is invalid (validated by middleware)
// Error: 404 Not Found if the event does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	err := h.eventService.DeleteEvent(eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
