package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
	"github.com/avosch/stock-dashboard-backend/internal/validation"
)

// SecurityHandler handles HTTP requests for watchlist endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the securityService.
type SecurityHandler struct {
	securityService *service.SecurityService
}

// NewSecurityHandler creates a new SecurityHandler with the provided service dependency.
func NewSecurityHandler(securityService *service.SecurityService) *SecurityHandler {
	return &SecurityHandler{
		securityService: securityService,
	}
}

// ListSecurities handles GET requests to retrieve all tracked securities.
//
// Endpoint: GET /api/securities
// Response: 200 OK with array of Security
// Error: 500 Internal Server Error if retrieval fails
func (h *SecurityHandler) ListSecurities(w http.ResponseWriter, _ *http.Request) {
	securities, err := h.securityService.GetSecurities()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSecurities.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, securities)
}

// GetSecurity handles GET requests to retrieve a single security by ticker.
//
// Endpoint: GET /api/securities/{ticker}
// Response: 200 OK with Security
// Error: 404 Not Found if the ticker is not tracked
// Error: 500 Internal Server Error if retrieval fails
func (h *SecurityHandler) GetSecurity(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	security, err := h.securityService.GetSecurity(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSecurity.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, security)
}

// CreateSecurity handles POST requests to register a new security.
// Validates the request body and creates the watchlist entry.
//
// Endpoint: POST /api/securities
// Request Body: CreateSecurityRequest (ticker, name)
// Response: 201 Created with Security
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the ticker is already registered
// Error: 500 Internal Server Error if creation fails
func (h *SecurityHandler) CreateSecurity(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSecurityRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSecurity(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	security, err := h.securityService.CreateSecurity(req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateTicker) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateTicker.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create security", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, security)
}

// UpdateSecurity handles PUT requests to rename a security.
//
// Endpoint: PUT /api/securities/{ticker}
// Request Body: UpdateSecurityRequest (name)
// Response: 200 OK with updated Security
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the security does not exist
// Error: 500 Internal Server Error if the update fails
func (h *SecurityHandler) UpdateSecurity(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	req, err := parseJSON[request.UpdateSecurityRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSecurity(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	security, err := h.securityService.UpdateSecurity(ticker, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update security", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, security)
}

// DeleteSecurity handles DELETE requests to remove a security. Its ledger
// and case document are removed with it.
//
// Endpoint: DELETE /api/securities/{ticker}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the security does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *SecurityHandler) DeleteSecurity(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	err := h.securityService.DeleteSecurity(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete security", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// GetProfile handles GET requests to retrieve the company profile for a
// tracked security.
//
// Endpoint: GET /api/securities/{ticker}/profile
// Response: 200 OK with CompanyProfile
// Error: 404 Not Found if the ticker is not tracked
// Error: 502 Bad Gateway if the provider fails
func (h *SecurityHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	profile, err := h.securityService.GetProfile(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusBadGateway, "failed to retrieve company profile", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

// GetHistory handles GET requests to retrieve the daily price history for a
// tracked security. Optional start and end query parameters (YYYY-MM-DD)
// bound the series; the default window is the trailing year.
//
// Endpoint: GET /api/securities/{ticker}/history?start=YYYY-MM-DD&end=YYYY-MM-DD
// Response: 200 OK with array of PricePoint
// Error: 400 Bad Request if a date parameter is malformed or the range is inverted
// Error: 404 Not Found if the ticker is not tracked
// Error: 502 Bad Gateway if the provider fails
func (h *SecurityHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	var startDate, endDate time.Time
	var err error

	if raw := r.URL.Query().Get("start"); raw != "" {
		startDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid start date", err.Error())
			return
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		endDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid end date", err.Error())
			return
		}
	}

	history, err := h.securityService.GetHistory(r.Context(), ticker, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSecurityNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidDateRange):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveHistory.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}
