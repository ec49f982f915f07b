package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/request"
	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// CaseHandler handles HTTP requests for investment-case endpoints.
type CaseHandler struct {
	caseService *service.CaseService
}

// NewCaseHandler creates a new CaseHandler with the provided service dependency.
func NewCaseHandler(caseService *service.CaseService) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

// GetCase handles GET requests to retrieve the investment case for a ticker.
// A security without a saved case yields an empty document, not a 404.
//
// Endpoint: GET /api/cases/{ticker}
// Response: 200 OK with CaseDocument
// Error: 404 Not Found if the ticker is not tracked
// Error: 500 Internal Server Error if retrieval fails
func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	doc, err := h.caseService.GetCase(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCase.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, doc)
}

// SaveCase handles PUT requests to create or replace the investment case for
// a ticker.
//
// Endpoint: PUT /api/cases/{ticker}
// Request Body: SaveCaseRequest (content)
// Response: 200 OK with saved CaseDocument
// Error: 400 Bad Request if the request body is invalid
// Error: 404 Not Found if the ticker is not tracked
// Error: 500 Internal Server Error if saving fails
func (h *CaseHandler) SaveCase(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	req, err := parseJSON[request.SaveCaseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	doc, err := h.caseService.SaveCase(ticker, req.Content)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to save case document", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, doc)
}
