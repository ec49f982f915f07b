package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// ValuationHandler handles HTTP requests for valuation endpoints.
type ValuationHandler struct {
	valuationService *service.ValuationService
}

// NewValuationHandler creates a new ValuationHandler with the provided service dependency.
func NewValuationHandler(valuationService *service.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		valuationService: valuationService,
	}
}

// GetValuation handles GET requests to retrieve the valuation snapshot for a
// ticker. A missing quote does not fail the request: the position fields are
// served and every quote-derived field is null.
//
// Endpoint: GET /api/valuation/{ticker}
// Response: 200 OK with ValuationSnapshot
// Error: 404 Not Found if the ticker is not tracked
// Error: 500 Internal Server Error if the computation fails
func (h *ValuationHandler) GetValuation(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	snapshot, err := h.valuationService.GetValuation(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeValuation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}
