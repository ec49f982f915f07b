package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// FinancialHealthHandler handles HTTP requests for the scored fundamentals
// table.
type FinancialHealthHandler struct {
	healthService *service.FinancialHealthService
}

// NewFinancialHealthHandler creates a new FinancialHealthHandler with the provided service dependency.
func NewFinancialHealthHandler(healthService *service.FinancialHealthService) *FinancialHealthHandler {
	return &FinancialHealthHandler{
		healthService: healthService,
	}
}

// GetFinancialHealth handles GET requests to retrieve the multi-period
// financial health report for a ticker, including ratios and the Piotroski
// F-Score.
//
// Endpoint: GET /api/financial-health/{ticker}
// Response: 200 OK with FinancialHealthReport
// Error: 502 Bad Gateway if the statement provider fails
func (h *FinancialHealthHandler) GetFinancialHealth(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	report, err := h.healthService.GetFinancialHealth(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatementsUnavailable) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrStatementsUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute financial health", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
