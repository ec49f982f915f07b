package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// AnalysisHandler handles HTTP requests for bull/bear analysis endpoints.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler with the provided service dependency.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetAnalysis handles GET requests to retrieve the generated bull/bear
// analysis for a tracked security.
//
// Endpoint: GET /api/analysis/{ticker}
// Response: 200 OK with AnalysisReport
// Error: 404 Not Found if the ticker is not tracked
// Error: 502 Bad Gateway if generation fails or returns unusable output
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	report, err := h.analysisService.GetAnalysis(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrSecurityNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSecurityNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrAnalysisUnavailable.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
