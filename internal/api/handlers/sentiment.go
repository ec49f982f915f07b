package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

// SentimentHandler handles HTTP requests for news sentiment endpoints.
type SentimentHandler struct {
	sentimentService *service.SentimentService
}

// NewSentimentHandler creates a new SentimentHandler with the provided service dependency.
func NewSentimentHandler(sentimentService *service.SentimentService) *SentimentHandler {
	return &SentimentHandler{
		sentimentService: sentimentService,
	}
}

// GetNewsSentiment handles GET requests to retrieve the relevance-filtered
// news sentiment feed for a ticker.
//
// Endpoint: GET /api/news-sentiment/{ticker}
// Response: 200 OK with NewsSentiment
// Error: 502 Bad Gateway if the provider fails
func (h *SentimentHandler) GetNewsSentiment(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	sentiment, err := h.sentimentService.GetNewsSentiment(r.Context(), ticker)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveSentiment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, sentiment)
}
