package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/api/response"
	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
)

// ValidateTickerMiddleware validates that the ticker URL parameter is present
// and non-blank. Returns 400 Bad Request otherwise. Ticker lookups themselves
// are case-insensitive, so no canonicalization happens here.
func ValidateTickerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := chi.URLParam(r, "ticker")

		if strings.TrimSpace(ticker) == "" {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrEmptyTicker.Error(), "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
