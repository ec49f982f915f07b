package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
	"github.com/avosch/stock-dashboard-backend/internal/service"
	"github.com/avosch/stock-dashboard-backend/internal/testutil"
)

type stubProfileProvider struct {
	profile model.CompanyProfile
	err     error
}

func (s *stubProfileProvider) FetchProfile(_ context.Context, symbol string) (model.CompanyProfile, error) {
	p := s.profile
	p.Ticker = symbol
	return p, s.err
}

type stubHistoryProvider struct {
	points []model.PricePoint
	err    error
}

func (s *stubHistoryProvider) FetchHistory(_ context.Context, _ string, _, _ time.Time) ([]model.PricePoint, error) {
	return s.points, s.err
}

// newRequestWithBodyAndParams builds a request carrying both a JSON body and
// chi URL parameters.
func newRequestWithBodyAndParams(method, path, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func setupSecurityHandler(t *testing.T, profiles *stubProfileProvider, history *stubHistoryProvider) (*SecurityHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := service.NewSecurityService(
		repository.NewSecurityRepository(db),
		profiles,
		history,
		cache.New[model.CompanyProfile](time.Hour),
		cache.New[[]model.PricePoint](time.Hour),
	)
	return NewSecurityHandler(svc), db
}

func TestSecurityHandler_CreateSecurity(t *testing.T) {
	t.Run("creates a security and returns 201", func(t *testing.T) {
		handler, _ := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})

		body := `{"ticker": "aapl", "name": "Apple Inc."}`
		req := httptest.NewRequest(http.MethodPost, "/api/securities", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateSecurity(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Security
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		// Tickers are canonicalized to upper case on creation.
		if created.Ticker != "AAPL" {
			t.Errorf("Expected ticker AAPL, got %q", created.Ticker)
		}
		if created.ID == "" {
			t.Error("Expected generated ID")
		}
	})

	t.Run("returns 400 for validation failures", func(t *testing.T) {
		handler, _ := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})

		body := `{"ticker": "", "name": ""}`
		req := httptest.NewRequest(http.MethodPost, "/api/securities", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateSecurity(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 409 for duplicate tickers", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		body := `{"ticker": "AAPL", "name": "Apple Again"}`
		req := httptest.NewRequest(http.MethodPost, "/api/securities", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateSecurity(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSecurityHandler_GetSecurity(t *testing.T) {
	t.Run("returns the security for a tracked ticker", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		created := testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/AAPL", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetSecurity(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Security
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)
		if got.ID != created.ID {
			t.Errorf("Expected security %s, got %s", created.ID, got.ID)
		}
	})

	t.Run("returns 404 for untracked tickers", func(t *testing.T) {
		handler, _ := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/NOPE", map[string]string{"ticker": "NOPE"})
		w := httptest.NewRecorder()

		handler.GetSecurity(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSecurityHandler_UpdateSecurity(t *testing.T) {
	t.Run("renames a security", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := newRequestWithBodyAndParams(http.MethodPut, "/api/securities/AAPL",
			`{"name": "Apple Computer"}`, map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.UpdateSecurity(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Security
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)
		if got.Name != "Apple Computer" {
			t.Errorf("Expected renamed security, got %q", got.Name)
		}
	})
}

func TestSecurityHandler_DeleteSecurity(t *testing.T) {
	t.Run("deletes a security and returns 204", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/securities/AAPL", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.DeleteSecurity(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for untracked tickers", func(t *testing.T) {
		handler, _ := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/securities/NOPE", map[string]string{"ticker": "NOPE"})
		w := httptest.NewRecorder()

		handler.DeleteSecurity(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestSecurityHandler_GetProfile(t *testing.T) {
	t.Run("returns the provider profile", func(t *testing.T) {
		profiles := &stubProfileProvider{profile: model.CompanyProfile{CompanyName: "Apple Inc.", Sector: "Technology"}}
		handler, db := setupSecurityHandler(t, profiles, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/AAPL/profile", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetProfile(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.CompanyProfile
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)
		if got.CompanyName != "Apple Inc." {
			t.Errorf("Expected profile for Apple Inc., got %+v", got)
		}
	})
}

func TestSecurityHandler_GetHistory(t *testing.T) {
	t.Run("returns the price series", func(t *testing.T) {
		history := &stubHistoryProvider{points: []model.PricePoint{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), PriceClose: 101},
			{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), PriceClose: 103},
		}}
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, history)
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/AAPL/history", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetHistory(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got []model.PricePoint
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)
		if len(got) != 2 {
			t.Errorf("Expected 2 price points, got %d", len(got))
		}
	})

	t.Run("returns 400 for a malformed date parameter", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/AAPL/history", map[string]string{"ticker": "AAPL"})
		q := req.URL.Query()
		q.Set("start", "01-02-2024")
		req.URL.RawQuery = q.Encode()
		w := httptest.NewRecorder()

		handler.GetHistory(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for an inverted range", func(t *testing.T) {
		handler, db := setupSecurityHandler(t, &stubProfileProvider{}, &stubHistoryProvider{})
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/securities/AAPL/history", map[string]string{"ticker": "AAPL"})
		q := req.URL.Query()
		q.Set("start", "2024-06-01")
		q.Set("end", "2024-01-01")
		req.URL.RawQuery = q.Encode()
		w := httptest.NewRecorder()

		handler.GetHistory(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
