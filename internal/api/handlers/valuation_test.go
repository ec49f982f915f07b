package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
	"github.com/avosch/stock-dashboard-backend/internal/service"
	"github.com/avosch/stock-dashboard-backend/internal/testutil"
)

type stubQuoteProvider struct {
	quote model.Quote
	err   error
}

func (s *stubQuoteProvider) FetchQuote(_ context.Context, symbol string) (model.Quote, error) {
	q := s.quote
	q.Ticker = symbol
	return q, s.err
}

func TestValuationHandler_GetValuation(t *testing.T) {
	setup := func(t *testing.T, provider *stubQuoteProvider) (*ValuationHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		svc := service.NewValuationService(
			repository.NewSecurityRepository(db),
			repository.NewEventRepository(db),
			provider,
			cache.New[model.Quote](time.Hour),
		)
		return NewValuationHandler(svc), db
	}

	t.Run("returns the snapshot for a tracked ticker", func(t *testing.T) {
		provider := &stubQuoteProvider{quote: model.Quote{Price: 130, AsOf: time.Now().UTC()}}
		handler, db := setup(t, provider)

		security := testutil.NewSecurity().WithTicker("AAPL").Build(t, db)
		testutil.NewEvent(security.ID).Buy(10, 100).OnDate("2024-01-02").Build(t, db)
		testutil.NewEvent(security.ID).Sell(4, 120).OnDate("2024-03-02").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/valuation/AAPL", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetValuation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var snap model.ValuationSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&snap)
		if snap.SharesOwned != 6 {
			t.Errorf("Expected 6 shares, got %d", snap.SharesOwned)
		}
		if snap.TotalValue == nil || *snap.TotalValue != 1260 {
			t.Errorf("Expected totalValue 1260, got %v", snap.TotalValue)
		}
	})

	t.Run("serves nulls when the quote is unavailable", func(t *testing.T) {
		provider := &stubQuoteProvider{err: errors.New("upstream down")}
		handler, db := setup(t, provider)

		security := testutil.NewSecurity().WithTicker("AAPL").Build(t, db)
		testutil.NewEvent(security.ID).Buy(10, 100).OnDate("2024-01-02").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/valuation/AAPL", map[string]string{"ticker": "AAPL"})
		w := httptest.NewRecorder()

		handler.GetValuation(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 with degraded payload, got %d: %s", w.Code, w.Body.String())
		}

		var snap model.ValuationSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&snap)
		if snap.LatestPrice != nil || snap.CurrentValue != nil {
			t.Errorf("Expected null quote-derived fields, got %+v", snap)
		}
		if snap.SharesOwned != 10 {
			t.Errorf("Position fields lost: %+v", snap.Position)
		}
	})

	t.Run("returns 404 for untracked tickers", func(t *testing.T) {
		handler, _ := setup(t, &stubQuoteProvider{})

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/valuation/NOPE", map[string]string{"ticker": "NOPE"})
		w := httptest.NewRecorder()

		handler.GetValuation(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
