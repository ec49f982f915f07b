package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
)

// TestClient_RequestEscaping checks that the API key, the symbol in the
// path and the query parameters all reach the server escaped and intact.
func TestClient_RequestEscaping(t *testing.T) {
	var gotPath, gotKey, gotPeriod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotKey = r.URL.Query().Get("apikey")
		gotPeriod = r.URL.Query().Get("period")
		//nolint:errcheck // Test server - write failure is irrelevant here
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient("key&with=reserved chars")
	client.baseURL = server.URL

	var rows []incomeStatementRow
	params := map[string]string{"period": "annual"}
	if err := client.get(context.Background(), "/income-statement/"+url.PathEscape("BRK B"), params, &rows); err != nil {
		t.Fatalf("get() returned unexpected error: %v", err)
	}

	if gotPath != "/income-statement/BRK%20B" {
		t.Errorf("Path did not survive escaping: %q", gotPath)
	}
	if gotKey != "key&with=reserved chars" {
		t.Errorf("API key corrupted in transit: %q", gotKey)
	}
	if gotPeriod != "annual" {
		t.Errorf("Expected period=annual, got %q", gotPeriod)
	}
}

func TestMergeStatements(t *testing.T) {
	t.Run("joins three payloads by fiscal date, oldest first", func(t *testing.T) {
		income := []incomeStatementRow{
			{Date: "2023-12-31", Revenue: 500, NetIncome: 50},
			{Date: "2022-12-31", Revenue: 400, NetIncome: 40},
		}
		balance := []balanceSheetRow{
			{Date: "2023-12-31", TotalAssets: 1000},
			{Date: "2022-12-31", TotalAssets: 900},
		}
		cashFlow := []cashFlowRow{
			{Date: "2023-12-31", OperatingCashFlow: 60},
			{Date: "2022-12-31", OperatingCashFlow: 45},
		}

		statements, err := mergeStatements(income, balance, cashFlow)
		if err != nil {
			t.Fatalf("mergeStatements() returned unexpected error: %v", err)
		}

		if len(statements) != 2 {
			t.Fatalf("Expected 2 statements, got %d", len(statements))
		}

		// Provider returns newest first; merged output must be oldest first.
		if statements[0].Revenue != 400 {
			t.Errorf("Expected oldest period first (revenue 400), got %v", statements[0].Revenue)
		}
		if statements[1].Revenue != 500 {
			t.Errorf("Expected newest period last (revenue 500), got %v", statements[1].Revenue)
		}

		// Fields from all three payloads land on the same record.
		if statements[1].NetIncome != 50 || statements[1].TotalAssets != 1000 || statements[1].OperatingCashFlow != 60 {
			t.Errorf("Field mapping incomplete: %+v", statements[1])
		}
	})

	t.Run("drops periods missing from any statement", func(t *testing.T) {
		income := []incomeStatementRow{
			{Date: "2023-12-31", Revenue: 500},
			{Date: "2022-12-31", Revenue: 400},
		}
		balance := []balanceSheetRow{
			{Date: "2023-12-31", TotalAssets: 1000},
		}
		cashFlow := []cashFlowRow{
			{Date: "2023-12-31", OperatingCashFlow: 60},
			{Date: "2022-12-31", OperatingCashFlow: 45},
		}

		statements, err := mergeStatements(income, balance, cashFlow)
		if err != nil {
			t.Fatalf("mergeStatements() returned unexpected error: %v", err)
		}
		if len(statements) != 1 {
			t.Fatalf("Expected 1 statement, got %d", len(statements))
		}
	})

	t.Run("empty income payload is a malformed payload", func(t *testing.T) {
		_, err := mergeStatements(nil, nil, nil)
		if !errors.Is(err, apperrors.ErrProviderPayload) {
			t.Errorf("Expected ErrProviderPayload, got %v", err)
		}
	})

	t.Run("no overlapping periods is a malformed payload", func(t *testing.T) {
		income := []incomeStatementRow{{Date: "2023-12-31"}}
		balance := []balanceSheetRow{{Date: "2022-12-31"}}
		cashFlow := []cashFlowRow{{Date: "2023-12-31"}}

		_, err := mergeStatements(income, balance, cashFlow)
		if !errors.Is(err, apperrors.ErrProviderPayload) {
			t.Errorf("Expected ErrProviderPayload, got %v", err)
		}
	})

	t.Run("unparsable date is a malformed payload", func(t *testing.T) {
		income := []incomeStatementRow{{Date: "not-a-date"}}
		balance := []balanceSheetRow{{Date: "not-a-date"}}
		cashFlow := []cashFlowRow{{Date: "not-a-date"}}

		_, err := mergeStatements(income, balance, cashFlow)
		if !errors.Is(err, apperrors.ErrProviderPayload) {
			t.Errorf("Expected ErrProviderPayload, got %v", err)
		}
	})
}
