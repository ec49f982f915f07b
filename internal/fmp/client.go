// Package fmp fetches company profiles and annual financial statements from
// the Financial Modeling Prep API. The three statement endpoints (income,
// balance sheet, cash flow) are joined by fiscal date into one typed record
// per period at this boundary, so downstream scoring never touches raw
// provider payloads.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
)

const baseURL = "https://financialmodelingprep.com/api/v3"

// Client provides methods for fetching fundamentals from Financial Modeling Prep.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new FMP client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchProfile returns the company profile for a symbol.
func (c *Client) FetchProfile(ctx context.Context, symbol string) (model.CompanyProfile, error) {
	var rows []profileRow
	if err := c.get(ctx, "/profile/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return model.CompanyProfile{}, err
	}
	if len(rows) == 0 {
		return model.CompanyProfile{}, fmt.Errorf("%w: empty profile for %s", apperrors.ErrProviderPayload, symbol)
	}

	p := rows[0]
	return model.CompanyProfile{
		Ticker:      p.Symbol,
		CompanyName: p.CompanyName,
		Price:       p.Price,
		MarketCap:   p.MktCap,
		Beta:        p.Beta,
		Sector:      p.Sector,
		Industry:    p.Industry,
		Website:     p.Website,
		Description: p.Description,
	}, nil
}

// FetchStatements returns up to periods annual statements for a symbol,
// ordered oldest to newest. A period is only included when all three
// statements report it; the join is by fiscal date.
func (c *Client) FetchStatements(ctx context.Context, symbol string, periods int) ([]model.FinancialPeriodStatement, error) {
	params := map[string]string{
		"period": "annual",
		"limit":  strconv.Itoa(periods),
	}

	escaped := url.PathEscape(symbol)

	var income []incomeStatementRow
	if err := c.get(ctx, "/income-statement/"+escaped, params, &income); err != nil {
		return nil, err
	}
	var balance []balanceSheetRow
	if err := c.get(ctx, "/balance-sheet-statement/"+escaped, params, &balance); err != nil {
		return nil, err
	}
	var cashFlow []cashFlowRow
	if err := c.get(ctx, "/cash-flow-statement/"+escaped, params, &cashFlow); err != nil {
		return nil, err
	}

	statements, err := mergeStatements(income, balance, cashFlow)
	if err != nil {
		return nil, fmt.Errorf("%w for %s", err, symbol)
	}
	return statements, nil
}

// mergeStatements joins the three statement payloads on fiscal date into
// typed period records, sorted oldest first.
func mergeStatements(income []incomeStatementRow, balance []balanceSheetRow, cashFlow []cashFlowRow) ([]model.FinancialPeriodStatement, error) {
	if len(income) == 0 {
		return nil, fmt.Errorf("%w: no income statements returned", apperrors.ErrProviderPayload)
	}

	balanceByDate := make(map[string]balanceSheetRow, len(balance))
	for _, row := range balance {
		balanceByDate[row.Date] = row
	}
	cashFlowByDate := make(map[string]cashFlowRow, len(cashFlow))
	for _, row := range cashFlow {
		cashFlowByDate[row.Date] = row
	}

	statements := make([]model.FinancialPeriodStatement, 0, len(income))
	for _, inc := range income {
		bal, ok := balanceByDate[inc.Date]
		if !ok {
			continue
		}
		cf, ok := cashFlowByDate[inc.Date]
		if !ok {
			continue
		}

		date, err := repository.ParseTime(inc.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad statement date %q", apperrors.ErrProviderPayload, inc.Date)
		}

		statements = append(statements, model.FinancialPeriodStatement{
			Date:                 date,
			Revenue:              inc.Revenue,
			CostOfRevenue:        inc.CostOfRevenue,
			GrossProfit:          inc.GrossProfit,
			GrossProfitRatio:     inc.GrossProfitRatio,
			OperatingExpenses:    inc.OperatingExpenses,
			OperatingIncome:      inc.OperatingIncome,
			OperatingIncomeRatio: inc.OperatingIncomeRatio,
			NetIncome:            inc.NetIncome,
			NetIncomeRatio:       inc.NetIncomeRatio,
			SharesOutstanding:    inc.WeightedAverageShs,

			TotalCurrentAssets:      bal.TotalCurrentAssets,
			TotalAssets:             bal.TotalAssets,
			TotalCurrentLiabilities: bal.TotalCurrentLiabilities,
			TotalLiabilities:        bal.TotalLiabilities,
			TotalStockholdersEquity: bal.TotalStockholdersEquity,

			OperatingCashFlow:  cf.OperatingCashFlow,
			CapitalExpenditure: cf.CapitalExpenditure,
			FreeCashFlow:       cf.FreeCashFlow,
		})
	}

	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: no overlapping statement periods", apperrors.ErrProviderPayload)
	}

	sort.Slice(statements, func(i, j int) bool {
		return statements[i].Date.Before(statements[j].Date)
	})

	return statements, nil
}

// get executes an API request and decodes the JSON array response into out.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	for name, value := range params {
		query.Set(name, value)
	}
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fmp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fmp returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read fmp response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrProviderPayload, err)
	}
	return nil
}
