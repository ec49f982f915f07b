package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/cache"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// defaultPeriods is how many annual reporting periods are requested from the
// statement provider.
const defaultPeriods = 5

// StatementProvider fetches a chronologically ordered (oldest first) series
// of financial statements for a ticker.
type StatementProvider interface {
	FetchStatements(ctx context.Context, symbol string, periods int) ([]model.FinancialPeriodStatement, error)
}

// FinancialHealthService computes the scored fundamentals table for a
// ticker: direct statement projections, single-period ratios, cross-period
// comparisons and the Piotroski F-Score, from provider data served through
// the external-data cache.
type FinancialHealthService struct {
	provider StatementProvider
	cache    *cache.Cache[[]model.FinancialPeriodStatement]
	periods  int
}

// NewFinancialHealthService creates a new FinancialHealthService with the
// provided statement provider and cache.
func NewFinancialHealthService(provider StatementProvider, c *cache.Cache[[]model.FinancialPeriodStatement]) *FinancialHealthService {
	return &FinancialHealthService{
		provider: provider,
		cache:    c,
		periods:  defaultPeriods,
	}
}

// GetFinancialHealth returns the metrics table for a ticker. Statement
// fetches go through the cache; a provider failure surfaces as
// ErrStatementsUnavailable without caching anything.
func (s *FinancialHealthService) GetFinancialHealth(ctx context.Context, ticker string) (model.FinancialHealthReport, error) {
	key := cache.Key("fmp/statements", map[string]string{
		"symbol": ticker,
		"period": "annual",
		"limit":  strconv.Itoa(s.periods),
	})

	statements, err := s.cache.Get(ctx, key, func(ctx context.Context) ([]model.FinancialPeriodStatement, error) {
		return s.provider.FetchStatements(ctx, ticker, s.periods)
	})
	if err != nil {
		return model.FinancialHealthReport{}, fmt.Errorf("%w: %v", apperrors.ErrStatementsUnavailable, err)
	}

	return BuildFinancialHealthReport(ticker, statements), nil
}

// BuildFinancialHealthReport evaluates every configured metric over the
// statement series. Statements must be ordered oldest first; each metric
// sees the current period and its immediate predecessor (nil for the
// earliest period). Undefined values stay nil so they serialize as JSON
// null: a missing predecessor must never masquerade as a meaningful 0
// score.
func BuildFinancialHealthReport(ticker string, statements []model.FinancialPeriodStatement) model.FinancialHealthReport {
	periods := make([]string, len(statements))
	for i, stmt := range statements {
		periods[i] = stmt.Date.Format("2006-01")
	}

	sections := make([]model.MetricSection, 0, len(financialMetrics))
	for _, sec := range financialMetrics {
		rows := make([]model.MetricRow, 0, len(sec.Metrics))
		for _, metric := range sec.Metrics {
			values := make([]*float64, len(statements))
			for i := range statements {
				var prev *model.FinancialPeriodStatement
				if i > 0 {
					prev = &statements[i-1]
				}
				values[i] = metric.Value(&statements[i], prev)
			}
			rows = append(rows, model.MetricRow{
				Label:       metric.Label,
				Format:      metric.Format,
				Description: metric.Description,
				Values:      values,
			})
		}
		sections = append(sections, model.MetricSection{Section: sec.Section, Rows: rows})
	}

	return model.FinancialHealthReport{
		Ticker:   ticker,
		Periods:  periods,
		Sections: sections,
	}
}

// ratio returns num/den, or nil when the denominator is zero: an undefined
// ratio renders as "N/A", never as a fake zero or infinity.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}

func boolScore(pass bool) *float64 {
	v := 0.0
	if pass {
		v = 1.0
	}
	return &v
}

// Single-period ratios.

func returnOnEquity(cur, _ *model.FinancialPeriodStatement) *float64 {
	return ratio(cur.NetIncome, cur.TotalStockholdersEquity)
}

func returnOnAssets(cur, _ *model.FinancialPeriodStatement) *float64 {
	return ratio(cur.NetIncome, cur.TotalAssets)
}

func debtToEquity(cur, _ *model.FinancialPeriodStatement) *float64 {
	return ratio(cur.TotalLiabilities, cur.TotalStockholdersEquity)
}

func currentRatio(cur, _ *model.FinancialPeriodStatement) *float64 {
	return ratio(cur.TotalCurrentAssets, cur.TotalCurrentLiabilities)
}

// freeCashFlow is computed from its components rather than trusting the
// provider's pass-through field, so the OCF - CapEx identity always holds.
func freeCashFlow(cur, _ *model.FinancialPeriodStatement) *float64 {
	v := cur.OperatingCashFlow - cur.CapitalExpenditure
	return &v
}

// Piotroski sub-tests. The four single-period tests are defined for every
// period; the five comparative tests and the total need a predecessor and
// report nil for the earliest period.

func netIncomePositivity(cur, _ *model.FinancialPeriodStatement) *float64 {
	return boolScore(cur.NetIncome > 0)
}

func roaPositivity(cur, _ *model.FinancialPeriodStatement) *float64 {
	return boolScore(cur.TotalAssets != 0 && cur.NetIncome/cur.TotalAssets > 0)
}

func operatingCashFlowPositivity(cur, _ *model.FinancialPeriodStatement) *float64 {
	return boolScore(cur.OperatingCashFlow > 0)
}

func cashFlowVsNetIncome(cur, _ *model.FinancialPeriodStatement) *float64 {
	return boolScore(cur.OperatingCashFlow > cur.NetIncome)
}

func leverageDecrease(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}
	curRatio := ratio(cur.TotalLiabilities, cur.TotalAssets)
	prevRatio := ratio(prev.TotalLiabilities, prev.TotalAssets)
	if curRatio == nil || prevRatio == nil {
		return boolScore(false)
	}
	return boolScore(*curRatio < *prevRatio)
}

func currentRatioImprovement(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}
	curRatio := ratio(cur.TotalCurrentAssets, cur.TotalCurrentLiabilities)
	prevRatio := ratio(prev.TotalCurrentAssets, prev.TotalCurrentLiabilities)
	if curRatio == nil || prevRatio == nil {
		return boolScore(false)
	}
	return boolScore(*curRatio > *prevRatio)
}

func noNewSharesIssued(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}
	return boolScore(cur.SharesOutstanding <= prev.SharesOutstanding)
}

func grossMarginImprovement(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}
	curMargin := ratio(cur.Revenue-cur.CostOfRevenue, cur.Revenue)
	prevMargin := ratio(prev.Revenue-prev.CostOfRevenue, prev.Revenue)
	if curMargin == nil || prevMargin == nil {
		return boolScore(false)
	}
	return boolScore(*curMargin > *prevMargin)
}

func assetTurnoverImprovement(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}
	curTurnover := ratio(cur.Revenue, cur.TotalAssets)
	prevTurnover := ratio(prev.Revenue, prev.TotalAssets)
	if curTurnover == nil || prevTurnover == nil {
		return boolScore(false)
	}
	return boolScore(*curTurnover > *prevTurnover)
}

// piotroskiSubTests are the nine binary tests summed into the F-Score.
var piotroskiSubTests = []metricFunc{
	netIncomePositivity,
	roaPositivity,
	operatingCashFlowPositivity,
	cashFlowVsNetIncome,
	leverageDecrease,
	currentRatioImprovement,
	noNewSharesIssued,
	grossMarginImprovement,
	assetTurnoverImprovement,
}

// piotroskiScore sums the nine sub-tests into a 0-9 score. The earliest
// period has no predecessor and scores nil: a 0 is a meaningful (weak)
// score and must never be produced by missing data.
func piotroskiScore(cur, prev *model.FinancialPeriodStatement) *float64 {
	if prev == nil {
		return nil
	}

	score := 0.0
	for _, test := range piotroskiSubTests {
		if v := test(cur, prev); v != nil {
			score += *v
		}
	}
	return &score
}
