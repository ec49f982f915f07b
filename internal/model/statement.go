package model

import "time"

// FinancialPeriodStatement is one reporting period's worth of fundamentals,
// assembled at the provider boundary from the income statement, balance
// sheet and cash flow statement for the same fiscal date. Field mapping is
// explicit and conflict-free; no untyped payload merging happens past the
// adapter.
type FinancialPeriodStatement struct {
	Date time.Time `json:"date"`

	// Income statement
	Revenue              float64 `json:"revenue"`
	CostOfRevenue        float64 `json:"costOfRevenue"`
	GrossProfit          float64 `json:"grossProfit"`
	GrossProfitRatio     float64 `json:"grossProfitRatio"`
	OperatingExpenses    float64 `json:"operatingExpenses"`
	OperatingIncome      float64 `json:"operatingIncome"`
	OperatingIncomeRatio float64 `json:"operatingIncomeRatio"`
	NetIncome            float64 `json:"netIncome"`
	NetIncomeRatio       float64 `json:"netIncomeRatio"`
	SharesOutstanding    float64 `json:"weightedAverageShsOut"`

	// Balance sheet
	TotalCurrentAssets      float64 `json:"totalCurrentAssets"`
	TotalAssets             float64 `json:"totalAssets"`
	TotalCurrentLiabilities float64 `json:"totalCurrentLiabilities"`
	TotalLiabilities        float64 `json:"totalLiabilities"`
	TotalStockholdersEquity float64 `json:"totalStockholdersEquity"`

	// Cash flow statement
	OperatingCashFlow  float64 `json:"operatingCashFlow"`
	CapitalExpenditure float64 `json:"capitalExpenditure"`
	FreeCashFlow       float64 `json:"freeCashFlow"`
}

// FinancialHealthReport is the scored metrics table for one ticker: one
// column per reporting period (oldest first), grouped into sections of
// labelled rows. Undefined values (zero denominators, metrics that need a
// predecessor period) are nil and serialize as JSON null, never as 0.
type FinancialHealthReport struct {
	Ticker   string          `json:"ticker"`
	Periods  []string        `json:"periods"`
	Sections []MetricSection `json:"sections"`
}

// MetricSection groups related metric rows under a display heading.
type MetricSection struct {
	Section string      `json:"section"`
	Rows    []MetricRow `json:"rows"`
}

// MetricRow is one metric across all periods. Format is a rendering hint for
// the presentation layer ("number", "percentage", "decimal", "absolute",
// "fScore").
type MetricRow struct {
	Label       string     `json:"label"`
	Format      string     `json:"format"`
	Description string     `json:"description"`
	Values      []*float64 `json:"values"`
}
