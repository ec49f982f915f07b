package service

import "github.com/avosch/stock-dashboard-backend/internal/model"

// metricFunc evaluates one metric for a period. prev is the immediately
// preceding period's statement, nil for the earliest period in the series.
// A nil result means the metric is undefined for that period.
type metricFunc func(cur, prev *model.FinancialPeriodStatement) *float64

type metricDef struct {
	Label       string
	Format      string
	Description string
	Value       metricFunc
}

type sectionDef struct {
	Section string
	Metrics []metricDef
}

func field(get func(*model.FinancialPeriodStatement) float64) metricFunc {
	return func(cur, _ *model.FinancialPeriodStatement) *float64 {
		v := get(cur)
		return &v
	}
}

// financialMetrics is the full metrics table rendered by the financial
// health view: raw statement lines, derived ratios and the Piotroski
// F-Score with its nine sub-tests.
var financialMetrics = []sectionDef{
	{
		Section: "Income Statement",
		Metrics: []metricDef{
			{
				Label:       "Revenue",
				Format:      "number",
				Description: "Total amount of money earned from selling goods or services. Look for consistent growth over the years.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.Revenue }),
			},
			{
				Label:       "Cost of Revenue",
				Format:      "number",
				Description: "Direct costs attributable to the production of goods sold. A decreasing trend relative to revenue indicates improving efficiency.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.CostOfRevenue }),
			},
			{
				Label:       "Gross Profit",
				Format:      "number",
				Description: "Revenue minus cost of goods sold. If gross profit growth outpaces revenue growth, it suggests improving efficiency or pricing power.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.GrossProfit }),
			},
			{
				Label:       "Gross Margin",
				Format:      "percentage",
				Description: "Gross profit as a percentage of revenue. Higher margins indicate better efficiency in production and pricing power.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.GrossProfitRatio }),
			},
			{
				Label:       "Operating Expenses",
				Format:      "number",
				Description: "Expenses incurred in normal business operations. Should grow more slowly than revenue for improving profitability.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.OperatingExpenses }),
			},
			{
				Label:       "Operating Income",
				Format:      "number",
				Description: "Profit from business operations before interest and taxes. Consistent growth indicates strong core business performance.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.OperatingIncome }),
			},
			{
				Label:       "Operating Margin",
				Format:      "percentage",
				Description: "Operating income as a percentage of revenue. Increasing margins over time suggest improving operations or scalability.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.OperatingIncomeRatio }),
			},
			{
				Label:       "Net Income",
				Format:      "number",
				Description: "The company's total earnings or profit. Volatile or declining net income might indicate business challenges or heavy investments.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.NetIncome }),
			},
			{
				Label:       "Net Profit Margin",
				Format:      "percentage",
				Description: "Net income as a percentage of revenue. Declining margins might signal rising costs or competitive pressures.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.NetIncomeRatio }),
			},
		},
	},
	{
		Section: "Balance Sheet",
		Metrics: []metricDef{
			{
				Label:       "Current Assets",
				Format:      "number",
				Description: "Assets expected to be converted to cash within one year. Compare with current liabilities for liquidity assessment.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.TotalCurrentAssets }),
			},
			{
				Label:       "Total Assets",
				Format:      "number",
				Description: "Total of all assets owned by the company. Rapid increases might indicate acquisitions or major investments.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.TotalAssets }),
			},
			{
				Label:       "Current Liabilities",
				Format:      "number",
				Description: "Obligations due within one year. Rapid increases might indicate cash flow challenges or aggressive short-term financing.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.TotalCurrentLiabilities }),
			},
			{
				Label:       "Total Liabilities",
				Format:      "number",
				Description: "Total of all liabilities owed by the company. Excessive liability growth might indicate overleveraging.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.TotalLiabilities }),
			},
			{
				Label:       "Stockholders' Equity",
				Format:      "number",
				Description: "Total assets minus total liabilities; the book value of the company. Should generally increase over time through retained earnings.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.TotalStockholdersEquity }),
			},
			{
				Label:       "Shares Outstanding",
				Format:      "absolute",
				Description: "The weighted average number of shares outstanding during the period. An increase can dilute ownership; buybacks increase each share's claim on earnings.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.SharesOutstanding }),
			},
		},
	},
	{
		Section: "Cash Flow",
		Metrics: []metricDef{
			{
				Label:       "Operating Cash Flow",
				Format:      "number",
				Description: "Cash generated from normal business operations. Compare with net income for earnings quality assessment.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.OperatingCashFlow }),
			},
			{
				Label:       "Capital Expenditures",
				Format:      "number",
				Description: "Funds used to acquire or upgrade physical assets. High CapEx might indicate expansion but could pressure short-term cash flows.",
				Value:       field(func(s *model.FinancialPeriodStatement) float64 { return s.CapitalExpenditure }),
			},
			{
				Label:       "Free Cash Flow",
				Format:      "number",
				Description: "Operating cash flow minus capital expenditures. Represents cash available for dividends, debt repayment, or reinvestment.",
				Value:       freeCashFlow,
			},
		},
	},
	{
		Section: "Investment Ratios",
		Metrics: []metricDef{
			{
				Label:       "Return on Equity (ROE)",
				Format:      "percentage",
				Description: "Measures profitability relative to shareholders' equity. Calculation: Net Income / Total Shareholders' Equity.",
				Value:       returnOnEquity,
			},
			{
				Label:       "Return on Assets (ROA)",
				Format:      "percentage",
				Description: "Indicates how efficiently a company is using its assets to generate profit. Calculation: Net Income / Total Assets.",
				Value:       returnOnAssets,
			},
			{
				Label:       "Debt to Equity Ratio",
				Format:      "decimal",
				Description: "Measures the company's financial leverage. Calculation: Total Liabilities / Total Shareholders' Equity.",
				Value:       debtToEquity,
			},
			{
				Label:       "Current Ratio",
				Format:      "decimal",
				Description: "Measures the company's ability to pay short-term obligations. Calculation: Total Current Assets / Total Current Liabilities.",
				Value:       currentRatio,
			},
		},
	},
	{
		Section: "Piotroski F-Score",
		Metrics: []metricDef{
			{
				Label:       "Total Piotroski F-Score",
				Format:      "fScore",
				Description: "A comprehensive measure of financial health from 0 to 9, summing nine binary tests against the previous period. Scores of 7-9 indicate a strong position, 0-3 weak financials.",
				Value:       piotroskiScore,
			},
			{
				Label:       "Net Income Positivity",
				Format:      "fScore",
				Description: "Net Income > 0 (1 if true, 0 if false). Consistent profitability suggests the company can sustain operations and reinvest in growth.",
				Value:       netIncomePositivity,
			},
			{
				Label:       "Return on Assets (ROA) Positivity",
				Format:      "fScore",
				Description: "Net Income / Total Assets > 0 (1 if true, 0 if false). Indicates management's efficiency in utilizing the company's resources.",
				Value:       roaPositivity,
			},
			{
				Label:       "Operating Cash Flow Positivity",
				Format:      "fScore",
				Description: "Operating Cash Flow > 0 (1 if true, 0 if false). Shows the company can fund operations without external financing.",
				Value:       operatingCashFlowPositivity,
			},
			{
				Label:       "Cash Flow vs Net Income",
				Format:      "fScore",
				Description: "Operating Cash Flow > Net Income (1 if true, 0 if false). Profit backed by actual cash generation indicates high earnings quality.",
				Value:       cashFlowVsNetIncome,
			},
			{
				Label:       "Long Term Debt Ratio Decrease",
				Format:      "fScore",
				Description: "(Total Liabilities / Total Assets) below the previous period (1 if true, 0 if false). Suggests reduced financial risk and improved solvency.",
				Value:       leverageDecrease,
			},
			{
				Label:       "Current Ratio Improvement",
				Format:      "fScore",
				Description: "(Current Assets / Current Liabilities) above the previous period (1 if true, 0 if false). Indicates enhanced ability to meet short-term obligations.",
				Value:       currentRatioImprovement,
			},
			{
				Label:       "No New Shares Issued",
				Format:      "fScore",
				Description: "Shares outstanding at or below the previous period (1 if true, 0 if false). The company grows without diluting existing shareholders.",
				Value:       noNewSharesIssued,
			},
			{
				Label:       "Gross Margin Improvement",
				Format:      "fScore",
				Description: "Gross margin above the previous period, where gross margin = (Revenue - Cost of Revenue) / Revenue (1 if true, 0 if false).",
				Value:       grossMarginImprovement,
			},
			{
				Label:       "Asset Turnover Improvement",
				Format:      "fScore",
				Description: "Asset turnover above the previous period, where asset turnover = Revenue / Total Assets (1 if true, 0 if false).",
				Value:       assetTurnoverImprovement,
			},
		},
	},
}
