package fmp

// Raw payload rows for the three statement endpoints. Each row is mapped
// into the domain FinancialPeriodStatement with an explicit, conflict-free
// field mapping; the raw types never leave this package.

type incomeStatementRow struct {
	Date                 string  `json:"date"`
	Revenue              float64 `json:"revenue"`
	CostOfRevenue        float64 `json:"costOfRevenue"`
	GrossProfit          float64 `json:"grossProfit"`
	GrossProfitRatio     float64 `json:"grossProfitRatio"`
	OperatingExpenses    float64 `json:"operatingExpenses"`
	OperatingIncome      float64 `json:"operatingIncome"`
	OperatingIncomeRatio float64 `json:"operatingIncomeRatio"`
	NetIncome            float64 `json:"netIncome"`
	NetIncomeRatio       float64 `json:"netIncomeRatio"`
	WeightedAverageShs   float64 `json:"weightedAverageShsOut"`
}

type balanceSheetRow struct {
	Date                    string  `json:"date"`
	TotalCurrentAssets      float64 `json:"totalCurrentAssets"`
	TotalAssets             float64 `json:"totalAssets"`
	TotalCurrentLiabilities float64 `json:"totalCurrentLiabilities"`
	TotalLiabilities        float64 `json:"totalLiabilities"`
	TotalStockholdersEquity float64 `json:"totalStockholdersEquity"`
}

type cashFlowRow struct {
	Date               string  `json:"date"`
	OperatingCashFlow  float64 `json:"operatingCashFlow"`
	CapitalExpenditure float64 `json:"capitalExpenditure"`
	FreeCashFlow       float64 `json:"freeCashFlow"`
}

type profileRow struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Price       float64 `json:"price"`
	MktCap      float64 `json:"mktCap"`
	Beta        float64 `json:"beta"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
}
