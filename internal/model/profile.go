package model

// CompanyProfile is the company descriptor returned by the statement
// provider's profile endpoint.
type CompanyProfile struct {
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"companyName"`
	Price       float64 `json:"price"`
	MarketCap   float64 `json:"mktCap"`
	Beta        float64 `json:"beta"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
}
