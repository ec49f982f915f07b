package yahoo

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. It is parsed into domain types at this boundary and never
// leaves the package.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}
