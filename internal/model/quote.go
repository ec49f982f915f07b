package model

import "time"

// Quote is the latest known price for a ticker. Quotes are transient: they
// only ever live inside a cache entry, never in the database.
type Quote struct {
	Ticker   string    `json:"ticker"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency"`
	AsOf     time.Time `json:"asOf"`
}

// PricePoint is one day of OHLCV data in a historical price series.
type PricePoint struct {
	Date       time.Time `json:"date"`
	PriceOpen  float64   `json:"open"`
	PriceClose float64   `json:"close"`
	PriceHigh  float64   `json:"high"`
	PriceLow   float64   `json:"low"`
	Volume     int64     `json:"volume"`
}
