package model

import "time"

// Security represents a tracked security identified by its ticker symbol.
// Identity is immutable once transaction events reference it.
type Security struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
