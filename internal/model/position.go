package model

import "time"

// Position is the holdings summary derived from a security's full ledger.
// It is recomputed on every request and never persisted; the ledger is the
// single source of truth.
type Position struct {
	SharesOwned   int64   `json:"sharesOwned"`
	TotalInvested float64 `json:"totalInvested"`
	TotalProceeds float64 `json:"totalProceeds"`
}

// ValuationSnapshot combines a Position with the latest quote. The derived
// fields are pointers so that a missing quote serializes as null rather than
// a misleading zero: callers must be able to tell "flat performance" apart
// from "data unavailable".
type ValuationSnapshot struct {
	Position

	LatestPrice             *float64   `json:"latestPrice"`
	QuoteAsOf               *time.Time `json:"quoteAsOf"`
	CurrentValue            *float64   `json:"currentValue"`
	TotalValue              *float64   `json:"totalValue"`
	ChangeInValue           *float64   `json:"changeInValue"`
	ChangeInValuePercentage *float64   `json:"changeInValuePercentage"`
}
