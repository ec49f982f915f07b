package model

import "time"

// TransactionKind classifies a transaction event. KindNone events are plain
// annotations and carry no quantity or price.
type TransactionKind string

// Allowed transaction kinds.
const (
	KindBuy  TransactionKind = "buy"
	KindSell TransactionKind = "sell"
	KindNone TransactionKind = "none"
)

// TransactionEvent is one entry in a security's append-only ledger: a dated
// free-text annotation, optionally marking a buy or sell of a positive
// number of shares at a positive unit price.
//
// Ledger ordering is by Date ascending, ties broken by CreatedAt. Quantity
// and Price are pointers because they are absent for KindNone events; the
// validation layer guarantees both are set for buy and sell events before
// they enter the store.
type TransactionEvent struct {
	ID         string          `json:"id"`
	SecurityID string          `json:"securityId"`
	Date       time.Time       `json:"date"`
	Content    string          `json:"content"`
	Kind       TransactionKind `json:"kind"`
	Quantity   *int64          `json:"quantity,omitempty"`
	Price      *float64        `json:"price,omitempty"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
}
