package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// SecurityBuilder provides a fluent interface for creating test securities.
//
// Example usage:
//
//	// Simple creation with defaults
//	security := testutil.NewSecurity().Build(t, db)
//
//	// Customized security
//	security := testutil.NewSecurity().
//	    WithTicker("AAPL").
//	    WithName("Apple Inc.").
//	    Build(t, db)
type SecurityBuilder struct {
	ID     string
	Ticker string
	Name   string
}

// NewSecurity creates a SecurityBuilder with sensible defaults.
func NewSecurity() *SecurityBuilder {
	return &SecurityBuilder{
		ID:     MakeID(),
		Ticker: MakeTicker("TST"),
		Name:   MakeCompanyName("Test Company"),
	}
}

// WithID sets a custom ID.
func (b *SecurityBuilder) WithID(id string) *SecurityBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *SecurityBuilder) WithTicker(ticker string) *SecurityBuilder {
	b.Ticker = ticker
	return b
}

// WithName sets a custom display name.
func (b *SecurityBuilder) WithName(name string) *SecurityBuilder {
	b.Name = name
	return b
}

// Build inserts the security into the database and returns the model.
func (b *SecurityBuilder) Build(t *testing.T, db *sql.DB) model.Security {
	t.Helper()

	security := model.Security{
		ID:        b.ID,
		Ticker:    b.Ticker,
		Name:      b.Name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(`
		INSERT INTO security (id, ticker, name, created_at)
		VALUES (?, ?, ?, ?)
	`, security.ID, security.Ticker, security.Name, security.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to insert test security: %v", err)
	}

	return security
}

// EventBuilder provides a fluent interface for creating test ledger events.
//
// Example usage:
//
//	event := testutil.NewEvent(security.ID).
//	    Buy(10, 100.0).
//	    OnDate("2024-01-02").
//	    Build(t, db)
type EventBuilder struct {
	ID         string
	SecurityID string
	Date       string
	Content    string
	Kind       model.TransactionKind
	Quantity   *int64
	Price      *float64
	CreatedAt  time.Time
}

// NewEvent creates an EventBuilder for the given security with sensible
// defaults: an annotation dated today.
func NewEvent(securityID string) *EventBuilder {
	return &EventBuilder{
		ID:         MakeID(),
		SecurityID: securityID,
		Date:       time.Now().UTC().Format("2006-01-02"),
		Content:    "Test event",
		Kind:       model.KindNone,
		CreatedAt:  time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *EventBuilder) WithID(id string) *EventBuilder {
	b.ID = id
	return b
}

// OnDate sets the effective date (YYYY-MM-DD).
func (b *EventBuilder) OnDate(date string) *EventBuilder {
	b.Date = date
	return b
}

// WithContent sets the annotation text.
func (b *EventBuilder) WithContent(content string) *EventBuilder {
	b.Content = content
	return b
}

// CreatedAtTime sets the creation timestamp, for tests that depend on
// same-day tie-breaking in ledger order.
func (b *EventBuilder) CreatedAtTime(ts time.Time) *EventBuilder {
	b.CreatedAt = ts
	return b
}

// Buy marks the event as a buy of the given quantity at the given price.
func (b *EventBuilder) Buy(quantity int64, price float64) *EventBuilder {
	b.Kind = model.KindBuy
	b.Quantity = &quantity
	b.Price = &price
	return b
}

// Sell marks the event as a sell of the given quantity at the given price.
func (b *EventBuilder) Sell(quantity int64, price float64) *EventBuilder {
	b.Kind = model.KindSell
	b.Quantity = &quantity
	b.Price = &price
	return b
}

// Build inserts the event into the database and returns the model.
func (b *EventBuilder) Build(t *testing.T, db *sql.DB) model.TransactionEvent {
	t.Helper()

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test event date %q: %v", b.Date, err)
	}

	event := model.TransactionEvent{
		ID:         b.ID,
		SecurityID: b.SecurityID,
		Date:       date,
		Content:    b.Content,
		Kind:       b.Kind,
		Quantity:   b.Quantity,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
	}

	_, err = db.Exec(`
		INSERT INTO transaction_event (id, security_id, date, content, kind, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.ID,
		event.SecurityID,
		event.Date.Format("2006-01-02"),
		event.Content,
		string(event.Kind),
		event.Quantity,
		event.Price,
		event.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to insert test event: %v", err)
	}

	return event
}
