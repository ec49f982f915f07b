package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// EventRepository provides data access methods for the transaction_event
// table. It is the ledger store: an append-only (plus explicit edit) list of
// dated events per security, always read back in ledger order.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository with the provided database connection.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// ListBySecurity retrieves the full ledger for one security in ledger order:
// effective date ascending, ties broken by creation order. Position
// computation depends on this ordering contract. created_at is stored at
// second resolution, so rowid settles events created within the same second:
// inserts happen in creation order and rowid is monotonic.
func (r *EventRepository) ListBySecurity(securityID string) ([]model.TransactionEvent, error) {
	rows, err := r.db.Query(`
		SELECT id, security_id, date, content, kind, quantity, price, created_at
		FROM transaction_event
		WHERE security_id = ?
		ORDER BY date ASC, created_at ASC, rowid ASC
	`, securityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction_event table: %w", err)
	}
	defer rows.Close()

	events := make([]model.TransactionEvent, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction_event table: %w", err)
	}

	return events, nil
}

// GetByID retrieves a single transaction event.
// Returns apperrors.ErrEventNotFound if no such event exists.
func (r *EventRepository) GetByID(id string) (model.TransactionEvent, error) {
	row := r.db.QueryRow(`
		SELECT id, security_id, date, content, kind, quantity, price, created_at
		FROM transaction_event
		WHERE id = ?
	`, id)

	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return model.TransactionEvent{}, apperrors.ErrEventNotFound
	}
	if err != nil {
		return model.TransactionEvent{}, err
	}
	return ev, nil
}

// Create inserts a new transaction event.
func (r *EventRepository) Create(ev model.TransactionEvent) error {
	_, err := r.db.Exec(`
		INSERT INTO transaction_event (id, security_id, date, content, kind, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ev.ID,
		ev.SecurityID,
		ev.Date.UTC().Format("2006-01-02"),
		ev.Content,
		string(ev.Kind),
		ev.Quantity,
		ev.Price,
		ev.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction event: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing event. An edit is a new
// ledger snapshot, not an incremental patch: positions are recomputed from
// the full ledger on the next read, so no derived state needs fixing up.
func (r *EventRepository) Update(ev model.TransactionEvent) error {
	result, err := r.db.Exec(`
		UPDATE transaction_event
		SET date = ?, content = ?, kind = ?, quantity = ?, price = ?
		WHERE id = ?
	`,
		ev.Date.UTC().Format("2006-01-02"),
		ev.Content,
		string(ev.Kind),
		ev.Quantity,
		ev.Price,
		ev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes a transaction event from the ledger.
func (r *EventRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM transaction_event WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func scanEvent(row scanner) (model.TransactionEvent, error) {
	var ev model.TransactionEvent
	var dateStr, createdAtStr, kind string
	var quantity sql.NullInt64
	var price sql.NullFloat64

	err := row.Scan(&ev.ID, &ev.SecurityID, &dateStr, &ev.Content, &kind, &quantity, &price, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.TransactionEvent{}, err
	}
	if err != nil {
		return model.TransactionEvent{}, fmt.Errorf("failed to scan transaction_event row: %w", err)
	}

	ev.Kind = model.TransactionKind(kind)
	if quantity.Valid {
		q := quantity.Int64
		ev.Quantity = &q
	}
	if price.Valid {
		p := price.Float64
		ev.Price = &p
	}

	ev.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.TransactionEvent{}, fmt.Errorf("failed to parse date: %w", err)
	}
	ev.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.TransactionEvent{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return ev, nil
}
