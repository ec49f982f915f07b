package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// SecurityRepository provides data access methods for the security table.
type SecurityRepository struct {
	db *sql.DB
}

// NewSecurityRepository creates a new SecurityRepository with the provided database connection.
func NewSecurityRepository(db *sql.DB) *SecurityRepository {
	return &SecurityRepository{db: db}
}

// GetAll retrieves all registered securities ordered by ticker.
func (r *SecurityRepository) GetAll() ([]model.Security, error) {
	rows, err := r.db.Query(`
		SELECT id, ticker, name, created_at
		FROM security
		ORDER BY ticker ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query security table: %w", err)
	}
	defer rows.Close()

	securities := make([]model.Security, 0)
	for rows.Next() {
		s, err := scanSecurity(rows)
		if err != nil {
			return nil, err
		}
		securities = append(securities, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating security table: %w", err)
	}

	return securities, nil
}

// GetByTicker retrieves a single security by its ticker symbol.
// Ticker comparison is case-insensitive; tickers are stored upper-case.
// Returns apperrors.ErrSecurityNotFound if no such security exists.
func (r *SecurityRepository) GetByTicker(ticker string) (model.Security, error) {
	row := r.db.QueryRow(`
		SELECT id, ticker, name, created_at
		FROM security
		WHERE ticker = ?
	`, strings.ToUpper(ticker))

	s, err := scanSecurity(row)
	if err == sql.ErrNoRows {
		return model.Security{}, apperrors.ErrSecurityNotFound
	}
	if err != nil {
		return model.Security{}, err
	}
	return s, nil
}

// GetByID retrieves a single security by its ID.
// Returns apperrors.ErrSecurityNotFound if no such security exists.
func (r *SecurityRepository) GetByID(id string) (model.Security, error) {
	row := r.db.QueryRow(`
		SELECT id, ticker, name, created_at
		FROM security
		WHERE id = ?
	`, id)

	s, err := scanSecurity(row)
	if err == sql.ErrNoRows {
		return model.Security{}, apperrors.ErrSecurityNotFound
	}
	if err != nil {
		return model.Security{}, err
	}
	return s, nil
}

// Create inserts a new security. Returns apperrors.ErrDuplicateTicker when
// the ticker is already registered.
func (r *SecurityRepository) Create(s model.Security) error {
	_, err := r.db.Exec(`
		INSERT INTO security (id, ticker, name, created_at)
		VALUES (?, ?, ?, ?)
	`, s.ID, s.Ticker, s.Name, s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateTicker
		}
		return fmt.Errorf("failed to insert security: %w", err)
	}
	return nil
}

// UpdateName changes a security's display name. The ticker is immutable once
// transaction events may reference it.
func (r *SecurityRepository) UpdateName(id, name string) error {
	result, err := r.db.Exec(`UPDATE security SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update security: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSecurityNotFound
	}
	return nil
}

// Delete removes a security. Its transaction events and case document go
// with it via foreign-key cascade.
func (r *SecurityRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM security WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete security: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSecurityNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSecurity(row scanner) (model.Security, error) {
	var s model.Security
	var createdAtStr string

	err := row.Scan(&s.ID, &s.Ticker, &s.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.Security{}, err
	}
	if err != nil {
		return model.Security{}, fmt.Errorf("failed to scan security row: %w", err)
	}

	s.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Security{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return s, nil
}
