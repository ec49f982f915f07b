package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
)

// CaseRepository provides data access methods for the case_document table.
// Each security has at most one case document.
type CaseRepository struct {
	db *sql.DB
}

// NewCaseRepository creates a new CaseRepository with the provided database connection.
func NewCaseRepository(db *sql.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// GetBySecurityID retrieves the case document for a security.
// Returns apperrors.ErrCaseNotFound when none has been written yet.
func (r *CaseRepository) GetBySecurityID(securityID string) (model.CaseDocument, error) {
	row := r.db.QueryRow(`
		SELECT id, security_id, content, updated_at
		FROM case_document
		WHERE security_id = ?
	`, securityID)

	var c model.CaseDocument
	var updatedAtStr string

	err := row.Scan(&c.ID, &c.SecurityID, &c.Content, &updatedAtStr)
	if err == sql.ErrNoRows {
		return model.CaseDocument{}, apperrors.ErrCaseNotFound
	}
	if err != nil {
		return model.CaseDocument{}, fmt.Errorf("failed to scan case_document row: %w", err)
	}

	c.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.CaseDocument{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return c, nil
}

// Upsert creates the case document for a security or replaces its content.
func (r *CaseRepository) Upsert(c model.CaseDocument) error {
	_, err := r.db.Exec(`
		INSERT INTO case_document (id, security_id, content, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (security_id)
		DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at
	`, c.ID, c.SecurityID, c.Content, c.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert case document: %w", err)
	}
	return nil
}
