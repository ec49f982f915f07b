package model

import "time"

// CaseDocument is the free-text investment case a user maintains for one
// security. At most one exists per security; saving is create-or-update.
type CaseDocument struct {
	ID         string    `json:"id,omitempty"`
	SecurityID string    `json:"securityId,omitempty"`
	Ticker     string    `json:"ticker"`
	Content    string    `json:"content"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}
