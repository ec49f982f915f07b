package database

import (
	"path/filepath"
	"testing"
)

// TestOpen_CascadeSurvivesConnectionCycling deletes a security on a fresh
// pool connection and checks its ledger and case rows go with it. The
// foreign_keys pragma is per connection, so it must arrive via the DSN; an
// Exec-once pragma would leave cascades off on every other connection.
func TestOpen_CascadeSurvivesConnectionCycling(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cascade.db"))
	if err != nil {
		t.Fatalf("Open() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() returned unexpected error: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO security (id, ticker, name, created_at)
		VALUES ('sec-1', 'AAPL', 'Apple Inc.', '2024-01-02T00:00:00Z')
	`); err != nil {
		t.Fatalf("Failed to insert security: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO transaction_event (id, security_id, date, content, kind, quantity, price, created_at)
		VALUES ('ev-1', 'sec-1', '2024-01-02', 'Opening position', 'buy', 10, 100, '2024-01-02T00:00:00Z')
	`); err != nil {
		t.Fatalf("Failed to insert event: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO case_document (id, security_id, content, updated_at)
		VALUES ('case-1', 'sec-1', 'Strong moat.', '2024-01-02T00:00:00Z')
	`); err != nil {
		t.Fatalf("Failed to insert case document: %v", err)
	}

	// Drop the idle connection the inserts ran on, so the DELETE below runs
	// on a connection opened after the setup statements.
	db.SetMaxIdleConns(0)
	var securities int
	if err := db.QueryRow(`SELECT COUNT(*) FROM security`).Scan(&securities); err != nil {
		t.Fatalf("Failed to count securities: %v", err)
	}
	if securities != 1 {
		t.Fatalf("Expected 1 security before delete, got %d", securities)
	}

	if _, err := db.Exec(`DELETE FROM security WHERE id = 'sec-1'`); err != nil {
		t.Fatalf("Failed to delete security: %v", err)
	}

	var events, cases int
	if err := db.QueryRow(`SELECT COUNT(*) FROM transaction_event`).Scan(&events); err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM case_document`).Scan(&cases); err != nil {
		t.Fatalf("Failed to count case documents: %v", err)
	}
	if events != 0 || cases != 0 {
		t.Errorf("Expected cascade to remove dependents, got %d events and %d case documents", events, cases)
	}
}
