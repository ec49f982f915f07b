package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when the connection closes). Pragmas go
	// in the DSN so every connection gets them; the pool is pinned to one
	// connection because each new connection to :memory: would otherwise see
	// its own empty database.
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)&_pragma=journal_mode(MEMORY)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE security (
		id TEXT PRIMARY KEY,
		ticker TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE transaction_event (
		id TEXT PRIMARY KEY,
		security_id TEXT NOT NULL,
		date TEXT NOT NULL,
		content TEXT NOT NULL,
		kind TEXT NOT NULL DEFAULT 'none',
		quantity INTEGER,
		price REAL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (security_id) REFERENCES security (id) ON DELETE CASCADE
	);

	CREATE INDEX idx_transaction_event_security_date
		ON transaction_event (security_id, date, created_at);

	CREATE TABLE case_document (
		id TEXT PRIMARY KEY,
		security_id TEXT NOT NULL UNIQUE,
		content TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		FOREIGN KEY (security_id) REFERENCES security (id) ON DELETE CASCADE
	);
	`

	_, err := db.Exec(schema)
	return err
}
