package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/avosch/stock-dashboard-backend/internal/repository"
	"github.com/avosch/stock-dashboard-backend/internal/service"
)

func NewTestEventService(t *testing.T, db *sql.DB) *service.EventService {
	t.Helper()

	eventRepo := repository.NewEventRepository(db)
	securityRepo := repository.NewSecurityRepository(db)

	return service.NewEventService(
		eventRepo,
		securityRepo,
	)
}

func NewTestCaseService(t *testing.T, db *sql.DB) *service.CaseService {
	t.Helper()

	caseRepo := repository.NewCaseRepository(db)
	securityRepo := repository.NewSecurityRepository(db)

	return service.NewCaseService(
		caseRepo,
		securityRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeTicker generates a unique ticker symbol for testing. Tickers carry a
// UNIQUE constraint, so shared-database tests need distinct ones.
//
// Example usage:
//
//	ticker := testutil.MakeTicker("TST")
//	// Returns: "TST1A2B"
func MakeTicker(base string) string {
	if base == "" {
		base = "TST"
	}
	return base + randomAlphanumeric(4)
}

// MakeCompanyName generates a unique company display name for testing.
//
// Example usage:
//
//	name := testutil.MakeCompanyName("Acme Corp")
//	// Returns: "Acme Corp ABC123"
func MakeCompanyName(base string) string {
	if base == "" {
		base = "Company"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
