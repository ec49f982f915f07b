package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/avosch/stock-dashboard-backend/internal/apperrors"
	"github.com/avosch/stock-dashboard-backend/internal/model"
	"github.com/avosch/stock-dashboard-backend/internal/repository"
	"github.com/avosch/stock-dashboard-backend/internal/testutil"
)

func TestSecurityRepository_Create(t *testing.T) {
	t.Run("creates and reads back a security", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		security := model.Security{
			ID:        testutil.MakeID(),
			Ticker:    "AAPL",
			Name:      "Apple Inc.",
			CreatedAt: time.Now().UTC(),
		}

		if err := repo.Create(security); err != nil {
			t.Fatalf("Create() returned unexpected error: %v", err)
		}

		got, err := repo.GetByID(security.ID)
		if err != nil {
			t.Fatalf("GetByID() returned unexpected error: %v", err)
		}
		if got.Ticker != "AAPL" || got.Name != "Apple Inc." {
			t.Errorf("Read back wrong security: %+v", got)
		}
	})

	t.Run("rejects duplicate tickers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)

		err := repo.Create(model.Security{
			ID:        testutil.MakeID(),
			Ticker:    "AAPL",
			Name:      "Duplicate",
			CreatedAt: time.Now().UTC(),
		})

		if !errors.Is(err, apperrors.ErrDuplicateTicker) {
			t.Errorf("Expected ErrDuplicateTicker, got %v", err)
		}
	})
}

func TestSecurityRepository_GetByTicker(t *testing.T) {
	t.Run("lookup is case-insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		created := testutil.NewSecurity().WithTicker("MSFT").Build(t, db)

		got, err := repo.GetByTicker("msft")
		if err != nil {
			t.Fatalf("GetByTicker() returned unexpected error: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("Expected security %s, got %s", created.ID, got.ID)
		}
	})

	t.Run("returns ErrSecurityNotFound for unknown ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		_, err := repo.GetByTicker("NOPE")

		if !errors.Is(err, apperrors.ErrSecurityNotFound) {
			t.Errorf("Expected ErrSecurityNotFound, got %v", err)
		}
	})
}

func TestSecurityRepository_GetAll(t *testing.T) {
	t.Run("returns securities ordered by ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		testutil.NewSecurity().WithTicker("MSFT").Build(t, db)
		testutil.NewSecurity().WithTicker("AAPL").Build(t, db)
		testutil.NewSecurity().WithTicker("GOOG").Build(t, db)

		securities, err := repo.GetAll()
		if err != nil {
			t.Fatalf("GetAll() returned unexpected error: %v", err)
		}

		if len(securities) != 3 {
			t.Fatalf("Expected 3 securities, got %d", len(securities))
		}
		want := []string{"AAPL", "GOOG", "MSFT"}
		for i, ticker := range want {
			if securities[i].Ticker != ticker {
				t.Errorf("Expected ticker %s at index %d, got %s", ticker, i, securities[i].Ticker)
			}
		}
	})

	t.Run("returns an empty slice when nothing is tracked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		securities, err := repo.GetAll()
		if err != nil {
			t.Fatalf("GetAll() returned unexpected error: %v", err)
		}
		if securities == nil || len(securities) != 0 {
			t.Errorf("Expected empty slice, got %v", securities)
		}
	})
}

func TestSecurityRepository_UpdateName(t *testing.T) {
	t.Run("renames an existing security", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		created := testutil.NewSecurity().Build(t, db)

		if err := repo.UpdateName(created.ID, "Renamed Corp"); err != nil {
			t.Fatalf("UpdateName() returned unexpected error: %v", err)
		}

		got, _ := repo.GetByID(created.ID)
		if got.Name != "Renamed Corp" {
			t.Errorf("Expected name 'Renamed Corp', got '%s'", got.Name)
		}
	})

	t.Run("returns ErrSecurityNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		err := repo.UpdateName(testutil.MakeID(), "Nobody")

		if !errors.Is(err, apperrors.ErrSecurityNotFound) {
			t.Errorf("Expected ErrSecurityNotFound, got %v", err)
		}
	})
}

func TestSecurityRepository_Delete(t *testing.T) {
	t.Run("cascades to ledger events and case document", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)
		eventRepo := repository.NewEventRepository(db)

		security := testutil.NewSecurity().Build(t, db)
		testutil.NewEvent(security.ID).Buy(10, 100).Build(t, db)
		testutil.NewEvent(security.ID).Build(t, db)

		if err := repo.Delete(security.ID); err != nil {
			t.Fatalf("Delete() returned unexpected error: %v", err)
		}

		events, err := eventRepo.ListBySecurity(security.ID)
		if err != nil {
			t.Fatalf("ListBySecurity() returned unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected ledger to be removed with security, found %d events", len(events))
		}
	})

	t.Run("returns ErrSecurityNotFound for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSecurityRepository(db)

		err := repo.Delete(testutil.MakeID())

		if !errors.Is(err, apperrors.ErrSecurityNotFound) {
			t.Errorf("Expected ErrSecurityNotFound, got %v", err)
		}
	})
}
