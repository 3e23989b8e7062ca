package database

import (
	"testing"

	"teller-desk/internal/config"

	"github.com/google/uuid"
)

// SetupTestDB opens a private in-memory database with the schema applied.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Name:           "test_" + uuid.New().String(),
		MaxConnections: 1,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}

	if err := NewMigrationRunner(sqlDB).RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SetupSeededTestDB is SetupTestDB plus the demo ledger seed.
func SetupSeededTestDB(t *testing.T) *DB {
	t.Helper()

	db := SetupTestDB(t)

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}

	if err := NewMigrationRunner(sqlDB).LoadSeeds(); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	if err := db.EnsureBank(); err != nil {
		t.Fatalf("failed to ensure bank row: %v", err)
	}

	return db
}

// SetupEmptyLedgerDB is SetupTestDB with a zeroed bank row and no customers.
func SetupEmptyLedgerDB(t *testing.T) *DB {
	t.Helper()

	db := SetupTestDB(t)
	if err := db.EnsureBank(); err != nil {
		t.Fatalf("failed to ensure bank row: %v", err)
	}

	return db
}
