package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/yourusername/bet-ledger/internal/config"
)

// SetupTestDB connects to the database named by BETLEDGER_TEST_CONFIG and
// applies the schema. The test is skipped when the variable is not set.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	path := os.Getenv("BETLEDGER_TEST_CONFIG")
	if path == "" {
		t.Skip("Integration test - set BETLEDGER_TEST_CONFIG to run")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	if _, err := Migrate(ctx, db); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
