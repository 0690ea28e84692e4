package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"

	"github.com/pantherbooks/identity/internal/config"
)

// Setup opens a pool for integration tests and hands back a transaction that
// is rolled back on cleanup, so tests never dirty the database.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	const projRoot = "../../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatalf("failed to load environment file: %v", err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	conn, err := Connect(t.Context(), cfg.DB)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(t.Context(), conn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, tx
}
