// Package repotest opens migrated in-memory SQLite databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
)

// SQLite returns a fresh, migrated in-memory database and its manager. The
// database is closed when the test ends.
func SQLite(t testing.TB) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := m.RunMigrations(ctx, db, logging.Nop()); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db, m
}
