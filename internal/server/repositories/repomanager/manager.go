// Package repomanager vends dialect-specific repositories bound to a
// database handle and runs the embedded schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/accesslogs"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB, logging.Logger) error
	Records(db dbx.DBTX) records.Repository
	AccessLogs(db dbx.DBTX) accesslogs.Repository
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New returns the manager for a configured driver name.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres, "pgx":
		return &PostgresRepositoryManager{}, nil
	case DriverSQLite, "sqlite3":
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to the database for driver, verifies it with a ping and
// returns the handle together with its manager.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver)
	if err != nil {
		return nil, nil, err
	}

	var db *sql.DB
	switch m.(type) {
	case *PostgresRepositoryManager:
		db, err = sqlOpen("pgx", dsn)
	default:
		db, err = sqlOpen("sqlite", dsn)
		if err == nil {
			// A single connection keeps ":memory:" databases shared and
			// serializes writers.
			db.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, m, nil
}
