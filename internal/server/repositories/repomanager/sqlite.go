package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/migrations"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/accesslogs"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite repositories, used for single-node
// deployments and tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) AccessLogs(db dbx.DBTX) accesslogs.Repository {
	return accesslogs.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	return migrate(ctx, db, goose.DialectSQLite3, migrations.SQLiteDir, log)
}
