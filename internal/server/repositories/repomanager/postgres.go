package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/migrations"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/accesslogs"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL repositories.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AccessLogs(db dbx.DBTX) accesslogs.Repository {
	return accesslogs.NewPostgresRepository(db)
}

// RunMigrations applies the embedded postgres migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	return migrate(ctx, db, goose.DialectPostgres, migrations.PostgresDir, log)
}
