package repomanager

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io/fs"
	stdlog "log"
	"log/slog"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/otpshare/internal/logging"
)

type fakeMigrator struct{ err error }

func (f fakeMigrator) Up(context.Context) ([]*goose.MigrationResult, error) { return nil, f.err }

func stubMigrator(t *testing.T, fn func(goose.Dialect, fs.FS) (migrator, error)) {
	t.Helper()
	orig := newMigrator
	t.Cleanup(func() { newMigrator = orig })
	newMigrator = func(dialect goose.Dialect, db *sql.DB, fsys fs.FS, opts ...goose.ProviderOption) (migrator, error) {
		return fn(dialect, fsys)
	}
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _ := newDB(t)

	var dialects []goose.Dialect
	stubMigrator(t, func(d goose.Dialect, fsys fs.FS) (migrator, error) {
		dialects = append(dialects, d)
		_, err := fs.Stat(fsys, "00001_init.sql")
		require.NoError(t, err)
		return fakeMigrator{}, nil
	})

	require.NoError(t, (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db, logging.Nop()))
	require.NoError(t, (&SQLiteRepositoryManager{}).RunMigrations(context.Background(), db, nil))
	assert.Equal(t, []goose.Dialect{goose.DialectPostgres, goose.DialectSQLite3}, dialects)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)

	stubMigrator(t, func(goose.Dialect, fs.FS) (migrator, error) {
		return fakeMigrator{err: errors.New("boom")}, nil
	})
	require.EqualError(t, (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db, logging.Nop()), "boom")

	stubMigrator(t, func(goose.Dialect, fs.FS) (migrator, error) {
		return nil, errors.New("no migrations")
	})
	require.EqualError(t, (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db, logging.Nop()),
		"goose provider: no migrations")
}

func TestRunMigrations_LogsThroughLogger(t *testing.T) {
	var std bytes.Buffer
	orig := stdlog.Writer()
	stdlog.SetOutput(&std)
	t.Cleanup(func() { stdlog.SetOutput(orig) })

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	db, m, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(context.Background(), db, log))

	assert.Contains(t, buf.String(), "successfully migrated database")
	assert.Contains(t, buf.String(), "module=migrations")
	assert.Contains(t, buf.String(), "dialect=sqlite3")
	assert.Empty(t, std.String())
}

func TestRunMigrations_ConcurrentDatabases(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			db, m, err := Open(context.Background(), DriverSQLite, ":memory:")
			if err != nil {
				return err
			}
			defer db.Close()
			if err := m.RunMigrations(context.Background(), db, logging.Nop()); err != nil {
				return err
			}
			var n int
			return db.QueryRow(`SELECT COUNT(*) FROM access_logs`).Scan(&n)
		})
	}
	require.NoError(t, g.Wait())
}

func TestGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &gooseLogger{ctx: context.Background(), log: logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))}

	l.Printf("goose: OK %s\n", "00001_init.sql")
	l.Fatalf("goose: failed %d", 2)

	assert.Contains(t, buf.String(), `level=INFO msg="goose: OK 00001_init.sql"`)
	assert.Contains(t, buf.String(), `level=ERROR msg="goose: failed 2"`)
}
