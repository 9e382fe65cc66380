package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/migrations"
	"github.com/pressly/goose/v3"
)

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
}

// newMigrator is a seam for tests.
var newMigrator = func(dialect goose.Dialect, db *sql.DB, fsys fs.FS, opts ...goose.ProviderOption) (migrator, error) {
	p, err := goose.NewProvider(dialect, db, fsys, opts...)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// migrate runs the migrations under dir with a goose provider of its own,
// so concurrent calls share no goose state.
func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string, log logging.Logger) error {
	if log == nil {
		log = logging.Nop()
	}
	log = log.With("module", "migrations", "dialect", string(dialect))

	fsys, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		return err
	}
	m, err := newMigrator(dialect, db, fsys,
		goose.WithLogger(&gooseLogger{ctx: ctx, log: log}),
		goose.WithVerbose(true),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := m.Up(ctx)
	if err != nil {
		return err
	}
	log.Debug(ctx, "migrations done", "applied", len(results))
	return nil
}

// gooseLogger adapts logging.Logger to goose.Logger.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf does not exit; the provider reports failures as errors.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}
