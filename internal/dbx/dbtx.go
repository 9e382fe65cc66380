// Package dbx holds the small database/sql helpers shared by the server
// repositories: the DBTX handle satisfied by both *sql.DB and *sql.Tx, a
// transaction runner, and placeholder rebinding for the supported dialects.
package dbx

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pinger is implemented by *sql.DB; readiness probes depend on it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are rethrown after the rollback.
//
// fn must only use the handle it is given. Touching db inside fn can
// deadlock a pool limited to a single connection (SQLite in memory).
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// Dialect selects the bind-parameter style of a SQL backend.
type Dialect int

const (
	// Question keeps "?" placeholders (SQLite).
	Question Dialect = iota
	// Dollar numbers placeholders as $1, $2, ... (PostgreSQL).
	Dollar
)

// Rebind rewrites the "?" placeholders of query for the dialect. Queries
// must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Dollar {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
