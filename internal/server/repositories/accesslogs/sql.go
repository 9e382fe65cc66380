package accesslogs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Dollar}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Question}
}

// Append inserts e and fills in its generated id.
func (r *SQLRepository) Append(ctx context.Context, e *models.AccessLogEntry) error {
	query := r.dialect.Rebind(`INSERT INTO access_logs (file_id, access_type, access_status, failure_reason, client_addr, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		e.FileID, string(e.AccessType), string(e.AccessStatus), e.FailureReason, e.ClientAddr, e.CreatedAt.UTC(),
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByFile returns the entries of one file in insertion order.
func (r *SQLRepository) ListByFile(ctx context.Context, fileID string) ([]*models.AccessLogEntry, error) {
	query := r.dialect.Rebind(`SELECT id, file_id, access_type, access_status, failure_reason, client_addr, created_at
		FROM access_logs WHERE file_id = ? ORDER BY id`)

	rows, err := r.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to select access logs: %w", err)
	}
	defer rows.Close()

	var result []*models.AccessLogEntry
	for rows.Next() {
		var (
			e                    models.AccessLogEntry
			fid, reason          sql.NullString
			accessType, accessSt string
		)
		if err := rows.Scan(&e.ID, &fid, &accessType, &accessSt, &reason, &e.ClientAddr, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.AccessType = models.AccessType(accessType)
		e.AccessStatus = models.AccessStatus(accessSt)
		if fid.Valid {
			e.FileID = &fid.String
		}
		if reason.Valid {
			e.FailureReason = &reason.String
		}
		e.CreatedAt = e.CreatedAt.UTC()
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
