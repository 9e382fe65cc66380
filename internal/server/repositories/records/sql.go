package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

const columns = `id, owner_id, owner_email, original_filename, mime_type, file_size, description,
	recipient_email, encrypted_filename, original_file_hash, encrypted_aes_key, key_salt, file_iv, key_iv,
	otp_hash, otp_created_at, otp_expires_at, max_access_attempts, access_count, one_time_access,
	last_access_timestamp, file_status, version, upload_timestamp`

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// Queries are written with "?" and rebound for the dialect.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewPostgresRepository binds a repository to a pgx-backed handle.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Dollar}
}

// NewSQLiteRepository binds a repository to a modernc sqlite handle.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Question}
}

// Insert stores a new record with version 1 unless rec.Version is set.
func (r *SQLRepository) Insert(ctx context.Context, rec *models.FileRecord) error {
	if rec.Version == 0 {
		rec.Version = 1
	}
	query := r.dialect.Rebind(`INSERT INTO file_records (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.OwnerID, rec.OwnerEmail, rec.OriginalFilename, rec.MimeType, rec.FileSize, rec.Description,
		rec.RecipientEmail, rec.EncryptedFilename, rec.OriginalFileHash, rec.EncryptedAESKey, rec.KeySalt, rec.FileIV, rec.KeyIV,
		rec.OTPHash, rec.OTPCreatedAt.UTC(), rec.OTPExpiresAt.UTC(), rec.MaxAccessAttempts, rec.AccessCount, rec.OneTimeAccess,
		utcPtr(rec.LastAccessTimestamp), string(rec.Status), rec.Version, rec.UploadTimestamp.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the record or common.ErrorNotFound.
func (r *SQLRepository) Get(ctx context.Context, id string) (*models.FileRecord, error) {
	query := r.dialect.Rebind(`SELECT ` + columns + ` FROM file_records WHERE id = ?`)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

// ConditionalUpdate applies patch when the row still has pre.Version and
// pre.Status, bumping the version. Zero affected rows is
// common.ErrVersionConflict.
func (r *SQLRepository) ConditionalUpdate(ctx context.Context, id string, pre Precondition, patch Patch) error {
	if patch.empty() {
		return errors.New("empty patch")
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)
	if patch.Status != nil {
		sets = append(sets, "file_status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.AccessCount != nil {
		sets = append(sets, "access_count = ?")
		args = append(args, *patch.AccessCount)
	}
	if patch.LastAccessAt != nil {
		sets = append(sets, "last_access_timestamp = ?")
		args = append(args, patch.LastAccessAt.UTC())
	}
	sets = append(sets, "version = version + 1")
	args = append(args, id, pre.Version, string(pre.Status))

	query := r.dialect.Rebind(`UPDATE file_records SET ` + strings.Join(sets, ", ") +
		` WHERE id = ? AND version = ? AND file_status = ?`)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// ListByOwner returns the owner's records, newest first.
func (r *SQLRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.FileRecord, error) {
	query := r.dialect.Rebind(`SELECT ` + columns + ` FROM file_records WHERE owner_id = ?
		ORDER BY upload_timestamp DESC, id`)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []*models.FileRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.FileRecord, error) {
	var (
		rec        models.FileRecord
		status     string
		lastAccess sql.NullTime
	)
	err := s.Scan(
		&rec.ID, &rec.OwnerID, &rec.OwnerEmail, &rec.OriginalFilename, &rec.MimeType, &rec.FileSize, &rec.Description,
		&rec.RecipientEmail, &rec.EncryptedFilename, &rec.OriginalFileHash, &rec.EncryptedAESKey, &rec.KeySalt, &rec.FileIV, &rec.KeyIV,
		&rec.OTPHash, &rec.OTPCreatedAt, &rec.OTPExpiresAt, &rec.MaxAccessAttempts, &rec.AccessCount, &rec.OneTimeAccess,
		&lastAccess, &status, &rec.Version, &rec.UploadTimestamp,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = models.FileStatus(status)
	rec.OTPCreatedAt = rec.OTPCreatedAt.UTC()
	rec.OTPExpiresAt = rec.OTPExpiresAt.UTC()
	rec.UploadTimestamp = rec.UploadTimestamp.UTC()
	if lastAccess.Valid {
		t := lastAccess.Time.UTC()
		rec.LastAccessTimestamp = &t
	}
	return &rec, nil
}

func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
