package records

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

var recordColumns = []string{
	"id", "owner_id", "owner_email", "original_filename", "mime_type", "file_size", "description",
	"recipient_email", "encrypted_filename", "original_file_hash", "encrypted_aes_key", "key_salt", "file_iv", "key_iv",
	"otp_hash", "otp_created_at", "otp_expires_at", "max_access_attempts", "access_count", "one_time_access",
	"last_access_timestamp", "file_status", "version", "upload_timestamp",
}

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sampleRecord(now time.Time) *models.FileRecord {
	return &models.FileRecord{
		ID:                "f1",
		OwnerID:           "u1",
		OwnerEmail:        "owner@example.com",
		OriginalFilename:  "hello.txt",
		MimeType:          "text/plain",
		FileSize:          10,
		RecipientEmail:    "bob@example.com",
		EncryptedFilename: "users/u1/f1",
		OriginalFileHash:  "abc",
		EncryptedAESKey:   "k",
		KeySalt:           "s",
		FileIV:            "fi",
		KeyIV:             "ki",
		OTPHash:           "h",
		OTPCreatedAt:      now,
		OTPExpiresAt:      now.Add(10 * time.Minute),
		MaxAccessAttempts: 3,
		Status:            models.StatusActive,
		UploadTimestamp:   now,
	}
}

func sampleRow(now time.Time) []driver.Value {
	return []driver.Value{
		"f1", "u1", "owner@example.com", "hello.txt", "text/plain", int64(10), "",
		"bob@example.com", "users/u1/f1", "abc", "k", "s", "fi", "ki",
		"h", now, now.Add(10 * time.Minute), int64(3), int64(1), true,
		now, "active", int64(2), now,
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := sampleRecord(now)

	mock.ExpectExec(`(?s)^INSERT INTO file_records \(id, owner_id, .*upload_timestamp\)\s+VALUES \(\$1, \$2, .*\$24\)$`).
		WithArgs("f1", "u1", "owner@example.com", "hello.txt", "text/plain", int64(10), "",
			"bob@example.com", "users/u1/f1", "abc", "k", "s", "fi", "ki",
			"h", now, now.Add(10*time.Minute), 3, 0, false,
			nil, "active", int64(1), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), rec))
	assert.Equal(t, int64(1), rec.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT INTO file_records`).WillReturnError(errors.New("db down"))

	err := repo.Insert(context.Background(), sampleRecord(time.Now()))
	require.ErrorContains(t, err, "db error: db down")
}

func TestGet_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT id, owner_id, .* FROM file_records WHERE id = \$1$`).
		WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(sampleRow(now)...))

	got, err := repo.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1", got.ID)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, 1, got.AccessCount)
	assert.Equal(t, int64(2), got.Version)
	assert.True(t, got.OneTimeAccess)
	require.NotNil(t, got.LastAccessTimestamp)
	assert.True(t, got.LastAccessTimestamp.Equal(now))
	assert.Equal(t, time.UTC, got.OTPExpiresAt.Location())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM file_records WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM file_records`).WillReturnError(errors.New("conn reset"))

	_, err := repo.Get(context.Background(), "f1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestConditionalUpdate_SetsFieldsAndBumpsVersion(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()
	status := models.StatusRevoked
	count := 1

	mock.ExpectExec(`^UPDATE file_records SET file_status = \$1, access_count = \$2, last_access_timestamp = \$3, version = version \+ 1 WHERE id = \$4 AND version = \$5 AND file_status = \$6$`).
		WithArgs("revoked", 1, sqlmock.AnyArg(), "f1", int64(3), "active").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ConditionalUpdate(context.Background(), "f1",
		Precondition{Version: 3, Status: models.StatusActive},
		Patch{Status: &status, AccessCount: &count, LastAccessAt: &now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConditionalUpdate_StatusOnly(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	status := models.StatusExpired

	mock.ExpectExec(`^UPDATE file_records SET file_status = \$1, version = version \+ 1 WHERE id = \$2 AND version = \$3 AND file_status = \$4$`).
		WithArgs("expired", "f1", int64(1), "active").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ConditionalUpdate(context.Background(), "f1",
		Precondition{Version: 1, Status: models.StatusActive}, Patch{Status: &status})
	require.NoError(t, err)
}

func TestConditionalUpdate_Conflict(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	count := 2
	mock.ExpectExec(`UPDATE file_records`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConditionalUpdate(context.Background(), "f1",
		Precondition{Version: 1, Status: models.StatusActive}, Patch{AccessCount: &count})
	require.ErrorIs(t, err, common.ErrVersionConflict)
}

func TestConditionalUpdate_Errors(t *testing.T) {
	count := 2
	pre := Precondition{Version: 1, Status: models.StatusActive}

	t.Run("empty patch", func(t *testing.T) {
		repo, _ := newRepoWithMock(t)
		require.EqualError(t, repo.ConditionalUpdate(context.Background(), "f1", pre, Patch{}), "empty patch")
	})
	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`UPDATE file_records`).WillReturnError(errors.New("db err"))
		require.ErrorContains(t, repo.ConditionalUpdate(context.Background(), "f1", pre, Patch{AccessCount: &count}), "db err")
	})
	t.Run("rows affected error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`UPDATE file_records`).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))
		require.ErrorContains(t, repo.ConditionalUpdate(context.Background(), "f1", pre, Patch{AccessCount: &count}), "rows affected error")
	})
	t.Run("too many rows", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(`UPDATE file_records`).WillReturnResult(sqlmock.NewResult(0, 2))
		require.ErrorContains(t, repo.ConditionalUpdate(context.Background(), "f1", pre, Patch{AccessCount: &count}), "unexpected rows affected: 2")
	})
}

func TestListByOwner(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	second := sampleRow(now)
	second[0] = "f2"
	second[20] = nil

	mock.ExpectQuery(`(?s)FROM file_records WHERE owner_id = \$1\s+ORDER BY upload_timestamp DESC, id$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(sampleRow(now)...).AddRow(second...))

	got, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "f2", got[1].ID)
	assert.Nil(t, got[1].LastAccessTimestamp)
}

func TestListByOwner_RowsErr(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	rows := sqlmock.NewRows(recordColumns).AddRow(sampleRow(now)...).AddRow(sampleRow(now)...).
		RowError(1, errors.New("row-err"))
	mock.ExpectQuery(`FROM file_records WHERE owner_id`).WithArgs("u1").WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), "u1")
	require.EqualError(t, err, "row-err")
}

func TestListByOwner_QueryErr(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM file_records WHERE owner_id`).WillReturnError(errors.New("db err"))

	_, err := repo.ListByOwner(context.Background(), "u1")
	require.ErrorContains(t, err, "failed to select records: db err")
}
