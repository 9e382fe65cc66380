package accesslogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func strPtr(s string) *string { return &s }

func TestAppend_ReturnsID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)

	mock.ExpectQuery(`^INSERT INTO access_logs \(file_id, access_type, access_status, failure_reason, client_addr, created_at\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) RETURNING id$`).
		WithArgs("f1", "otp_verify", "failure", "invalid otp", "10.0.0.1:5000", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	e := &models.AccessLogEntry{
		FileID:        strPtr("f1"),
		AccessType:    models.AccessOTPVerify,
		AccessStatus:  models.AccessFailure,
		FailureReason: strPtr("invalid otp"),
		ClientAddr:    "10.0.0.1:5000",
		CreatedAt:     now,
	}
	require.NoError(t, repo.Append(context.Background(), e))
	assert.Equal(t, int64(42), e.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_NullFileID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO access_logs`).
		WithArgs(nil, "upload", "failure", "validation error", "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	err := repo.Append(context.Background(), &models.AccessLogEntry{
		AccessType:    models.AccessUpload,
		AccessStatus:  models.AccessFailure,
		FailureReason: strPtr("validation error"),
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)
}

func TestAppend_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO access_logs`).WillReturnError(errors.New("db down"))

	err := repo.Append(context.Background(), &models.AccessLogEntry{CreatedAt: time.Now()})
	require.ErrorContains(t, err, "db error: db down")
}

func TestListByFile(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "file_id", "access_type", "access_status", "failure_reason", "client_addr", "created_at"}).
		AddRow(int64(1), "f1", "upload", "success", nil, "", now).
		AddRow(int64(2), "f1", "otp_verify", "failure", "invalid otp", "1.2.3.4", now)

	mock.ExpectQuery(`FROM access_logs WHERE file_id = \$1 ORDER BY id$`).
		WithArgs("f1").
		WillReturnRows(rows)

	got, err := repo.ListByFile(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].FailureReason)
	assert.Equal(t, models.AccessUpload, got[0].AccessType)
	require.NotNil(t, got[1].FailureReason)
	assert.Equal(t, "invalid otp", *got[1].FailureReason)
	assert.Equal(t, "f1", *got[1].FileID)
}

func TestListByFile_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM access_logs`).WillReturnError(errors.New("db err"))
		_, err := repo.ListByFile(context.Background(), "f1")
		require.ErrorContains(t, err, "failed to select access logs")
	})
	t.Run("scan", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
		mock.ExpectQuery(`FROM access_logs`).WillReturnRows(rows)
		_, err := repo.ListByFile(context.Background(), "f1")
		require.Error(t, err)
	})
}
