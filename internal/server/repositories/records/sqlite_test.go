package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repotest"
)

func newRecord(id, owner string, uploaded time.Time) *models.FileRecord {
	return &models.FileRecord{
		ID:                id,
		OwnerID:           owner,
		OriginalFilename:  id + ".bin",
		MimeType:          "application/octet-stream",
		FileSize:          5,
		RecipientEmail:    "r@example.com",
		EncryptedFilename: "users/" + owner + "/" + id,
		OriginalFileHash:  "hash",
		EncryptedAESKey:   "key",
		KeySalt:           "salt",
		FileIV:            "fiv",
		KeyIV:             "kiv",
		OTPHash:           "otp",
		OTPCreatedAt:      uploaded,
		OTPExpiresAt:      uploaded.Add(5 * time.Minute),
		MaxAccessAttempts: 2,
		Status:            models.StatusActive,
		UploadTimestamp:   uploaded,
	}
}

func TestSQLite_InsertGetUpdate(t *testing.T) {
	db, m := repotest.SQLite(t)
	repo := m.Records(db)
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 9, 30, 0, 123000, time.UTC)

	require.NoError(t, repo.Insert(ctx, newRecord("f1", "u1", now)))

	got, err := repo.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, got.OTPExpiresAt.Equal(now.Add(5*time.Minute)))
	assert.Nil(t, got.LastAccessTimestamp)
	assert.False(t, got.OneTimeAccess)

	count := 1
	at := now.Add(time.Minute)
	err = repo.ConditionalUpdate(ctx, "f1",
		records.Precondition{Version: 1, Status: models.StatusActive},
		records.Patch{AccessCount: &count, LastAccessAt: &at})
	require.NoError(t, err)

	// stale version
	err = repo.ConditionalUpdate(ctx, "f1",
		records.Precondition{Version: 1, Status: models.StatusActive},
		records.Patch{AccessCount: &count})
	require.ErrorIs(t, err, common.ErrVersionConflict)

	got, err = repo.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, 1, got.AccessCount)
	require.NotNil(t, got.LastAccessTimestamp)
	assert.True(t, got.LastAccessTimestamp.Equal(at))
}

func TestSQLite_StatusPredicate(t *testing.T) {
	db, m := repotest.SQLite(t)
	repo := m.Records(db)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newRecord("f1", "u1", time.Now().UTC())))

	revoked := models.StatusRevoked
	require.NoError(t, repo.ConditionalUpdate(ctx, "f1",
		records.Precondition{Version: 1, Status: models.StatusActive}, records.Patch{Status: &revoked}))

	// right version but the row is no longer active
	count := 1
	err := repo.ConditionalUpdate(ctx, "f1",
		records.Precondition{Version: 2, Status: models.StatusActive}, records.Patch{AccessCount: &count})
	require.ErrorIs(t, err, common.ErrVersionConflict)
}

func TestSQLite_CheckConstraintBoundsAccessCount(t *testing.T) {
	db, m := repotest.SQLite(t)
	repo := m.Records(db)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newRecord("f1", "u1", time.Now().UTC())))

	over := 3
	err := repo.ConditionalUpdate(ctx, "f1",
		records.Precondition{Version: 1, Status: models.StatusActive}, records.Patch{AccessCount: &over})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrVersionConflict)
}

func TestSQLite_GetMissing(t *testing.T) {
	db, m := repotest.SQLite(t)
	_, err := m.Records(db).Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_ListByOwnerNewestFirst(t *testing.T) {
	db, m := repotest.SQLite(t)
	repo := m.Records(db)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ctx, newRecord("old", "u1", base)))
	require.NoError(t, repo.Insert(ctx, newRecord("new", "u1", base.Add(time.Hour))))
	require.NoError(t, repo.Insert(ctx, newRecord("other", "u2", base)))

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)

	none, err := repo.ListByOwner(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
