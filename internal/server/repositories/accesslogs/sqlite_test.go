package accesslogs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repotest"
)

func TestSQLite_AppendAndList(t *testing.T) {
	db, m := repotest.SQLite(t)
	repo := m.AccessLogs(db)
	ctx := context.Background()

	fid := "f1"
	other := "f2"
	reason := "invalid otp"
	now := time.Now().UTC()

	first := &models.AccessLogEntry{FileID: &fid, AccessType: models.AccessUpload, AccessStatus: models.AccessSuccess, CreatedAt: now}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, &models.AccessLogEntry{FileID: &other, AccessType: models.AccessUpload, AccessStatus: models.AccessSuccess, CreatedAt: now}))
	require.NoError(t, repo.Append(ctx, &models.AccessLogEntry{FileID: &fid, AccessType: models.AccessOTPVerify, AccessStatus: models.AccessFailure, FailureReason: &reason, ClientAddr: "1.1.1.1", CreatedAt: now}))
	require.NoError(t, repo.Append(ctx, &models.AccessLogEntry{AccessType: models.AccessUpload, AccessStatus: models.AccessFailure, CreatedAt: now}))

	assert.NotZero(t, first.ID)

	got, err := repo.ListByFile(ctx, fid)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.AccessOTPVerify, got[1].AccessType)
	assert.Equal(t, "invalid otp", *got[1].FailureReason)
	assert.Equal(t, "1.1.1.1", got[1].ClientAddr)
	assert.True(t, got[0].CreatedAt.Equal(now))
}
