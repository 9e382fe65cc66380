package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

var allStatuses = []models.FileStatus{
	models.StatusActive, models.StatusExpired, models.StatusRevoked, models.StatusDeleted,
}

func TestCanTransition_Matrix(t *testing.T) {
	allowed := map[[2]models.FileStatus]bool{
		{models.StatusActive, models.StatusExpired}:  true,
		{models.StatusActive, models.StatusRevoked}:  true,
		{models.StatusActive, models.StatusDeleted}:  true,
		{models.StatusExpired, models.StatusRevoked}: true,
		{models.StatusExpired, models.StatusDeleted}: true,
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]models.FileStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition("bogus", models.StatusActive))
}

func TestTransition_TerminalStatesAbsorb(t *testing.T) {
	for _, terminal := range []models.FileStatus{models.StatusRevoked, models.StatusDeleted} {
		for _, to := range allStatuses {
			got, err := Transition(terminal, to)
			var te *TransitionError
			require.True(t, errors.As(err, &te), "%s -> %s", terminal, to)
			assert.Equal(t, terminal, got)
			assert.Contains(t, te.Error(), string(terminal))
		}
	}

	got, err := Transition(models.StatusActive, models.StatusRevoked)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRevoked, got)
}

func TestAccessibleAndValid(t *testing.T) {
	assert.True(t, Accessible(models.StatusActive))
	for _, s := range allStatuses[1:] {
		assert.False(t, Accessible(s))
	}
	for _, s := range allStatuses {
		assert.True(t, Valid(s))
	}
	assert.False(t, Valid("archived"))
}

func TestDecayIfExpired(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	base := models.FileRecord{ID: "f", Status: models.StatusActive, OTPExpiresAt: exp}

	tests := []struct {
		name       string
		status     models.FileStatus
		now        time.Time
		wantStatus models.FileStatus
		wantChange bool
	}{
		{"before expiry", models.StatusActive, exp.Add(-time.Second), models.StatusActive, false},
		{"exactly at expiry", models.StatusActive, exp, models.StatusActive, false},
		{"after expiry", models.StatusActive, exp.Add(time.Nanosecond), models.StatusExpired, true},
		{"revoked stays", models.StatusRevoked, exp.Add(time.Hour), models.StatusRevoked, false},
		{"already expired", models.StatusExpired, exp.Add(time.Hour), models.StatusExpired, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base
			rec.Status = tt.status
			got, changed := DecayIfExpired(rec, tt.now)
			assert.Equal(t, tt.wantChange, changed)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.status, rec.Status, "input must not be modified")
		})
	}
}
