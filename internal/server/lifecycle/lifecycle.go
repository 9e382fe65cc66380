// Package lifecycle is the file status state machine:
//
//	active  -> expired | revoked | deleted
//	expired -> revoked | deleted
//	revoked, deleted: terminal
//
// The active -> expired edge is taken lazily, when a record is read after
// its OTP expiry; nothing sweeps records in the background.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

var validTransitions = map[models.FileStatus]map[models.FileStatus]bool{
	models.StatusActive:  {models.StatusExpired: true, models.StatusRevoked: true, models.StatusDeleted: true},
	models.StatusExpired: {models.StatusRevoked: true, models.StatusDeleted: true},
	models.StatusRevoked: {},
	models.StatusDeleted: {},
}

// TransitionError reports a move the matrix does not allow.
type TransitionError struct {
	From, To models.FileStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to models.FileStatus) bool {
	return validTransitions[from][to]
}

// Transition returns to, or a *TransitionError when the move is forbidden.
func Transition(from, to models.FileStatus) (models.FileStatus, error) {
	if !CanTransition(from, to) {
		return from, &TransitionError{From: from, To: to}
	}
	return to, nil
}

// Accessible reports whether a file in status s may be downloaded.
func Accessible(s models.FileStatus) bool {
	return s == models.StatusActive
}

// Valid reports whether s is a known status.
func Valid(s models.FileStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// DecayIfExpired returns a copy of rec moved to expired when it is active
// and now is strictly after its OTP expiry. changed is true only when the
// status was modified; the caller persists it.
func DecayIfExpired(rec models.FileRecord, now time.Time) (models.FileRecord, bool) {
	if rec.Status != models.StatusActive || !now.After(rec.OTPExpiresAt) {
		return rec, false
	}
	rec.Status = models.StatusExpired
	return rec, true
}
