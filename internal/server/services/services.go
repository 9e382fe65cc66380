// Package services contains the server-side pipelines: uploading a file
// under a fresh OTP, the gated access sequence, and the owner operations on
// existing shares.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/metrics"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/notify"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
)

// Scheduler queues an OTP notification for background delivery.
// *notify.Dispatcher implements it.
type Scheduler interface {
	Enqueue(msg notify.Message) error
}

// auditor appends access log rows outside of any transaction. A failed
// append is logged and otherwise ignored: the caller already has an
// outcome to report.
type auditor struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	now         func() time.Time
}

func (a *auditor) entry(fileID *string, typ models.AccessType, err error, clientAddr string) *models.AccessLogEntry {
	e := &models.AccessLogEntry{
		FileID:       fileID,
		AccessType:   typ,
		AccessStatus: models.AccessSuccess,
		ClientAddr:   clientAddr,
		CreatedAt:    a.now().UTC(),
	}
	if err != nil {
		reason := err.Error()
		e.AccessStatus = models.AccessFailure
		e.FailureReason = &reason
	}
	return e
}

func (a *auditor) fail(ctx context.Context, fileID *string, typ models.AccessType, cause error, clientAddr string) {
	e := a.entry(fileID, typ, cause, clientAddr)
	if err := a.repomanager.AccessLogs(a.db).Append(context.WithoutCancel(ctx), e); err != nil {
		a.log.Error(ctx, "failed to append access log", "error", err, "access_type", string(typ))
	}
}

// outcome is the metrics label of an access pipeline result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, common.ErrorNotFound):
		return "not_found"
	case errors.Is(err, common.ErrNotAccessible):
		return "not_accessible"
	case errors.Is(err, common.ErrOtpExpired):
		return "otp_expired"
	case errors.Is(err, common.ErrAttemptsExhausted):
		return "attempts_exhausted"
	case errors.Is(err, common.ErrInvalidOtp):
		return "invalid_otp"
	case errors.Is(err, common.ErrKeyUnwrapFailed):
		return "key_unwrap_failed"
	case errors.Is(err, common.ErrBlobMissing):
		return "blob_missing"
	case errors.Is(err, common.ErrDecryptionFailed):
		return "decryption_failed"
	case errors.Is(err, common.ErrIntegrityMismatch):
		return "integrity_mismatch"
	case errors.Is(err, common.ErrVersionConflict):
		return "conflict"
	default:
		return "upstream"
	}
}

// securityRelevant reports failures that point at tampering or storage
// corruption rather than a user mistake.
func securityRelevant(err error) bool {
	return errors.Is(err, common.ErrKeyUnwrapFailed) ||
		errors.Is(err, common.ErrDecryptionFailed) ||
		errors.Is(err, common.ErrIntegrityMismatch) ||
		errors.Is(err, common.ErrBlobMissing)
}

// withConflictRetry runs fn again while it reports a version conflict, at
// most retries extra times.
func withConflictRetry(retries int, fn func() error) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		err = fn()
		if !errors.Is(err, common.ErrVersionConflict) {
			return err
		}
		metrics.VersionConflicts.Inc()
	}
	return err
}

func observe(pipeline string, start time.Time) {
	metrics.PipelineDuration.WithLabelValues(pipeline).Observe(time.Since(start).Seconds())
}
