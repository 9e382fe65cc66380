package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/cryptox"
	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/blobstore"
	"github.com/dmitrijs2005/otpshare/internal/server/config"
	"github.com/dmitrijs2005/otpshare/internal/server/lifecycle"
	"github.com/dmitrijs2005/otpshare/internal/server/metrics"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
)

// AccessResult is a decrypted, verified file.
type AccessResult struct {
	Content  []byte
	FileName string
	MimeType string
}

// AccessService runs the OTP gate in front of shared files.
//
// Every failure is returned as one of the sentinels in common (or
// *common.NotAccessibleError) and recorded in the access log with the
// same reason. Callers facing the network must not reveal which one.
type AccessService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	config      *config.Config
	log         logging.Logger
	audit       *auditor

	now func() time.Time
}

// NewAccessService returns the service behind the recipient download flow.
func NewAccessService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store,
	cfg *config.Config, log logging.Logger) *AccessService {
	log = log.With("module", "access")
	s := &AccessService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		config:      cfg,
		log:         log,
		now:         time.Now,
	}
	s.audit = &auditor{db: db, repomanager: m, log: log, now: func() time.Time { return s.now() }}
	return s
}

// GetFileInfo returns the public view of a file. An active record past its
// expiry is reported as expired; the transition itself is persisted by the
// next Access.
func (s *AccessService) GetFileInfo(ctx context.Context, fileID string) (*models.FileInfo, error) {
	rec, err := s.repomanager.Records(s.db).Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	view, _ := lifecycle.DecayIfExpired(*rec, s.now())
	info := view.Info()
	return &info, nil
}

// Access verifies otp against the file and returns its plaintext. A lost
// race on the final conditional update re-runs the whole sequence, up to
// MaxConflictRetries times.
func (s *AccessService) Access(ctx context.Context, fileID, otp, clientAddr string) (res *AccessResult, err error) {
	defer observe("access", time.Now())
	defer func() {
		metrics.AccessAttempts.WithLabelValues(outcome(err)).Inc()
	}()

	err = withConflictRetry(s.config.MaxConflictRetries, func() error {
		var aerr error
		res, aerr = s.attempt(ctx, fileID, otp, clientAddr)
		return aerr
	})
	if errors.Is(err, common.ErrVersionConflict) {
		s.failed(ctx, &fileID, models.AccessDownload, err, clientAddr)
	}
	return res, err
}

// attempt is one pass over the gate. Conflicts are returned without an
// audit row; Access logs the final one.
func (s *AccessService) attempt(ctx context.Context, fileID, otp, clientAddr string) (*AccessResult, error) {
	repo := s.repomanager.Records(s.db)

	rec, err := repo.Get(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// No row to reference: the entry is written without a file id.
			s.failed(ctx, nil, models.AccessOTPVerify, err, clientAddr)
			return nil, err
		}
		err = fmt.Errorf("%w: load record: %v", common.ErrUpstream, err)
		s.failed(ctx, &fileID, models.AccessOTPVerify, err, clientAddr)
		return nil, err
	}

	if !lifecycle.Accessible(rec.Status) {
		err := &common.NotAccessibleError{Status: string(rec.Status)}
		s.failed(ctx, &fileID, models.AccessOTPVerify, err, clientAddr)
		return nil, err
	}

	now := s.now().UTC()
	if decayed, changed := lifecycle.DecayIfExpired(*rec, now); changed {
		return nil, s.expire(ctx, rec, decayed.Status, clientAddr)
	}

	if rec.AccessCount >= rec.MaxAccessAttempts {
		s.failed(ctx, &fileID, models.AccessOTPVerify, common.ErrAttemptsExhausted, clientAddr)
		return nil, common.ErrAttemptsExhausted
	}

	if !cryptox.EqualHex(cryptox.HashSHA256([]byte(otp)), rec.OTPHash) {
		s.failed(ctx, &fileID, models.AccessOTPVerify, common.ErrInvalidOtp, clientAddr)
		return nil, common.ErrInvalidOtp
	}

	plaintext, err := s.open(ctx, rec, otp)
	if err != nil {
		s.failed(ctx, &fileID, models.AccessDownload, err, clientAddr)
		return nil, err
	}

	if err := s.commit(ctx, rec, now, clientAddr); err != nil {
		common.WipeByteArray(plaintext)
		if !errors.Is(err, common.ErrVersionConflict) {
			s.failed(ctx, &fileID, models.AccessDownload, err, clientAddr)
		}
		return nil, err
	}

	s.log.Info(ctx, "file accessed", "file_id", fileID, "access_count", rec.AccessCount+1)
	return &AccessResult{
		Content:  plaintext,
		FileName: rec.OriginalFilename,
		MimeType: rec.MimeType,
	}, nil
}

// open unwraps the DEK, fetches the ciphertext and verifies the plaintext
// against the stored digest.
func (s *AccessService) open(ctx context.Context, rec *models.FileRecord, otp string) ([]byte, error) {
	salt, err := cryptox.DecodeKey(rec.KeySalt, cryptox.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("%w: key salt: %v", common.ErrKeyUnwrapFailed, err)
	}
	keyIV, err := cryptox.DecodeKey(rec.KeyIV, cryptox.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: key iv: %v", common.ErrKeyUnwrapFailed, err)
	}
	wrapped, err := cryptox.DecodeKey(rec.EncryptedAESKey, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key: %v", common.ErrKeyUnwrapFailed, err)
	}
	fileIV, err := cryptox.DecodeKey(rec.FileIV, cryptox.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: file iv: %v", common.ErrDecryptionFailed, err)
	}

	kek, err := cryptox.DeriveKEK([]byte(otp), salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyUnwrapFailed, err)
	}
	dek, err := cryptox.UnwrapKey(wrapped, kek, keyIV)
	common.WipeByteArray(kek)
	if err != nil {
		return nil, common.ErrKeyUnwrapFailed
	}
	defer common.WipeByteArray(dek)

	ciphertext, err := s.blobs.Get(ctx, rec.EncryptedFilename)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrBlobMissing
		}
		return nil, fmt.Errorf("%w: load blob: %v", common.ErrUpstream, err)
	}

	plaintext, err := cryptox.DecryptFile(ciphertext, dek, fileIV)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}

	if !cryptox.EqualHex(cryptox.HashSHA256(plaintext), rec.OriginalFileHash) {
		common.WipeByteArray(plaintext)
		return nil, common.ErrIntegrityMismatch
	}
	return plaintext, nil
}

// expire persists the active -> expired transition together with the
// failure row. Losing the race means someone else changed the record; the
// caller re-reads it.
func (s *AccessService) expire(ctx context.Context, rec *models.FileRecord, to models.FileStatus, clientAddr string) error {
	err := dbx.WithTx(context.WithoutCancel(ctx), s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		pre := records.Precondition{Version: rec.Version, Status: rec.Status}
		if err := s.repomanager.Records(tx).ConditionalUpdate(ctx, rec.ID, pre, records.Patch{Status: &to}); err != nil {
			return err
		}
		entry := s.audit.entry(&rec.ID, models.AccessOTPVerify, common.ErrOtpExpired, clientAddr)
		return s.repomanager.AccessLogs(tx).Append(ctx, entry)
	})
	switch {
	case err == nil:
		s.log.Info(ctx, "file expired", "file_id", rec.ID)
		return common.ErrOtpExpired
	case errors.Is(err, common.ErrVersionConflict):
		return err
	default:
		err = fmt.Errorf("%w: persist expiry: %v", common.ErrUpstream, err)
		s.failed(ctx, &rec.ID, models.AccessOTPVerify, err, clientAddr)
		return err
	}
}

// commit records a successful download. It runs detached from the request
// context, so a caller that goes away after this point does not undo it.
func (s *AccessService) commit(ctx context.Context, rec *models.FileRecord, now time.Time, clientAddr string) error {
	count := rec.AccessCount + 1
	patch := records.Patch{AccessCount: &count, LastAccessAt: &now}
	if rec.OneTimeAccess {
		revoked := models.StatusRevoked
		patch.Status = &revoked
	}
	pre := records.Precondition{Version: rec.Version, Status: models.StatusActive}

	err := dbx.WithTx(context.WithoutCancel(ctx), s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Records(tx).ConditionalUpdate(ctx, rec.ID, pre, patch); err != nil {
			return err
		}
		entry := s.audit.entry(&rec.ID, models.AccessDownload, nil, clientAddr)
		return s.repomanager.AccessLogs(tx).Append(ctx, entry)
	})
	if err != nil && !errors.Is(err, common.ErrVersionConflict) {
		return fmt.Errorf("%w: commit access: %v", common.ErrUpstream, err)
	}
	return err
}

// failed writes the audit row and the server log line for a failed access.
func (s *AccessService) failed(ctx context.Context, fileID *string, typ models.AccessType, cause error, clientAddr string) {
	s.audit.fail(ctx, fileID, typ, cause, clientAddr)

	id := ""
	if fileID != nil {
		id = *fileID
	}
	if securityRelevant(cause) {
		s.log.Error(ctx, "access denied", "file_id", id, "reason", cause.Error(), "client_addr", clientAddr)
		return
	}
	s.log.Warn(ctx, "access denied", "file_id", id, "reason", cause.Error(), "client_addr", clientAddr)
}
