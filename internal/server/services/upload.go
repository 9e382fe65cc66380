package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/cryptox"
	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/blobstore"
	"github.com/dmitrijs2005/otpshare/internal/server/config"
	"github.com/dmitrijs2005/otpshare/internal/server/metrics"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/notify"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMimeType      = "application/octet-stream"
	maxDescriptionLength = 1000
	maxFilenameLength    = 255
)

// UploadInput is one upload request. OwnerID and OwnerEmail come from the
// caller's token; zero ValidityMinutes and MaxAttempts select the defaults.
type UploadInput struct {
	OwnerID    string
	OwnerEmail string

	Content        []byte
	FileName       string
	MimeType       string
	RecipientEmail string
	Description    string

	ValidityMinutes int
	MaxAttempts     int
	OneTimeAccess   bool

	ClientAddr string
}

// UploadResult describes a stored share. OTP is set only when the server
// runs with ExposeOTP.
type UploadResult struct {
	FileID       string
	ShareLink    string
	OTPExpiresAt time.Time
	OTP          string
}

// UploadService encrypts and stores files and schedules the OTP mail.
type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	scheduler   Scheduler
	envelope    *cryptox.Envelope
	config      *config.Config
	log         logging.Logger
	audit       *auditor

	now   func() time.Time
	newID func() string
}

// NewUploadService returns the service that encrypts, stores and shares uploads.
func NewUploadService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store, sched Scheduler,
	env *cryptox.Envelope, cfg *config.Config, log logging.Logger) *UploadService {
	log = log.With("module", "upload")
	s := &UploadService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		scheduler:   sched,
		envelope:    env,
		config:      cfg,
		log:         log,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	s.audit = &auditor{db: db, repomanager: m, log: log, now: func() time.Time { return s.now() }}
	return s
}

// keyMaterial is the per-upload randomness.
type keyMaterial struct {
	dek, salt, fileIV, keyIV []byte
	otp                      string
}

// uploadParams are the validated, defaulted request fields.
type uploadParams struct {
	fileName    string
	mimeType    string
	recipient   string
	description string
	validity    time.Duration
	maxAttempts int
}

// Upload runs the upload pipeline. Validation failures wrap
// common.ErrValidation; storage failures wrap common.ErrUpstream. Any
// failure is recorded in the access log with its reason.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (res *UploadResult, err error) {
	defer observe("upload", time.Now())
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
			s.audit.fail(ctx, nil, models.AccessUpload, err, in.ClientAddr)
			s.log.Warn(ctx, "upload failed", "owner_id", in.OwnerID, "error", err)
		}
		metrics.Uploads.WithLabelValues(status).Inc()
	}()

	if in.OwnerID == "" {
		return nil, common.ErrorUnauthorized
	}
	p, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	plainHash := cryptox.HashSHA256(in.Content)

	km, err := s.generateKeys()
	if err != nil {
		return nil, fmt.Errorf("generate key material: %w", err)
	}
	defer common.WipeByteArray(km.dek)

	ciphertext, err := cryptox.EncryptFile(in.Content, km.dek, km.fileIV)
	if err != nil {
		return nil, fmt.Errorf("encrypt file: %w", err)
	}

	kek, err := cryptox.DeriveKEK([]byte(km.otp), km.salt)
	if err != nil {
		return nil, fmt.Errorf("derive kek: %w", err)
	}
	wrapped, err := cryptox.WrapKey(km.dek, kek, km.keyIV)
	common.WipeByteArray(kek)
	if err != nil {
		return nil, fmt.Errorf("wrap key: %w", err)
	}

	now := s.now().UTC()
	id := s.newID()
	key := blobstore.Key(in.OwnerID, id)

	if err := s.blobs.Put(ctx, key, ciphertext); err != nil {
		return nil, fmt.Errorf("%w: store blob: %v", common.ErrUpstream, err)
	}

	rec := &models.FileRecord{
		ID:                id,
		OwnerID:           in.OwnerID,
		OwnerEmail:        in.OwnerEmail,
		OriginalFilename:  p.fileName,
		MimeType:          p.mimeType,
		FileSize:          int64(len(in.Content)),
		Description:       p.description,
		RecipientEmail:    p.recipient,
		EncryptedFilename: key,
		OriginalFileHash:  plainHash,
		EncryptedAESKey:   cryptox.EncodeKey(wrapped),
		KeySalt:           cryptox.EncodeKey(km.salt),
		FileIV:            cryptox.EncodeKey(km.fileIV),
		KeyIV:             cryptox.EncodeKey(km.keyIV),
		OTPHash:           cryptox.HashSHA256([]byte(km.otp)),
		OTPCreatedAt:      now,
		OTPExpiresAt:      now.Add(p.validity),
		MaxAccessAttempts: p.maxAttempts,
		OneTimeAccess:     in.OneTimeAccess,
		Status:            models.StatusActive,
		Version:           1,
		UploadTimestamp:   now,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Records(tx).Insert(ctx, rec); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		entry := s.audit.entry(&rec.ID, models.AccessUpload, nil, in.ClientAddr)
		if err := s.repomanager.AccessLogs(tx).Append(ctx, entry); err != nil {
			return fmt.Errorf("append access log: %w", err)
		}
		return nil
	})
	if err != nil {
		if derr := s.blobs.Delete(context.WithoutCancel(ctx), key); derr != nil {
			s.log.Error(ctx, "failed to remove orphaned blob", "file_id", id, "error", derr)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	link := s.shareLink(id)
	msg := notify.Message{
		RecipientEmail: p.recipient,
		SenderEmail:    in.OwnerEmail,
		FileID:         id,
		FileName:       p.fileName,
		ShareLink:      link,
		OTP:            km.otp,
		ExpiryMinutes:  int(p.validity / time.Minute),
	}
	if err := s.scheduler.Enqueue(msg); err != nil {
		s.log.Warn(ctx, "failed to schedule notification", "file_id", id, "error", err)
	}

	s.log.Info(ctx, "file uploaded", "file_id", id, "owner_id", in.OwnerID, "size", rec.FileSize)

	res = &UploadResult{
		FileID:       id,
		ShareLink:    link,
		OTPExpiresAt: rec.OTPExpiresAt,
	}
	if s.config.ExposeOTP {
		res.OTP = km.otp
	}
	return res, nil
}

func (s *UploadService) shareLink(id string) string {
	return strings.TrimRight(s.config.PublicBaseURL, "/") + common.ShareLinkPath + id
}

func (s *UploadService) generateKeys() (*keyMaterial, error) {
	km := &keyMaterial{}
	var g errgroup.Group

	g.Go(func() (err error) { km.dek, err = s.envelope.NewDEK(); return })
	g.Go(func() (err error) { km.salt, err = s.envelope.NewSalt(); return })
	g.Go(func() (err error) { km.fileIV, err = s.envelope.NewIV(); return })
	g.Go(func() (err error) { km.keyIV, err = s.envelope.NewIV(); return })
	g.Go(func() (err error) { km.otp, err = s.envelope.GenerateOTP(); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return km, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

func (s *UploadService) validate(in UploadInput) (uploadParams, error) {
	var p uploadParams
	var errs []error

	size := int64(len(in.Content))
	if size == 0 {
		errs = append(errs, invalid("file is empty"))
	} else if size > s.config.MaxUploadBytes {
		errs = append(errs, invalid("file exceeds %d bytes", s.config.MaxUploadBytes))
	}

	p.fileName = path.Base(strings.ReplaceAll(strings.TrimSpace(in.FileName), "\\", "/"))
	if p.fileName == "" || p.fileName == "." || p.fileName == "/" {
		errs = append(errs, invalid("file name is required"))
	} else if len(p.fileName) > maxFilenameLength {
		errs = append(errs, invalid("file name is longer than %d bytes", maxFilenameLength))
	}

	p.mimeType = strings.TrimSpace(in.MimeType)
	if p.mimeType == "" {
		p.mimeType = defaultMimeType
	} else if _, _, err := mime.ParseMediaType(p.mimeType); err != nil {
		errs = append(errs, invalid("mime type %q is malformed", p.mimeType))
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(in.RecipientEmail))
	if err != nil {
		errs = append(errs, invalid("recipient email %q is invalid", in.RecipientEmail))
	} else {
		p.recipient = addr.Address
	}

	p.description = strings.TrimSpace(in.Description)
	if len(p.description) > maxDescriptionLength {
		errs = append(errs, invalid("description is longer than %d bytes", maxDescriptionLength))
	}

	p.validity = s.config.DefaultOTPValidity
	if in.ValidityMinutes != 0 {
		// Checked in minutes before converting; huge values overflow Duration.
		lo, hi := int(s.config.MinOTPValidity/time.Minute), int(s.config.MaxOTPValidity/time.Minute)
		if in.ValidityMinutes < lo || in.ValidityMinutes > hi {
			errs = append(errs, invalid("validity must be between %d and %d minutes", lo, hi))
		} else {
			p.validity = time.Duration(in.ValidityMinutes) * time.Minute
		}
	}

	p.maxAttempts = s.config.DefaultMaxAttempts
	if in.MaxAttempts != 0 {
		p.maxAttempts = in.MaxAttempts
		if p.maxAttempts < 1 || p.maxAttempts > s.config.MaxAttemptsLimit {
			errs = append(errs, invalid("max attempts must be between 1 and %d", s.config.MaxAttemptsLimit))
		}
	}

	return p, errors.Join(errs...)
}
