package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/config"
	"github.com/dmitrijs2005/otpshare/internal/server/lifecycle"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/records"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
)

// FileService implements the uploader's operations on their own shares.
// Records owned by someone else are reported as common.ErrForbidden.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	log         logging.Logger

	now func() time.Time
}

// NewFileService returns the service for owner file management and the access log.
func NewFileService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		config:      cfg,
		log:         log.With("module", "files"),
		now:         time.Now,
	}
}

// ListFiles returns the owner's files, newest first. Statuses are shown as
// of now.
func (s *FileService) ListFiles(ctx context.Context, ownerID string) ([]models.FileInfo, error) {
	recs, err := s.repomanager.Records(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.FileInfo, 0, len(recs))
	for _, r := range recs {
		view, _ := lifecycle.DecayIfExpired(*r, now)
		out = append(out, view.Info())
	}
	return out, nil
}

// RevokeFile stops all further access to a file.
func (s *FileService) RevokeFile(ctx context.Context, ownerID, fileID string) error {
	return s.transition(ctx, ownerID, fileID, models.StatusRevoked)
}

// DeleteFile marks a file deleted. The record, its audit trail and the
// ciphertext are kept.
func (s *FileService) DeleteFile(ctx context.Context, ownerID, fileID string) error {
	return s.transition(ctx, ownerID, fileID, models.StatusDeleted)
}

// ListAccessLog returns the audit rows of one of the owner's files.
func (s *FileService) ListAccessLog(ctx context.Context, ownerID, fileID string) ([]*models.AccessLogEntry, error) {
	if _, err := s.owned(ctx, ownerID, fileID); err != nil {
		return nil, err
	}
	return s.repomanager.AccessLogs(s.db).ListByFile(ctx, fileID)
}

func (s *FileService) owned(ctx context.Context, ownerID, fileID string) (*models.FileRecord, error) {
	rec, err := s.repomanager.Records(s.db).Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, common.ErrForbidden
	}
	return rec, nil
}

// transition moves the file to the target status through the lifecycle
// matrix. A lazily expired file is treated as expired, so revoking or
// deleting it is still allowed.
func (s *FileService) transition(ctx context.Context, ownerID, fileID string, to models.FileStatus) error {
	err := withConflictRetry(s.config.MaxConflictRetries, func() error {
		rec, err := s.owned(ctx, ownerID, fileID)
		if err != nil {
			return err
		}
		view, _ := lifecycle.DecayIfExpired(*rec, s.now())
		if _, err := lifecycle.Transition(view.Status, to); err != nil {
			return err
		}
		pre := records.Precondition{Version: rec.Version, Status: rec.Status}
		return s.repomanager.Records(s.db).ConditionalUpdate(ctx, fileID, pre, records.Patch{Status: &to})
	})
	if err != nil {
		return fmt.Errorf("set status %s: %w", to, err)
	}
	s.log.Info(ctx, "file status changed", "file_id", fileID, "status", string(to))
	return nil
}
