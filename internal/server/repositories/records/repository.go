// Package records persists FileRecords. Key material is written by Insert
// only; ConditionalUpdate can touch the status, counters and last access
// time and nothing else.
package records

import (
	"context"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, rec *models.FileRecord) error
	Get(ctx context.Context, id string) (*models.FileRecord, error)
	ConditionalUpdate(ctx context.Context, id string, pre Precondition, patch Patch) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.FileRecord, error)
}

// Precondition is the row state an update is conditioned on. A row whose
// version or status differ is left untouched and the update reports
// common.ErrVersionConflict.
type Precondition struct {
	Version int64
	Status  models.FileStatus
}

// Patch lists the fields to change; nil fields are kept.
type Patch struct {
	Status       *models.FileStatus
	AccessCount  *int
	LastAccessAt *time.Time
}

func (p Patch) empty() bool {
	return p.Status == nil && p.AccessCount == nil && p.LastAccessAt == nil
}
