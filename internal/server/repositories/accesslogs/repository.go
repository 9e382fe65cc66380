// Package accesslogs is the append-only audit trail of uploads, OTP checks
// and downloads.
package accesslogs

import (
	"context"

	"github.com/dmitrijs2005/otpshare/internal/server/models"
)

// Repository has no update or delete on purpose: entries are immutable.
type Repository interface {
	Append(ctx context.Context, e *models.AccessLogEntry) error
	ListByFile(ctx context.Context, fileID string) ([]*models.AccessLogEntry, error)
}
