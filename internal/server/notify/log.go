package notify

import (
	"context"

	"github.com/dmitrijs2005/otpshare/internal/logging"
)

// LogNotifier writes notifications to the log instead of sending them. The
// OTP is included only when exposeOTP is set, for local development.
type LogNotifier struct {
	log       logging.Logger
	exposeOTP bool
}

func NewLogNotifier(log logging.Logger, exposeOTP bool) *LogNotifier {
	return &LogNotifier{log: log.With("module", "notify"), exposeOTP: exposeOTP}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	args := []any{
		"recipient", msg.RecipientEmail,
		"file_id", msg.FileID,
		"share_link", msg.ShareLink,
		"expiry_minutes", msg.ExpiryMinutes,
	}
	if n.exposeOTP {
		args = append(args, "otp", msg.OTP)
	}
	n.log.Info(ctx, "otp notification", args...)
	return nil
}
