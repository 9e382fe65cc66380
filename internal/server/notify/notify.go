// Package notify delivers OTPs to recipients. Delivery runs on a background
// Dispatcher so an upload never waits for, or fails because of, email.
package notify

import (
	"context"
	"fmt"
	"strings"
)

// Message carries everything a recipient needs to open a shared file.
// OTP is the only secret; adapters must not log it.
type Message struct {
	RecipientEmail string
	SenderEmail    string
	FileID         string
	FileName       string
	ShareLink      string
	OTP            string
	ExpiryMinutes  int
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Subject is the email subject line for msg.
func Subject(msg Message) string {
	return fmt.Sprintf("A file has been shared with you: %s", msg.FileName)
}

// Body renders the plain-text email body.
func Body(msg Message) string {
	var b strings.Builder
	sender := msg.SenderEmail
	if sender == "" {
		sender = "Someone"
	}
	fmt.Fprintf(&b, "%s shared the file %q with you.\r\n\r\n", sender, msg.FileName)
	fmt.Fprintf(&b, "Open it here: %s\r\n", msg.ShareLink)
	fmt.Fprintf(&b, "Your one-time password: %s\r\n\r\n", msg.OTP)
	fmt.Fprintf(&b, "The password expires in %d minutes.\r\n", msg.ExpiryMinutes)
	return b.String()
}
