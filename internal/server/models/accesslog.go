package models

import "time"

type AccessType string

const (
	AccessUpload    AccessType = "upload"
	AccessDownload  AccessType = "download"
	AccessOTPVerify AccessType = "otp_verify"
)

type AccessStatus string

const (
	AccessSuccess AccessStatus = "success"
	AccessFailure AccessStatus = "failure"
)

// AccessLogEntry is an append-only audit row. FileID is nil when the
// failure happened before a record existed, or after the record was purged.
type AccessLogEntry struct {
	ID            int64
	FileID        *string
	AccessType    AccessType
	AccessStatus  AccessStatus
	FailureReason *string
	ClientAddr    string
	CreatedAt     time.Time
}
