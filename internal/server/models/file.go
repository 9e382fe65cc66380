// Package models defines the server-side records persisted in the database.
package models

import "time"

// FileStatus is the lifecycle state of a shared file.
type FileStatus string

const (
	StatusActive  FileStatus = "active"
	StatusExpired FileStatus = "expired"
	StatusRevoked FileStatus = "revoked"
	StatusDeleted FileStatus = "deleted"
)

// FileRecord is one uploaded file together with its wrapped key material
// and OTP gate. The ciphertext lives in the blob store under
// EncryptedFilename.
type FileRecord struct {
	ID         string
	OwnerID    string
	OwnerEmail string

	OriginalFilename string
	MimeType         string
	FileSize         int64
	Description      string
	RecipientEmail   string

	// EncryptedFilename is the blob-store key, users/{owner}/{id}.
	EncryptedFilename string
	// OriginalFileHash is the lowercase hex SHA-256 of the plaintext.
	OriginalFileHash string

	// Key material, base64 (standard alphabet). Written once at upload.
	EncryptedAESKey string
	KeySalt         string
	FileIV          string
	KeyIV           string

	// OTPHash is the hex SHA-256 of the OTP; the OTP itself is never stored.
	OTPHash      string
	OTPCreatedAt time.Time
	OTPExpiresAt time.Time

	MaxAccessAttempts   int
	AccessCount         int
	OneTimeAccess       bool
	LastAccessTimestamp *time.Time

	Status          FileStatus
	Version         int64
	UploadTimestamp time.Time
}

// AttemptsLeft reports how many successful downloads remain.
func (r *FileRecord) AttemptsLeft() int {
	if n := r.MaxAccessAttempts - r.AccessCount; n > 0 {
		return n
	}
	return 0
}

// FileInfo is the non-secret view of a FileRecord shown before an OTP is
// entered.
type FileInfo struct {
	ID                string
	OriginalFilename  string
	FileSize          int64
	MimeType          string
	Description       string
	UploadTimestamp   time.Time
	OTPExpiresAt      time.Time
	AccessCount       int
	MaxAccessAttempts int
	OneTimeAccess     bool
	Status            FileStatus
}

// Info projects the record onto its public view.
func (r *FileRecord) Info() FileInfo {
	return FileInfo{
		ID:                r.ID,
		OriginalFilename:  r.OriginalFilename,
		FileSize:          r.FileSize,
		MimeType:          r.MimeType,
		Description:       r.Description,
		UploadTimestamp:   r.UploadTimestamp,
		OTPExpiresAt:      r.OTPExpiresAt,
		AccessCount:       r.AccessCount,
		MaxAccessAttempts: r.MaxAccessAttempts,
		OneTimeAccess:     r.OneTimeAccess,
		Status:            r.Status,
	}
}
