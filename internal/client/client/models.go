package client

import (
	"time"

	pb "github.com/dmitrijs2005/otpshare/internal/proto"
)

// UploadResult is what the server reports about a new share.
type UploadResult struct {
	FileID       string
	ShareLink    string
	OTPExpiresAt time.Time
	// OTP is only set by servers running with the debug setting on.
	OTP string
}

// FileInfo is the non-secret description of a share.
type FileInfo struct {
	FileID            string
	FileName          string
	FileSize          int64
	MimeType          string
	Description       string
	UploadedAt        time.Time
	OTPExpiresAt      time.Time
	AccessCount       int
	MaxAccessAttempts int
	OneTimeAccess     bool
	Status            string
}

// DownloadedFile is a decrypted file returned by a successful access.
type DownloadedFile struct {
	FileName string
	MimeType string
	Content  []byte
}

type AccessLogEntry struct {
	ID            int64
	AccessType    string
	AccessStatus  string
	FailureReason string
	ClientAddr    string
	CreatedAt     time.Time
}

func fileInfoFromProto(f *pb.FileInfo) FileInfo {
	return FileInfo{
		FileID:            f.GetFileId(),
		FileName:          f.GetFileName(),
		FileSize:          f.GetFileSize(),
		MimeType:          f.GetMimeType(),
		Description:       f.GetDescription(),
		UploadedAt:        f.GetUploadedAt().AsTime(),
		OTPExpiresAt:      f.GetOtpExpiresAt().AsTime(),
		AccessCount:       int(f.GetAccessCount()),
		MaxAccessAttempts: int(f.GetMaxAccessAttempts()),
		OneTimeAccess:     f.GetOneTimeAccess(),
		Status:            f.GetStatus(),
	}
}

func accessLogEntryFromProto(e *pb.AccessLogEntry) AccessLogEntry {
	return AccessLogEntry{
		ID:            e.GetId(),
		AccessType:    e.GetAccessType(),
		AccessStatus:  e.GetAccessStatus(),
		FailureReason: e.GetFailureReason(),
		ClientAddr:    e.GetClientAddr(),
		CreatedAt:     e.GetCreatedAt().AsTime(),
	}
}
