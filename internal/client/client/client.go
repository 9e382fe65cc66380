package client

import "context"

// UploadParams describes a file to share.
type UploadParams struct {
	FileName        string
	MimeType        string
	RecipientEmail  string
	Description     string
	ValidityMinutes int
	MaxAttempts     int
	OneTimeAccess   bool
	Content         []byte
}

type Client interface {
	Close() error
	Upload(ctx context.Context, p UploadParams) (*UploadResult, error)
	Info(ctx context.Context, fileID string) (*FileInfo, error)
	Download(ctx context.Context, fileID, otp string) (*DownloadedFile, error)
	List(ctx context.Context) ([]FileInfo, error)
	Revoke(ctx context.Context, fileID string) error
	Delete(ctx context.Context, fileID string) error
	AccessLog(ctx context.Context, fileID string) ([]AccessLogEntry, error)
}
