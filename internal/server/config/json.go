package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/otpshare/internal/flagx"
	"github.com/dmitrijs2005/otpshare/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "10m" or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	EndpointAddrOps  string `json:"endpoint_addr_ops"`

	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	SecretKey      string `json:"secret_key"`

	BlobBackend    string `json:"blob_backend"`
	BlobDir        string `json:"blob_dir"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	PublicBaseURL      string         `json:"public_base_url"`
	MaxUploadBytes     int64          `json:"max_upload_bytes"`
	MinOTPValidity     timex.Duration `json:"min_otp_validity"`
	MaxOTPValidity     timex.Duration `json:"max_otp_validity"`
	DefaultOTPValidity timex.Duration `json:"default_otp_validity"`
	DefaultMaxAttempts int            `json:"default_max_attempts"`
	MaxAttemptsLimit   int            `json:"max_attempts_limit"`
	MaxConflictRetries int            `json:"max_conflict_retries"`

	Notifier          string         `json:"notifier"`
	SMTPHost          string         `json:"smtp_host"`
	SMTPPort          int            `json:"smtp_port"`
	SMTPUser          string         `json:"smtp_user"`
	SMTPPassword      string         `json:"smtp_password"`
	SMTPFrom          string         `json:"smtp_from"`
	NotifyQueueSize   int            `json:"notify_queue_size"`
	NotifyWorkers     int            `json:"notify_workers"`
	NotifySendTimeout timex.Duration `json:"notify_send_timeout"`

	ExposeOTP bool   `json:"expose_otp"`
	LogLevel  string `json:"log_level"`
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC: c.EndpointAddrGRPC, EndpointAddrOps: c.EndpointAddrOps,
		DatabaseDriver: c.DatabaseDriver, DatabaseDSN: c.DatabaseDSN, SecretKey: c.SecretKey,
		BlobBackend: c.BlobBackend, BlobDir: c.BlobDir,
		S3RootUser: c.S3RootUser, S3RootPassword: c.S3RootPassword, S3Bucket: c.S3Bucket,
		S3Region: c.S3Region, S3BaseEndpoint: c.S3BaseEndpoint,
		PublicBaseURL: c.PublicBaseURL, MaxUploadBytes: c.MaxUploadBytes,
		MinOTPValidity:     timex.Duration{Duration: c.MinOTPValidity},
		MaxOTPValidity:     timex.Duration{Duration: c.MaxOTPValidity},
		DefaultOTPValidity: timex.Duration{Duration: c.DefaultOTPValidity},
		DefaultMaxAttempts: c.DefaultMaxAttempts, MaxAttemptsLimit: c.MaxAttemptsLimit,
		MaxConflictRetries: c.MaxConflictRetries,
		Notifier:           c.Notifier, SMTPHost: c.SMTPHost, SMTPPort: c.SMTPPort,
		SMTPUser: c.SMTPUser, SMTPPassword: c.SMTPPassword, SMTPFrom: c.SMTPFrom,
		NotifyQueueSize: c.NotifyQueueSize, NotifyWorkers: c.NotifyWorkers,
		NotifySendTimeout: timex.Duration{Duration: c.NotifySendTimeout},
		ExposeOTP:         c.ExposeOTP, LogLevel: c.LogLevel,
	}
}

func (j *JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC, c.EndpointAddrOps = j.EndpointAddrGRPC, j.EndpointAddrOps
	c.DatabaseDriver, c.DatabaseDSN, c.SecretKey = j.DatabaseDriver, j.DatabaseDSN, j.SecretKey
	c.BlobBackend, c.BlobDir = j.BlobBackend, j.BlobDir
	c.S3RootUser, c.S3RootPassword, c.S3Bucket = j.S3RootUser, j.S3RootPassword, j.S3Bucket
	c.S3Region, c.S3BaseEndpoint = j.S3Region, j.S3BaseEndpoint
	c.PublicBaseURL, c.MaxUploadBytes = j.PublicBaseURL, j.MaxUploadBytes
	c.MinOTPValidity = j.MinOTPValidity.Duration
	c.MaxOTPValidity = j.MaxOTPValidity.Duration
	c.DefaultOTPValidity = j.DefaultOTPValidity.Duration
	c.DefaultMaxAttempts, c.MaxAttemptsLimit = j.DefaultMaxAttempts, j.MaxAttemptsLimit
	c.MaxConflictRetries = j.MaxConflictRetries
	c.Notifier, c.SMTPHost, c.SMTPPort = j.Notifier, j.SMTPHost, j.SMTPPort
	c.SMTPUser, c.SMTPPassword, c.SMTPFrom = j.SMTPUser, j.SMTPPassword, j.SMTPFrom
	c.NotifyQueueSize, c.NotifyWorkers = j.NotifyQueueSize, j.NotifyWorkers
	c.NotifySendTimeout = j.NotifySendTimeout.Duration
	c.ExposeOTP, c.LogLevel = j.ExposeOTP, j.LogLevel
}

// parseJson overlays the JSON file named by -c/-config onto config. Keys
// absent from the file keep their current values. An unreadable or invalid
// file panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	j := toJson(config)
	if err := json.Unmarshal(file, j); err != nil {
		panic(err)
	}
	j.apply(config)
}
