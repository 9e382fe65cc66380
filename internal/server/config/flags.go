package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/otpshare/internal/flagx"
)

// serverFlags lists every flag parseFlags understands, so unrelated
// arguments (-c, test flags) are filtered out before parsing.
var serverFlags = []string{
	"-a", "-o", "-driver", "-d", "-s",
	"-blob", "-blob-dir", "-u", "-p", "-b", "-g", "-e",
	"-base-url", "-max-upload", "-otp-min", "-otp-max", "-otp-default",
	"-attempts", "-attempts-limit", "-retries",
	"-notifier", "-smtp-host", "-smtp-port", "-smtp-user", "-smtp-password", "-smtp-from",
	"-expose-otp", "-log-level",
}

// parseFlags populates Config from command-line flags.
//
//	-a string     gRPC bind address (":50051")
//	-o string     ops HTTP bind address (":8080")
//	-driver name  postgres | sqlite
//	-d string     database DSN
//	-s string     JWT HMAC secret
//	-blob name    s3 | disk; -blob-dir for disk
//	-u -p -b -g -e  S3 user, password, bucket, region, endpoint
//	-base-url     public prefix of share links
//	-otp-min/-otp-max/-otp-default  OTP validity as a duration ("10m")
//
// A malformed flag panics.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrOps, "o", config.EndpointAddrOps, "ops HTTP address and port")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (postgres, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")

	fs.StringVar(&config.BlobBackend, "blob", config.BlobBackend, "blob backend (s3, disk)")
	fs.StringVar(&config.BlobDir, "blob-dir", config.BlobDir, "directory of the disk blob backend")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.PublicBaseURL, "base-url", config.PublicBaseURL, "public base URL of share links")
	fs.Int64Var(&config.MaxUploadBytes, "max-upload", config.MaxUploadBytes, "maximum upload size in bytes")
	fs.DurationVar(&config.MinOTPValidity, "otp-min", config.MinOTPValidity, "minimum OTP validity")
	fs.DurationVar(&config.MaxOTPValidity, "otp-max", config.MaxOTPValidity, "maximum OTP validity")
	fs.DurationVar(&config.DefaultOTPValidity, "otp-default", config.DefaultOTPValidity, "default OTP validity")
	fs.IntVar(&config.DefaultMaxAttempts, "attempts", config.DefaultMaxAttempts, "default download attempts per file")
	fs.IntVar(&config.MaxAttemptsLimit, "attempts-limit", config.MaxAttemptsLimit, "upper bound of download attempts")
	fs.IntVar(&config.MaxConflictRetries, "retries", config.MaxConflictRetries, "retries after a concurrent update")

	fs.StringVar(&config.Notifier, "notifier", config.Notifier, "notifier (smtp, log)")
	fs.StringVar(&config.SMTPHost, "smtp-host", config.SMTPHost, "SMTP relay host")
	fs.IntVar(&config.SMTPPort, "smtp-port", config.SMTPPort, "SMTP relay port")
	fs.StringVar(&config.SMTPUser, "smtp-user", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "smtp-password", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.SMTPFrom, "smtp-from", config.SMTPFrom, "sender address of OTP emails")

	fs.BoolVar(&config.ExposeOTP, "expose-otp", config.ExposeOTP, "return the OTP to the uploader (development only)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
