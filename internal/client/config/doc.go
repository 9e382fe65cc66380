// Package config loads runtime configuration for the otpshare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string        address:port of the server gRPC endpoint
//	-t string        uploader access token (JWT)
//	-dir string      directory downloads are written to
//	-timeout string  per-call timeout ("30s")
//	-max-size int    largest file the CLI sends or accepts, in bytes
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJhbGciOi...",
//	  "download_dir": "./downloads",
//	  "request_timeout": "30s",
//	  "max_file_bytes": 104857600
//	}
package config
