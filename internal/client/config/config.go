package config

import "time"

// Config holds runtime settings for the otpshare CLI.
//
// AccessToken is only needed for uploads and owner commands; recipients
// download with the file id and OTP alone.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	DownloadDir        string
	RequestTimeout     time.Duration
	MaxFileBytes       int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DownloadDir = "."
	c.RequestTimeout = 30 * time.Second
	c.MaxFileBytes = 100 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
