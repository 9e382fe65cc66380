package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/otpshare/internal/flagx"
	"github.com/dmitrijs2005/otpshare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell a missing key from a zero value.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	AccessToken        *string         `json:"access_token"`
	DownloadDir        *string         `json:"download_dir"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	MaxFileBytes       *int64          `json:"max_file_bytes"`
}

// parseJson overlays Config with the JSON file named by -c/-config. Keys
// absent from the file keep their current values. Read or unmarshal errors
// panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.AccessToken != nil {
		cfg.AccessToken = *jc.AccessToken
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxFileBytes != nil {
		cfg.MaxFileBytes = *jc.MaxFileBytes
	}
}
