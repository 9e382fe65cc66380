package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/otpshare/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Arguments it
// does not know are filtered out first with flagx.FilterArgs. A malformed
// value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-dir", "-timeout", "-max-size"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "uploader access token")
	fs.StringVar(&cfg.DownloadDir, "dir", cfg.DownloadDir, "directory for downloaded files")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-call timeout")
	fs.Int64Var(&cfg.MaxFileBytes, "max-size", cfg.MaxFileBytes, "largest file to send or accept, in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
