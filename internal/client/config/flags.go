package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/projectboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the API server
//	-s string   path of the local token database
//	-k string   path of the device key file
//	-l string   log level
//
// Only these flags are parsed; args is filtered with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the API server")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local token database")
	fs.StringVar(&cfg.DeviceKeyPath, "k", cfg.DeviceKeyPath, "path of the device key file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
