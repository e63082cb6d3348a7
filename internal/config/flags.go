package config

import (
	"flag"
	"os"

	"github.com/selikem/ewehub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   spreadsheet id
//	-k string   path to the service-account credentials file
//	-l string   log level
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, so cobra and the JSON-config flag stay undisturbed.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SpreadsheetID, "s", cfg.SpreadsheetID, "spreadsheet id")
	fs.StringVar(&cfg.CredentialsFile, "k", cfg.CredentialsFile, "service account credentials file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
