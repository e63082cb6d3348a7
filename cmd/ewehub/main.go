package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selikem/ewehub/internal/cli"
	"github.com/selikem/ewehub/internal/config"
	"github.com/selikem/ewehub/internal/logging"
)

// Set via -ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

var rootCmd = &cobra.Command{
	Use:   "ewehub",
	Short: "Terminal client for the Ewe dataset collection hub",
	Long: `Terminal client for the Ewe dataset collection hub.

Starts an interactive session against the configured spreadsheet.
Configuration comes from the environment (EWEHUB_*), an optional JSON
file (-c path), and flags; see the config package for the full list.`,
	// config owns -s/-k/-l/-c; let them pass through cobra untouched
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()
		log := logging.NewDefault(cfg.LogLevel)

		app, err := cli.NewApp(cmd.Context(), cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
			os.Exit(1)
		}
		app.Run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ewehub %s (built %s)\n", buildVersion, buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
