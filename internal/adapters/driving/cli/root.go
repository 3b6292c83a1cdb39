// Package cli provides the eatwise command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	extractService  driving.ExtractService
	scanService     driving.ScanService
	eventStream     driving.EventStream
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	textSources     driven.TextSourceRegistry
)

// Services holds the dependencies the commands use.
type Services struct {
	Extract  driving.ExtractService
	Scan     driving.ScanService
	Events   driving.EventStream
	History  driving.HistoryService
	Settings driving.SettingsService
	Sources  driven.TextSourceRegistry
}

var rootCmd = &cobra.Command{
	Use:   "eatwise",
	Short: "Find ingredient lists in screen and label text",
	Long: `eatwise locates the ingredient declaration inside product pages,
labels and other screen text, and sends it on for analysis.

Text can be piped in, read from a file, or watched for changes.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	extractService = s.Extract
	scanService = s.Scan
	eventStream = s.Events
	historyService = s.History
	settingsService = s.Settings
	textSources = s.Sources
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
