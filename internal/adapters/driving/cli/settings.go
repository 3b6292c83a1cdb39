package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

var settingsResetYes bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the extraction keywords, thresholds and watch options.

Settings are stored in ~/.eatwise/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting. Keyword lists are comma separated.

Examples:
  eatwise settings set extraction.anchors "ingredients:,zutaten:"
  eatwise settings set extraction.fallback_min_length -1
  eatwise settings set watch.interval 2s`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the setting keys",
	RunE:  runSettingsKeys,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsResetCmd.Flags().BoolVarP(&settingsResetYes, "yes", "y", false, "skip confirmation")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	ex := settings.Extraction
	cmd.Println("[Extraction]")
	cmd.Printf("  Anchors: %s\n", ex.Anchors.String())
	cmd.Printf("  Stops: %s\n", ex.Stops.String())
	cmd.Printf("  Stop offset: %d\n", ex.StopOffset)
	cmd.Printf("  Max block length: %d\n", ex.MaxBlockLength)
	cmd.Printf("  Min block length: %d\n", ex.MinBlockLength)
	if ex.FallbackEnabled() {
		cmd.Printf("  Raw fallback: above %d characters\n", ex.FallbackMinLength)
	} else {
		cmd.Printf("  Raw fallback: disabled\n")
	}
	cmd.Println()

	cmd.Println("[Collector]")
	cmd.Printf("  Max depth: %d\n", settings.Collector.MaxDepth)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Interval: %s\n", settings.Watch.Interval)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("invalid setting: %w", err)
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if !settingsResetYes {
		cmd.Print("Restore default settings? [y/N]: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}
