package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui"
)

var tuiFollow bool

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive scanner for a file.

The file is bound as the active screen. Press s to scan it; with --follow
it is rescanned every time it changes.

Controls:
  s     - Scan
  x     - Stop pending scan
  h     - History
  ↑/↓   - Navigate history
  Esc   - Back
  ?     - Toggle help
  q     - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiFollow, "follow", false, "rescan the file whenever it changes")
	rootCmd.AddCommand(tuiCmd)
}

// buildTUIApp creates the TUI model.
func buildTUIApp(ctx context.Context) (*tui.App, error) {
	app, err := tui.NewApp(&tui.Ports{
		Scan:    scanService,
		Events:  eventStream,
		History: historyService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(ctx), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	detach, err := attachScreen(ctx, path, tuiFollow)
	if err != nil {
		return err
	}
	defer detach()

	app, err := buildTUIApp(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
