package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/screen"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
)

var (
	watchOnce     bool
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Scan a file every time it changes",
	Long: `Binds the file as the active screen and scans it whenever it is written.

By default the file is scanned immediately and again after every change.
With --once the command arms a single scan, waits for the next change,
prints the result and exits.

Changes closer together than --interval are coalesced into one scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "scan on the next change and exit")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "minimum time between scans (0 = configured)")
	rootCmd.AddCommand(watchCmd)
}

// continuousScan re-arms the session on every change.
type continuousScan struct {
	scan driving.ScanService
}

func (c continuousScan) ContentChanged(ctx context.Context) (*domain.ScanRecord, error) {
	return c.scan.Start(ctx)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	path := args[0]
	fileScreen := screen.NewFileScreen(path, textSources)

	var handler screen.ChangeHandler = scanService
	if watchOnce {
		// Armed before binding so the scan waits for the first change.
		if _, err := scanService.Start(ctx); err != nil {
			return fmt.Errorf("arming scan: %w", err)
		}
		scanService.Bind(fileScreen)
	} else {
		scanService.Bind(fileScreen)
		record, err := scanService.Start(ctx)
		if err != nil {
			cmd.PrintErrf("scan failed: %v\n", err)
		} else if record != nil {
			printWatchResult(cmd, record)
		}
		handler = continuousScan{scan: scanService}
	}
	defer scanService.Unbind()
	defer scanService.Stop()

	watcher := screen.NewWatcher(path, handler,
		screen.WithInterval(resolveWatchInterval()),
		screen.WithResultFunc(func(record *domain.ScanRecord, err error) {
			if err != nil {
				cmd.PrintErrf("scan failed: %v\n", err)
				return
			}
			if record == nil {
				return
			}
			printWatchResult(cmd, record)
			if watchOnce {
				cancel()
			}
		}),
	)

	cmd.Printf("Watching %s (interval %s). Press Ctrl+C to stop.\n", path, watcher.Interval())
	if err := watcher.Run(ctx); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// resolveWatchInterval prefers the flag, then the configured interval.
func resolveWatchInterval() time.Duration {
	if watchInterval > 0 {
		return watchInterval
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Watch.Interval > 0 {
			return settings.Watch.Interval
		}
	}
	return screen.DefaultInterval
}

func printWatchResult(cmd *cobra.Command, record *domain.ScanRecord) {
	stamp := record.CreatedAt.Local().Format("15:04:05")
	cmd.Printf("%s %s\n", render(cmd, mutedStyle, stamp), render(cmd, labelStyle, record.Outcome.Description()))
	cmd.Println(record.Text)
}
