package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/screen"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

var scanJSON bool

// scanOutput is the JSON form of a one-shot scan.
type scanOutput struct {
	Events []domain.Event      `json:"events"`
	Record *domain.ScanRecord `json:"record,omitempty"`
}

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Scan a file once and publish the result",
	Long: `Binds the file as the active screen, runs one scan and prints the
published events and the history record.

A block is sent when an anchor is found and the block is long enough.
Otherwise the full text is sent when it is long enough, or a status
message asks to scroll to the ingredients.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output events and record as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	var events <-chan domain.Event
	if eventStream != nil {
		ch, unsubscribe := eventStream.Subscribe(8)
		defer unsubscribe()
		events = ch
	}

	scanService.Bind(screen.NewFileScreen(args[0], textSources))
	defer scanService.Unbind()

	record, err := scanService.Start(cmd.Context())
	published := drainEvents(events)
	if err != nil {
		for _, e := range published {
			printEvent(cmd, e)
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		return printJSON(cmd, scanOutput{Events: published, Record: record})
	}

	for _, e := range published {
		printEvent(cmd, e)
	}
	if record != nil {
		cmd.Println()
		printRecord(cmd, record)
	}
	return nil
}

// drainEvents collects whatever is buffered on ch without blocking.
func drainEvents(ch <-chan domain.Event) []domain.Event {
	if ch == nil {
		return nil
	}
	var out []domain.Event
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}
