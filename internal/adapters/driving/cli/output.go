package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

var (
	blockStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#40A02B")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DF8E1D"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render applies style only when writing to a terminal.
func render(cmd *cobra.Command, style lipgloss.Style, s string) string {
	if !isTerminal(cmd.OutOrStdout()) {
		return s
	}
	return style.Render(s)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printEvent writes one scan event as a single line.
func printEvent(cmd *cobra.Command, e domain.Event) {
	switch e.Type {
	case domain.EventIngredientText:
		cmd.Println(render(cmd, labelStyle, "[ingredients]"), e.Data)
	case domain.EventStatus:
		cmd.Println(render(cmd, warnStyle, "[status]"), e.Data)
	case domain.EventError:
		cmd.Println(render(cmd, warnStyle, "[error "+e.Code+"]"), e.Data)
	default:
		cmd.Println("["+e.Type.String()+"]", e.Data)
	}
}

// printRecord writes a scan record summary.
func printRecord(cmd *cobra.Command, r *domain.ScanRecord) {
	cmd.Printf("%s %s\n", render(cmd, labelStyle, "ID:"), r.ID)
	cmd.Printf("%s %s\n", render(cmd, labelStyle, "Source:"), r.Source)
	cmd.Printf("%s %s\n", render(cmd, labelStyle, "Outcome:"), r.Outcome.Description())
	if r.Anchor != "" {
		cmd.Printf("%s %s\n", render(cmd, labelStyle, "Anchor:"), r.Anchor)
	}
	cmd.Printf("%s %d characters\n", render(cmd, labelStyle, "Screen text:"), r.RawLength)
	cmd.Printf("%s %s\n", render(cmd, labelStyle, "When:"), r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Println()
	cmd.Println(render(cmd, blockStyle, r.Text))
}
