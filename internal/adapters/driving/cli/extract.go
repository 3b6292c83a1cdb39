package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/screen"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

var (
	extractJSON      bool
	extractAnchors   []string
	extractStops     []string
	extractMaxLength int
)

// extractOutput is the JSON form of an extracted block.
type extractOutput struct {
	Found  bool   `json:"found"`
	Block  string `json:"block"`
	Anchor string `json:"anchor,omitempty"`
	Stop   string `json:"stop,omitempty"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

var extractCmd = &cobra.Command{
	Use:   "extract [file|-]",
	Short: "Extract the ingredient list from text",
	Long: `Reads text from a file or standard input and prints the ingredient block.

HTML and Markdown files are flattened to visible text first; images are
read with OCR when eatwise is built with the tesseract tag.

Examples:
  eatwise extract label.txt
  pbpaste | eatwise extract --json
  eatwise extract page.html --anchor zutaten --stop nährwerte`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the block as JSON")
	extractCmd.Flags().StringSliceVar(&extractAnchors, "anchor", nil, "anchor phrase (repeatable, replaces configured anchors)")
	extractCmd.Flags().StringSliceVar(&extractStops, "stop", nil, "stop phrase (repeatable, replaces configured stops)")
	extractCmd.Flags().IntVar(&extractMaxLength, "max-length", 0, "maximum block length in characters (0 = configured)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractService == nil {
		return errors.New("extract service not configured")
	}

	name, content, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	text, err := flattenInput(cmd, name, content)
	if err != nil {
		return err
	}

	settings, err := extractService.Settings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if len(extractAnchors) > 0 {
		settings.Anchors = extractAnchors
	}
	if len(extractStops) > 0 {
		settings.Stops = extractStops
	}
	if extractMaxLength > 0 {
		settings.MaxBlockLength = extractMaxLength
	}

	block, err := extractService.ExtractWithSettings(text, settings)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if extractJSON {
		return printJSON(cmd, extractOutput{
			Found:  block.Found(),
			Block:  block.Text,
			Anchor: block.Anchor,
			Stop:   block.Stop,
			Start:  block.Start,
			End:    block.End,
		})
	}

	if !block.Found() {
		cmd.Println("No ingredient list found.")
		return nil
	}
	cmd.Println(render(cmd, blockStyle, block.Text))
	return nil
}

// readInput reads the named file, or standard input for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], content, nil
}

// flattenInput turns raw input into screen text using the text sources.
// Without sources the content is used as is.
func flattenInput(cmd *cobra.Command, name string, content []byte) (string, error) {
	if textSources == nil {
		return string(content), nil
	}

	text, err := screen.NewTextScreen(name, "", content, textSources).Capture(cmd.Context())
	if errors.Is(err, domain.ErrNoContent) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return text.Text, nil
}
