// Package styles holds the eatwise palette and the lipgloss styles built
// from it. Colours are keyed to scan outcomes so the status bar, history
// list and block view agree on what "found" or "fell back" looks like.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// Palette is the set of colours the TUI draws with.
type Palette struct {
	// Leaf is the brand green used for titles and the block frame.
	Leaf lipgloss.Color
	// Sky marks section headers such as the history count.
	Sky lipgloss.Color
	// Text is body text.
	Text lipgloss.Color
	// Faint is hints, timestamps and previews.
	Faint lipgloss.Color

	// Found is a located ingredient block.
	Found lipgloss.Color
	// Fallback is raw text sent because no block was located.
	Fallback lipgloss.Color
	// Missing is a scan that sent nothing usable.
	Missing lipgloss.Color
	// Failed is a capture or service error.
	Failed lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultPalette returns the eatwise palette. The hex values match the
// label colours the plain CLI output uses.
func DefaultPalette() *Palette {
	return &Palette{
		Leaf:     lipgloss.Color("#40A02B"),
		Sky:      lipgloss.Color("#04A5E5"),
		Text:     lipgloss.Color("#CDD6F4"),
		Faint:    lipgloss.Color("#6C7086"),
		Found:    lipgloss.Color("#A6E3A1"),
		Fallback: lipgloss.Color("#DF8E1D"),
		Missing:  lipgloss.Color("#F9E2AF"),
		Failed:   lipgloss.Color("#F38BA8"),
		Bar:      lipgloss.Color("#181825"),
	}
}

// Styles are the lipgloss styles derived from a Palette.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Success, Warning and Error colour status bar states.
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Block frames the extracted ingredient text.
	Block lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style

	outcomes map[domain.ScanOutcome]lipgloss.Style
}

// NewStyles builds styles from p. A nil palette uses DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	return &Styles{
		palette: p,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Leaf),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.Sky),
		Normal:   lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Faint),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Leaf),

		Success: lipgloss.NewStyle().Foreground(p.Found),
		Warning: lipgloss.NewStyle().Foreground(p.Fallback),
		Error:   lipgloss.NewStyle().Foreground(p.Failed),

		Block: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Leaf).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().Foreground(p.Faint).Background(p.Bar).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(p.Faint),

		outcomes: map[domain.ScanOutcome]lipgloss.Style{
			domain.OutcomeBlock:       lipgloss.NewStyle().Foreground(p.Found),
			domain.OutcomeRawFallback: lipgloss.NewStyle().Foreground(p.Fallback),
			domain.OutcomeNotFound:    lipgloss.NewStyle().Foreground(p.Missing),
			domain.OutcomeNoContent:   lipgloss.NewStyle().Foreground(p.Faint),
		},
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultPalette())
}

// Palette returns the palette these styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// Outcome returns the style for a scan outcome. Unknown outcomes render
// as normal text.
func (s *Styles) Outcome(o domain.ScanOutcome) lipgloss.Style {
	if style, ok := s.outcomes[o]; ok {
		return style
	}
	return s.Normal
}
