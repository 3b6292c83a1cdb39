// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateFound    State = "found"
	StateFallback State = "fallback"
	StateNotFound State = "not_found"
	StateError    State = "error"
	StateHistory  State = "history"
	StateHelp     State = "help"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	ready   bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	screen := s.styles.Muted.Render("no screen")
	if s.ready {
		screen = s.styles.Success.Render("screen bound")
	}

	var state string
	switch s.state {
	case StateScanning:
		state = s.styles.Normal.Render("Scanning...")
	case StateFound:
		state = s.styles.Success.Render("Ingredients found")
	case StateFallback:
		state = s.styles.Warning.Render("Sent raw text")
	case StateNotFound:
		state = s.styles.Warning.Render("No ingredients")
	case StateError:
		if s.message != "" {
			state = s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		} else {
			state = s.styles.Error.Render("Error")
		}
	case StateHistory:
		state = s.styles.Normal.Render("History")
	case StateHelp:
		state = s.styles.Normal.Render("Help")
	default:
		state = s.styles.Muted.Render("Idle")
	}

	return screen + s.styles.Muted.Render(" | ") + state
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.state == StateHistory {
		bindings = s.keymap.HistoryHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetReady records whether a screen is bound.
func (s *Bar) SetReady(ready bool) {
	s.ready = ready
}

// Ready reports whether a screen is bound.
func (s *Bar) Ready() bool {
	return s.ready
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateIdle
	s.message = ""
}
