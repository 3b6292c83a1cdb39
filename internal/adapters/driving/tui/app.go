package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// eventBuffer is the subscription buffer requested from the event stream.
const eventBuffer = 16

// historyLimit is how many records the history view loads.
const historyLimit = 50

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	status  *status.Bar
	history *list.RecordList
	help    help.Model
	body    viewport.Model
	spinner spinner.Model

	// events is the active subscription, nil until Init.
	events      <-chan domain.Event
	unsubscribe func()

	// currentView tracks which view is active.
	currentView messages.ViewType

	// block is the latest ingredient text or status message shown.
	block string

	// lastEvent is the most recent event received.
	lastEvent *domain.Event

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	bar := status.NewBar(s, km)
	bar.SetReady(ports.Scan.IsReady())

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		status:      bar,
		history:     list.NewRecordList(s),
		help:        help.New(),
		body:        viewport.New(80, 20),
		spinner:     sp,
		currentView: messages.ViewScan,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It subscribes to scan events and starts the spinner.
func (a *App) Init() tea.Cmd {
	a.subscribe()
	return tea.Batch(
		tea.SetWindowTitle("eatwise - ingredient scanner"),
		a.waitForEvent(),
		a.spinner.Tick,
	)
}

// Close ends the event subscription.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.EventReceived:
		a.applyEvent(msg.Event)
		return a, a.waitForEvent()

	case messages.EventsClosed:
		return a, nil

	case messages.ScanCompleted:
		a.applyScan(msg)
		return a, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.history.SetRecords(msg.Records)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.Quit) {
		a.Close()
		return a, tea.Quit
	}

	if keymap.Matches(keyStr, a.keymap.Help) {
		if a.currentView == messages.ViewHelp {
			a.showScan()
		} else {
			a.currentView = messages.ViewHelp
			a.status.SetState(status.StateHelp)
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewHistory:
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.History) {
			a.showScan()
			return a, nil
		}
		var cmd tea.Cmd
		a.history, cmd = a.history.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(keyStr, a.keymap.Back) {
			a.showScan()
		}
		return a, nil
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Scan):
		a.err = nil
		a.status.SetState(status.StateScanning)
		return a, a.startScan()

	case keymap.Matches(keyStr, a.keymap.Stop):
		a.ports.Scan.Stop()
		a.status.SetState(status.StateIdle)
		return a, nil

	case keymap.Matches(keyStr, a.keymap.History):
		a.currentView = messages.ViewHistory
		a.status.SetState(status.StateHistory)
		return a, a.loadHistory()
	}

	var cmd tea.Cmd
	a.body, cmd = a.body.Update(msg)
	return a, cmd
}

// applyEvent updates the displayed block from a published event.
func (a *App) applyEvent(event domain.Event) {
	a.lastEvent = &event
	a.status.SetReady(a.ports.Scan.IsReady())

	switch event.Type {
	case domain.EventIngredientText:
		a.setBlock(event.Data)
		a.status.SetState(status.StateFound)
	case domain.EventStatus:
		a.setBlock(event.Data)
		a.status.SetState(status.StateNotFound)
	case domain.EventError:
		a.status.SetState(status.StateError)
		a.status.SetMessage(event.Data)
	}
}

// applyScan reconciles state with the result of a TUI-started scan.
func (a *App) applyScan(msg messages.ScanCompleted) {
	a.status.SetReady(a.ports.Scan.IsReady())

	if msg.Err != nil {
		a.setError(msg.Err)
		return
	}
	if msg.Record == nil {
		// Left pending until a screen is bound.
		a.status.SetState(status.StateScanning)
		return
	}

	switch msg.Record.Outcome {
	case domain.OutcomeBlock:
		a.status.SetState(status.StateFound)
	case domain.OutcomeRawFallback:
		a.status.SetState(status.StateFallback)
	default:
		a.status.SetState(status.StateNotFound)
	}
	a.setBlock(msg.Record.Text)
}

func (a *App) setBlock(text string) {
	a.block = text
	a.body.SetContent(lipgloss.NewStyle().Width(a.contentWidth()).Render(text))
	a.body.GotoTop()
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

func (a *App) showScan() {
	a.currentView = messages.ViewScan
	a.status.SetState(status.StateIdle)
	if a.lastEvent != nil {
		a.applyEvent(*a.lastEvent)
	}
}

func (a *App) setDimensions(width, height int) {
	a.width = width
	a.height = height
	a.status.SetWidth(width)
	a.history.SetDimensions(width, height-3)
	a.help.Width = width

	bodyHeight := height - 6
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	a.body.Width = a.contentWidth()
	a.body.Height = bodyHeight
	if a.block != "" {
		a.setBlock(a.block)
	}
}

func (a *App) contentWidth() int {
	w := a.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// subscribe opens the event subscription once.
func (a *App) subscribe() {
	if a.events != nil {
		return
	}
	a.events, a.unsubscribe = a.ports.Events.Subscribe(eventBuffer)
}

// waitForEvent returns a command that delivers the next event.
func (a *App) waitForEvent() tea.Cmd {
	events := a.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return messages.EventsClosed{}
		}
		return messages.EventReceived{Event: event}
	}
}

// startScan returns a command that runs one scan.
func (a *App) startScan() tea.Cmd {
	ctx := a.ctx
	scan := a.ports.Scan
	return func() tea.Msg {
		record, err := scan.Start(ctx)
		return messages.ScanCompleted{Record: record, Err: err}
	}
}

// loadHistory returns a command that loads recent scans.
func (a *App) loadHistory() tea.Cmd {
	if a.ports.History == nil {
		return nil
	}
	ctx := a.ctx
	history := a.ports.History
	return func() tea.Msg {
		records, err := history.List(ctx, historyLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("eatwise"))
	b.WriteString(a.styles.Muted.Render("  ingredient scanner"))
	b.WriteString("\n\n")

	switch a.currentView {
	case messages.ViewHistory:
		b.WriteString(a.history.View())
	case messages.ViewHelp:
		b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	default:
		b.WriteString(a.renderScan())
	}

	b.WriteString("\n\n")
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) renderScan() string {
	if a.status.State() == status.StateScanning {
		if !a.ports.Scan.IsReady() {
			return a.spinner.View() + a.styles.Muted.Render(" Waiting for a screen...")
		}
		return a.spinner.View() + a.styles.Normal.Render(" Scanning...")
	}
	if a.block == "" {
		return a.styles.Muted.Render("Press s to scan the screen for ingredients.")
	}

	switch a.status.State() {
	case status.StateFound, status.StateFallback:
		return a.styles.Block.Render(a.body.View())
	default:
		return a.styles.Warning.Render(a.body.View())
	}
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Block returns the text currently displayed.
func (a *App) Block() string {
	return a.block
}

// State returns the status bar state.
func (a *App) State() status.State {
	return a.status.State()
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}
