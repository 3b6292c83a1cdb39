// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// RecordList displays scan records in a navigable list.
type RecordList struct {
	records  []domain.ScanRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No scans yet")
	}

	lines := make([]string, 0, len(r.records)*2+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("History (%d)", len(r.records))), "")

	// Each record takes two lines
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.records) {
		end = len(r.records)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.records[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single record with a preview of its text.
func (r *RecordList) renderRecord(index int, record *domain.ScanRecord) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	when := record.CreatedAt.Local().Format("2006-01-02 15:04:05")
	outcome := record.Outcome.Description()

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%s  %s", indicator, when, outcome))
	} else {
		titleLine = r.styles.Normal.Render(indicator+when+"  ") + r.styles.Outcome(record.Outcome).Render(outcome)
	}

	maxPreview := r.width - 6
	if maxPreview < 20 {
		maxPreview = 20
	}
	preview := strings.Join(strings.Fields(record.Text), " ")
	return titleLine + "\n" + r.styles.Muted.Render("    "+logger.Preview(preview, maxPreview))
}

// SetRecords updates the list.
func (r *RecordList) SetRecords(records []domain.ScanRecord) {
	r.records = records
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.ScanRecord {
	return r.records
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.ScanRecord {
	if r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}
