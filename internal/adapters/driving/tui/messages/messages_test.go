package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewScan, "scan"},
		{ViewHistory, "history"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestMessages_CarryPayload(t *testing.T) {
	event := EventReceived{Event: domain.Event{Type: domain.EventStatus, Data: "hi"}}
	assert.Equal(t, domain.EventStatus, event.Event.Type)

	completed := ScanCompleted{Err: errors.New("boom")}
	assert.Nil(t, completed.Record)
	assert.EqualError(t, completed.Err, "boom")

	loaded := HistoryLoaded{Records: []domain.ScanRecord{{ID: "a"}}}
	assert.Len(t, loaded.Records, 1)
}
