package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding func(*KeyMap) bool
	}{
		{"q quits", func(k *KeyMap) bool { return Matches("q", k.Quit) }},
		{"ctrl+c quits", func(k *KeyMap) bool { return Matches("ctrl+c", k.Quit) }},
		{"s scans", func(k *KeyMap) bool { return Matches("s", k.Scan) }},
		{"x stops", func(k *KeyMap) bool { return Matches("x", k.Stop) }},
		{"h shows history", func(k *KeyMap) bool { return Matches("h", k.History) }},
		{"esc goes back", func(k *KeyMap) bool { return Matches("esc", k.Back) }},
		{"k moves up", func(k *KeyMap) bool { return Matches("k", k.Up) }},
		{"j moves down", func(k *KeyMap) bool { return Matches("j", k.Down) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.binding(km))
		})
	}
}

func TestMatches_NoMatch(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("s", km.Quit))
	assert.False(t, Matches("", km.Scan))
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ShortHelp()

	require.Len(t, help, 4)
	assert.Equal(t, "s", help[0].Help().Key)
	assert.Equal(t, "scan", help[0].Help().Desc)
	assert.Equal(t, "q", help[3].Help().Key)
}

func TestHistoryHelp(t *testing.T) {
	help := DefaultKeyMap().HistoryHelp()

	require.Len(t, help, 4)
	assert.Equal(t, "esc", help[2].Help().Key)
}

func TestFullHelp(t *testing.T) {
	groups := DefaultKeyMap().FullHelp()

	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 4)
	assert.Len(t, groups[2], 2)
}
