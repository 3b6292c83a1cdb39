package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func TestSettingsCmd_NotConfigured(t *testing.T) {
	clearServices(t)

	for _, args := range [][]string{
		{"settings"},
		{"settings", "set", "watch.interval", "1s"},
		{"settings", "keys"},
		{"settings", "reset", "--yes"},
	} {
		_, err := execute(t, "", args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[Extraction]")
	assert.Contains(t, out, "ingredients:")
	assert.Contains(t, out, "Max block length: 2000")
	assert.Contains(t, out, "Min block length: 20")
	assert.Contains(t, out, "Raw fallback: above 100 characters")
	assert.Contains(t, out, "Max depth: 50")
	assert.Contains(t, out, "Interval: 500ms")
}

func TestSettingsShow_FallbackDisabled(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.Set("extraction.fallback_min_length", "-1"))

	out, err := execute(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Raw fallback: disabled")
}

func TestSettingsSet(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "", "settings", "set", "extraction.anchors", "zutaten:, ingredients:")
	require.NoError(t, err)
	assert.Contains(t, out, "extraction.anchors updated.")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.KeywordSet{"zutaten:", "ingredients:"}, settings.Extraction.Anchors)

	_, err = execute(t, "", "settings", "set", "watch.interval", "2s")
	require.NoError(t, err)
	settings, err = env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, settings.Watch.Interval)
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "settings", "set", "extraction.max_block_length", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid setting")

	_, err = execute(t, "", "settings", "set", "unknown.key", "1")
	require.Error(t, err)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "settings", "set", "watch.interval")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsKeys(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "keys")

	require.NoError(t, err)
	assert.Contains(t, out, "extraction.anchors")
	assert.Contains(t, out, "collector.max_depth")
	assert.Contains(t, out, "watch.interval")
}

func TestSettingsReset(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
		reset    bool
	}{
		{name: "Confirmed", args: []string{"settings", "reset"}, stdin: "y\n", expected: "restored", reset: true},
		{name: "Declined", args: []string{"settings", "reset"}, stdin: "n\n", expected: "Cancelled.", reset: false},
		{name: "No answer", args: []string{"settings", "reset"}, stdin: "", expected: "Cancelled.", reset: false},
		{name: "Yes flag", args: []string{"settings", "reset", "--yes"}, stdin: "", expected: "restored", reset: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t)
			require.NoError(t, env.settings.Set("extraction.min_block_length", "5"))

			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)

			settings, err := env.settings.Get()
			require.NoError(t, err)
			if tt.reset {
				assert.Equal(t, domain.DefaultMinBlockLength, settings.Extraction.MinBlockLength)
			} else {
				assert.Equal(t, 5, settings.Extraction.MinBlockLength)
			}
		})
	}
}
