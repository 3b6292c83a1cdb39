package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/core/services"
	"github.com/custodia-labs/eatwise-cli/internal/extractor"
	"github.com/custodia-labs/eatwise-cli/internal/sources"
)

const labelText = "Choco Bar 100g Ingredients: sugar, cocoa butter, milk powder. Nutrition facts per 100g"

// testEnv holds the real services wired into the command globals.
type testEnv struct {
	session  *services.ScanSession
	bus      *services.EventBus
	history  *memory.ScanStore
	settings *services.SettingsService
}

// setupTestServices wires in-memory services and restores the globals and
// flag values when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	history := memory.NewScanStore()
	bus := services.NewEventBus()
	session := services.NewScanSession(extractor.Heuristic{}, settings, bus, history)

	SetServices(&Services{
		Extract:  services.NewExtractService(extractor.Heuristic{}, settings),
		Scan:     session,
		Events:   bus,
		History:  services.NewHistoryService(history),
		Settings: settings,
		Sources:  sources.NewDefaultRegistry(collector.New()),
	})
	t.Cleanup(resetCommandState)

	return &testEnv{session: session, bus: bus, history: history, settings: settings}
}

// clearServices removes every service for tests of the unconfigured paths.
func clearServices(t *testing.T) {
	t.Helper()
	SetServices(nil)
	t.Cleanup(resetCommandState)
}

func resetCommandState() {
	SetServices(nil)
	extractJSON = false
	extractAnchors = nil
	extractStops = nil
	extractMaxLength = 0
	scanJSON = false
	watchOnce = false
	watchInterval = 0
	historyLimit = 20
	historyJSON = false
	settingsResetYes = false
	versionShort = false
	tuiFollow = false
	serveAddr = httpapi.DefaultAddr
	serveScreen = ""
	serveFollow = false
	mcpScreen = ""
	mcpFollow = false
	serveCmd.SetContext(context.Background())
	serveCmd.SetOut(nil)
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
