// Command eatwise finds ingredient lists in screen and label text.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/eatwise-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/services"
	"github.com/custodia-labs/eatwise-cli/internal/extractor"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
	"github.com/custodia-labs/eatwise-cli/internal/sources"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	var configStore driven.ConfigStore
	fileConfig, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileConfig
	}
	settings := services.NewSettingsService(configStore)

	appSettings, err := settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	maxDepth := appSettings.Collector.MaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}
	registry := sources.NewDefaultRegistry(collector.New(collector.WithMaxDepth(maxDepth)))

	var scanStore driven.ScanStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history database unavailable, keeping history in memory: %v", err)
		scanStore = memory.NewScanStore()
	} else {
		defer store.Close()
		scanStore = store.ScanStore()
	}

	locator := extractor.Heuristic{}
	bus := services.NewEventBus()

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Extract:  services.NewExtractService(locator, settings),
		Scan:     services.NewScanSession(locator, settings, bus, scanStore),
		Events:   bus,
		History:  services.NewHistoryService(scanStore),
		Settings: settings,
		Sources:  registry,
	})

	return cli.Execute(context.Background())
}
