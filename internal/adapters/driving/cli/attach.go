package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/eatwise-cli/internal/adapters/driven/screen"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// attachScreen binds path as the active screen of the scan session. With
// follow set the screen is rescanned on every change until ctx is done.
// The returned function unbinds the screen. An empty path binds nothing.
func attachScreen(ctx context.Context, path string, follow bool) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if scanService == nil {
		return nil, errors.New("scan service not configured")
	}

	scanService.Bind(screen.NewFileScreen(path, textSources))

	if follow {
		watcher := screen.NewWatcher(path, continuousScan{scan: scanService},
			screen.WithInterval(resolveWatchInterval()))
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("watcher stopped: %v", err)
			}
		}()
	}

	return scanService.Unbind, nil
}
