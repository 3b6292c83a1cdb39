package screen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/sources"
)

// Ensure FileScreen implements the interface.
var _ driven.Screen = (*FileScreen)(nil)

// FileScreen is a screen backed by a file on disk.
type FileScreen struct {
	path     string
	registry driven.TextSourceRegistry
	now      func() time.Time
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		uri = strings.TrimPrefix(uri, "file://")
	}
	return filepath.Clean(uri)
}

// NewFileScreen creates a screen that reads path on every capture.
// path may be a file:// URI.
func NewFileScreen(path string, registry driven.TextSourceRegistry) *FileScreen {
	return &FileScreen{
		path:     ResolvePath(path),
		registry: registry,
		now:      time.Now,
	}
}

// Name returns the file path.
func (s *FileScreen) Name() string {
	return s.path
}

// Path returns the file path.
func (s *FileScreen) Path() string {
	return s.path
}

// Capture reads the file and flattens its text.
// Returns domain.ErrNoContent if the file is missing or empty. A file that
// parses to no visible text is still a capture, with empty Text.
func (s *FileScreen) Capture(ctx context.Context) (*domain.ScreenText, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrNoContent, s.path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return capture(ctx, s.registry, s.path, "", content, s.now)
}

// Ensure TextScreen implements the interface.
var _ driven.Screen = (*TextScreen)(nil)

// TextScreen is a screen with fixed content.
type TextScreen struct {
	name     string
	mimeType string
	content  []byte
	registry driven.TextSourceRegistry
	now      func() time.Time
}

// NewTextScreen creates a screen that always captures content. An empty
// mimeType is detected from name and content.
func NewTextScreen(name, mimeType string, content []byte, registry driven.TextSourceRegistry) *TextScreen {
	return &TextScreen{
		name:     name,
		mimeType: mimeType,
		content:  content,
		registry: registry,
		now:      time.Now,
	}
}

// Name returns the screen name.
func (s *TextScreen) Name() string {
	return s.name
}

// Capture flattens the fixed content.
func (s *TextScreen) Capture(ctx context.Context) (*domain.ScreenText, error) {
	return capture(ctx, s.registry, s.name, s.mimeType, s.content, s.now)
}

func capture(
	ctx context.Context,
	registry driven.TextSourceRegistry,
	name, mimeType string,
	content []byte,
	now func() time.Time,
) (*domain.ScreenText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrNoContent, name)
	}
	if registry == nil {
		return nil, fmt.Errorf("%w: no text sources", domain.ErrScreenUnavailable)
	}
	if mimeType == "" {
		mimeType = sources.DetectMIMEType(name, content)
	}

	text, err := registry.Collect(ctx, &domain.Capture{
		Source:   name,
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		return nil, err
	}
	if text.CapturedAt.IsZero() {
		text.CapturedAt = now()
	}
	return text, nil
}
