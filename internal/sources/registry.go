package sources

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.TextSourceRegistry = (*Registry)(nil)

// Registry dispatches captures to the highest-priority source that
// supports their MIME type.
type Registry struct {
	mu      sync.RWMutex
	sources []driven.TextSource
}

// NewRegistry creates a registry holding the given sources.
func NewRegistry(sources ...driven.TextSource) *Registry {
	r := &Registry{}
	for _, s := range sources {
		r.Register(s)
	}
	return r
}

// Register adds a source. Sources with equal priority keep registration order.
func (r *Registry) Register(source driven.TextSource) {
	if source == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sources = append(r.sources, source)
	sort.SliceStable(r.sources, func(i, j int) bool {
		return r.sources[i].Priority() > r.sources[j].Priority()
	})
}

// Collect extracts text using the best matching source.
func (r *Registry) Collect(ctx context.Context, capture *domain.Capture) (*domain.ScreenText, error) {
	if capture == nil {
		return nil, domain.ErrInvalidInput
	}

	source := r.find(capture.MIMEType)
	if source == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, capture.MIMEType)
	}

	return source.Collect(ctx, capture)
}

// SupportedMIMETypes returns every MIME type handled by a registered source.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var types []string
	for _, s := range r.sources {
		for _, t := range s.SupportedMIMETypes() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *Registry) find(mimeType string) driven.TextSource {
	mimeType = BaseMIMEType(mimeType)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sources {
		for _, t := range s.SupportedMIMETypes() {
			if t == mimeType {
				return s
			}
		}
	}
	return nil
}

// BaseMIMEType lower-cases a MIME type and strips parameters such as charset.
func BaseMIMEType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
