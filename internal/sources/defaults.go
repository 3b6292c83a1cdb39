package sources

import (
	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/sources/html"
	"github.com/custodia-labs/eatwise-cli/internal/sources/markdown"
	"github.com/custodia-labs/eatwise-cli/internal/sources/ocr"
	"github.com/custodia-labs/eatwise-cli/internal/sources/plaintext"
)

// RegisterDefaults registers all built-in sources with the registry.
// Tree-based sources flatten their output with c.
func RegisterDefaults(r *Registry, c *collector.Collector) {
	r.Register(plaintext.New())
	r.Register(html.New(c))
	r.Register(markdown.New(c))
	r.Register(ocr.New())
}

// NewDefaultRegistry creates a registry with all built-in sources.
func NewDefaultRegistry(c *collector.Collector) *Registry {
	r := NewRegistry()
	RegisterDefaults(r, c)
	return r
}
