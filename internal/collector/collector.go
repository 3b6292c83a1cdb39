// Package collector flattens a tree of text nodes into the single string
// the extractor reads.
//
// Each node contributes its visible text, content description, hint and
// tooltip in that order. Values are trimmed, values of one character or
// fewer are skipped, and every kept value is followed by a space. Nodes
// deeper than the depth limit are ignored so cyclic or pathological trees
// terminate.
package collector

import (
	"strings"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// Collector walks text-node trees.
type Collector struct {
	maxDepth int
}

// Option configures the collector.
type Option func(*Collector)

// WithMaxDepth sets the deepest level visited. The root is level 0.
func WithMaxDepth(depth int) Option {
	return func(c *Collector) {
		if depth >= 0 {
			c.maxDepth = depth
		}
	}
}

// New creates a collector with the default depth limit.
func New(opts ...Option) *Collector {
	c := &Collector{maxDepth: domain.DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Flatten returns the collected text of root.
func (c *Collector) Flatten(root domain.TextNode) string {
	return c.FlattenAll(root)
}

// FlattenAll collects several windows in order into one string.
// Nil roots are skipped.
func (c *Collector) FlattenAll(roots ...domain.TextNode) string {
	var b strings.Builder
	for _, root := range roots {
		c.walk(&b, root, 0)
	}
	return b.String()
}

func (c *Collector) walk(b *strings.Builder, node domain.TextNode, depth int) {
	if node == nil || depth > c.maxDepth {
		return
	}

	for _, value := range [...]string{
		node.Text(),
		node.ContentDescription(),
		node.HintText(),
		node.TooltipText(),
	} {
		value = strings.TrimSpace(value)
		if domain.RuneLen(value) > 1 {
			b.WriteString(value)
			b.WriteByte(' ')
		}
	}

	for _, child := range node.Children() {
		c.walk(b, child, depth+1)
	}
}

// Flatten collects root with the default depth limit.
func Flatten(root domain.TextNode, opts ...Option) string {
	return New(opts...).Flatten(root)
}

// FlattenAll collects roots with the default depth limit.
func FlattenAll(roots ...domain.TextNode) string {
	return New().FlattenAll(roots...)
}
