// Package html provides a text source that reads an HTML page the way a
// screen reader would: visible text plus alt, aria-label, placeholder and
// title attributes, in document order.
package html

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TextSource = (*Source)(nil)

// Source handles HTML captures.
type Source struct {
	collector *collector.Collector
}

// New creates a new HTML source. A nil collector uses the defaults.
func New(c *collector.Collector) *Source {
	if c == nil {
		c = collector.New()
	}
	return &Source{collector: c}
}

// SupportedMIMETypes returns the MIME types this source handles.
func (s *Source) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (s *Source) Priority() int {
	return 50 // Format-specific source, higher than plaintext
}

// Collect parses the page and flattens its node tree.
func (s *Source) Collect(_ context.Context, capture *domain.Capture) (*domain.ScreenText, error) {
	if capture == nil {
		return nil, domain.ErrInvalidInput
	}

	root, err := Parse(capture.Content)
	if err != nil {
		return nil, err
	}

	return &domain.ScreenText{
		Source:     capture.Source,
		MIMEType:   capture.MIMEType,
		Text:       s.collector.Flatten(root),
		CapturedAt: time.Now(),
	}, nil
}

// Parse converts an HTML document into a text-node tree.
func Parse(content []byte) (domain.TextNode, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return convert(doc), nil
}

// skipped elements never reach the screen.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Head:     true,
	atom.Noscript: true,
	atom.Template: true,
}

func convert(n *html.Node) *domain.Node {
	node := &domain.Node{}

	switch n.Type {
	case html.TextNode:
		node.Label = n.Data
		return node
	case html.ElementNode:
		if skipped[n.DataAtom] {
			return nil
		}
		for _, attr := range n.Attr {
			switch attr.Key {
			case "alt":
				node.Description = attr.Val
			case "aria-label":
				if node.Description == "" {
					node.Description = attr.Val
				}
			case "placeholder":
				node.Hint = attr.Val
			case "title":
				node.Tooltip = attr.Val
			}
		}
	case html.DocumentNode:
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			node.Append(child)
		}
	}
	return node
}
