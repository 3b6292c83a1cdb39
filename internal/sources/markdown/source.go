// Package markdown provides a text source for Markdown captures, such as
// product pages saved by reader-mode tools.
package markdown

import (
	"context"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/eatwise-cli/internal/collector"
	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TextSource = (*Source)(nil)

// Source handles Markdown captures.
type Source struct {
	md        goldmark.Markdown
	collector *collector.Collector
}

// New creates a new Markdown source. A nil collector uses the defaults.
func New(c *collector.Collector) *Source {
	if c == nil {
		c = collector.New()
	}
	return &Source{
		md:        goldmark.New(),
		collector: c,
	}
}

// SupportedMIMETypes returns the MIME types this source handles.
func (s *Source) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (s *Source) Priority() int {
	return 50 // Format-specific source, higher than plaintext
}

// Collect parses the document and flattens its node tree.
func (s *Source) Collect(_ context.Context, capture *domain.Capture) (*domain.ScreenText, error) {
	if capture == nil {
		return nil, domain.ErrInvalidInput
	}

	return &domain.ScreenText{
		Source:     capture.Source,
		MIMEType:   capture.MIMEType,
		Text:       s.collector.Flatten(s.Parse(capture.Content)),
		CapturedAt: time.Now(),
	}, nil
}

// Parse converts a Markdown document into a text-node tree with one node
// per block. Images become nodes carrying their alt text as description
// and their title as tooltip; link titles become tooltips.
func (s *Source) Parse(source []byte) domain.TextNode {
	doc := s.md.Parser().Parse(text.NewReader(source))
	return convertBlock(doc, source)
}

func convertBlock(n ast.Node, source []byte) *domain.Node {
	node := &domain.Node{}

	switch b := n.(type) {
	case *ast.FencedCodeBlock:
		node.Label = blockLines(b, source)
		return node
	case *ast.CodeBlock:
		node.Label = blockLines(b, source)
		return node
	case *ast.HTMLBlock:
		return nil
	}

	if n.Type() == ast.TypeBlock && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeInline {
		var label strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collectInline(c, source, &label, node)
		}
		node.Label = label.String()
		return node
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if child := convertBlock(c, source); child != nil {
			node.Append(child)
		}
	}
	return node
}

// collectInline appends visible inline text to label and attaches image
// and titled-link nodes to parent.
func collectInline(n ast.Node, source []byte, label *strings.Builder, parent *domain.Node) {
	switch v := n.(type) {
	case *ast.Text:
		label.Write(v.Segment.Value(source))
		if v.SoftLineBreak() || v.HardLineBreak() {
			label.WriteByte(' ')
		}
		return
	case *ast.String:
		label.Write(v.Value)
		return
	case *ast.AutoLink:
		label.Write(v.Label(source))
		return
	case *ast.RawHTML:
		return
	case *ast.Image:
		var alt strings.Builder
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			collectInline(c, source, &alt, parent)
		}
		parent.Append(&domain.Node{
			Description: alt.String(),
			Tooltip:     string(v.Title),
		})
		return
	case *ast.Link:
		if len(v.Title) > 0 {
			defer parent.Append(&domain.Node{Tooltip: string(v.Title)})
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectInline(c, source, label, parent)
	}
}

func blockLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
