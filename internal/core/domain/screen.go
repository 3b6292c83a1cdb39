package domain

import "time"

// Capture is an opaque snapshot of a screen or document before text
// extraction. It is the input to a TextSource.
type Capture struct {
	// Source identifies where the capture came from (file path, URL, etc).
	Source string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// ScreenText is the flattened text of one captured screen.
// It is produced once per scan and discarded after extraction.
type ScreenText struct {
	// Source identifies where the capture came from.
	Source string

	// MIMEType is the content type of the original capture.
	MIMEType string

	// Text is the visible, alt, hint and tooltip text in document order.
	Text string

	// CapturedAt is when the capture was taken.
	CapturedAt time.Time
}

// TextNode is one element of a UI or document tree. Each accessor returns
// the raw value; empty means absent.
type TextNode interface {
	// Text is the visible text of the node.
	Text() string

	// ContentDescription is alternative text (image alt, aria-label).
	ContentDescription() string

	// HintText is placeholder or hint text.
	HintText() string

	// TooltipText is tooltip or title text.
	TooltipText() string

	// Children returns the child nodes in document order.
	Children() []TextNode
}

// Node is a plain TextNode implementation used by text sources and tests.
type Node struct {
	Label       string
	Description string
	Hint        string
	Tooltip     string
	Kids        []TextNode
}

var _ TextNode = (*Node)(nil)

// Text returns the visible text.
func (n *Node) Text() string { return n.Label }

// ContentDescription returns the alternative text.
func (n *Node) ContentDescription() string { return n.Description }

// HintText returns the hint text.
func (n *Node) HintText() string { return n.Hint }

// TooltipText returns the tooltip text.
func (n *Node) TooltipText() string { return n.Tooltip }

// Children returns the child nodes.
func (n *Node) Children() []TextNode { return n.Kids }

// Append adds child nodes and returns n for chaining.
func (n *Node) Append(children ...TextNode) *Node {
	n.Kids = append(n.Kids, children...)
	return n
}
