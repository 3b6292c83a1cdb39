package domain

import "unicode/utf8"

// IngredientBlock is the span of screen text believed to contain an
// ingredient list. Start and End are character (rune) offsets into the
// original text; Text is that span with surrounding whitespace trimmed.
type IngredientBlock struct {
	// Text is the trimmed extracted substring.
	Text string

	// Start is the rune offset of the matched anchor.
	Start int

	// End is the rune offset where extraction stopped.
	End int

	// Anchor is the anchor phrase that matched.
	Anchor string

	// Stop is the stop phrase that ended the block, empty when the block
	// ran to the end of the text or hit the length cap.
	Stop string
}

// Found reports whether an anchor matched.
func (b IngredientBlock) Found() bool {
	return b.Anchor != ""
}

// Len returns the length of the trimmed text in characters.
func (b IngredientBlock) Len() int {
	return RuneLen(b.Text)
}

// RuneLen counts characters rather than bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
