package extractor

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// Extract returns the ingredient block of text using the default stop
// offset and length cap. It returns "" when no anchor occurs.
func Extract(text string, anchors, stops []string) string {
	return New(WithAnchors(anchors), WithStops(stops)).Extract(text)
}

// foldedText is a case-folded copy of a text with the offset tables
// needed to translate byte positions in the folded copy back to
// character positions in the original. Invalid UTF-8 bytes count as one
// character each and are returned unchanged by slice.
type foldedText struct {
	original string
	lowered  string
	offsets  []int // offsets[i] is the byte offset of rune i in lowered
	bytes    []int // bytes[i] is the byte offset of rune i in original
}

func fold(text string) *foldedText {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	bytes := make([]int, 0, len(text)+1)
	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		offsets = append(offsets, b.Len())
		bytes = append(bytes, i)
		b.WriteRune(unicode.ToLower(r))
		i += width
	}
	offsets = append(offsets, b.Len())
	bytes = append(bytes, len(text))

	return &foldedText{
		original: text,
		lowered:  b.String(),
		offsets:  offsets,
		bytes:    bytes,
	}
}

// len returns the text length in characters.
func (f *foldedText) len() int {
	return len(f.offsets) - 1
}

// index returns the rune offset of the first occurrence of phrase at or
// after rune offset from, or -1. phrase must already be folded.
func (f *foldedText) index(phrase string, from int) int {
	if phrase == "" || from < 0 || from > f.len() {
		return -1
	}
	start := f.offsets[from]
	b := strings.Index(f.lowered[start:], phrase)
	if b < 0 {
		return -1
	}
	return sort.SearchInts(f.offsets, start+b)
}

// slice returns the original bytes of characters start to end.
func (f *foldedText) slice(start, end int) string {
	return f.original[f.bytes[start]:f.bytes[end]]
}

// locate runs the heuristic over already-folded keyword sets.
func locate(text string, anchors, stops domain.KeywordSet, stopOffset, maxLength int) domain.IngredientBlock {
	if text == "" || len(anchors) == 0 {
		return domain.IngredientBlock{}
	}

	f := fold(text)

	start, anchor := -1, ""
	for _, a := range anchors {
		if idx := f.index(a, 0); idx != -1 {
			start, anchor = idx, a
			break
		}
	}
	if start == -1 {
		return domain.IngredientBlock{}
	}

	end, stop := f.len(), ""
	from := start + stopOffset
	for _, s := range stops {
		if idx := f.index(s, from); idx != -1 && idx < end {
			end, stop = idx, s
		}
	}

	if limit := start + maxLength; end > limit {
		end, stop = limit, ""
	}

	return domain.IngredientBlock{
		Text:   strings.TrimSpace(f.slice(start, end)),
		Start:  start,
		End:    end,
		Anchor: anchor,
		Stop:   stop,
	}
}
