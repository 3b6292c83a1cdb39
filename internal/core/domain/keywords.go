package domain

import (
	"strings"
	"unicode"
)

// KeywordSet is an ordered list of case-insensitive phrases.
// Order matters: anchors are tried in list order and the first one
// present anywhere in the text wins.
type KeywordSet []string

// Lowered returns a copy with every phrase case-folded rune by rune.
// Empty phrases are dropped because they would match everywhere.
func (k KeywordSet) Lowered() KeywordSet {
	out := make(KeywordSet, 0, len(k))
	for _, phrase := range k {
		if phrase == "" {
			continue
		}
		out = append(out, FoldString(phrase))
	}
	return out
}

// Contains reports whether the set holds phrase, ignoring case.
func (k KeywordSet) Contains(phrase string) bool {
	folded := FoldString(phrase)
	for _, p := range k {
		if FoldString(p) == folded {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (k KeywordSet) Clone() KeywordSet {
	if k == nil {
		return nil
	}
	out := make(KeywordSet, len(k))
	copy(out, k)
	return out
}

// String joins the phrases with commas for display.
func (k KeywordSet) String() string {
	return strings.Join(k, ", ")
}

// FoldString lower-cases s one rune at a time, so the result has the
// same number of runes as s.
func FoldString(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// DefaultAnchors returns the built-in phrases that mark the start of an
// ingredient declaration, including Hindi variants.
func DefaultAnchors() KeywordSet {
	return KeywordSet{
		"ingredients:", "ingredients", "contains:", "contains",
		"composition:", "composition", "made with", "made from",
		"contents:", "contents", "ingredients list",
		"सामग्री", "घटक",
	}
}

// DefaultStops returns the built-in phrases that mark the end of an
// ingredient declaration.
func DefaultStops() KeywordSet {
	return KeywordSet{
		"allergen", "allergy", "allergy advice", "storage", "store in",
		"nutritional", "nutrition facts", "nutrition information",
		"directions", "best before", "expiry", "exp date",
		"manufactured", "packed by", "marketed by", "fssai",
		"net weight", "net wt", "net qty", "serving size",
		"how to use", "customer care", "disclaimer", "warning",
	}
}
