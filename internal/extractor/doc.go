// Package extractor locates the ingredient declaration inside raw screen
// text.
//
// The heuristic is a linear keyword scan. Anchors are tried in list order
// and the first anchor that occurs anywhere in the text fixes the start,
// even when a later anchor occurs earlier in the text. From there the
// nearest stop phrase found at least StopOffset characters past the start
// ends the block, which is also capped at MaxLength characters.
//
// Matching is case-insensitive substring containment with no word
// boundaries and no Unicode normalisation. Case folding is done one rune
// at a time so offsets in the folded copy map 1:1 onto the original text,
// and the returned block keeps the original casing.
//
// All functions are pure and safe for concurrent use.
package extractor
