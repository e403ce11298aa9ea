package buffer

import (
	"strings"

	"github.com/iw2rmb/apacite/internal/grapheme"
)

// Len returns the length of text in grapheme clusters.
func Len(text string) int { return grapheme.Count(text) }

// Clamp clamps col into [0, Len(text)].
func Clamp(text string, col int) int {
	return clampInt(col, 0, Len(text))
}

// Sanitize drops clusters that cannot be part of single-line field text:
// line breaks, tabs and other control characters.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	clean := true
	for _, c := range grapheme.Split(s) {
		if grapheme.IsControl(c) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var sb strings.Builder
	for _, c := range grapheme.Split(s) {
		if !grapheme.IsControl(c) {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Insert inserts s at grapheme column col of text and returns the new text
// and the cursor column just past the inserted clusters.
//
// col is clamped into [0, Len(text)]. Control characters in s are dropped; if
// nothing remains the text is returned unchanged.
//
// Clusters are recomputed over the whole result, so an insert can change the
// clusters that follow it. A lone regional indicator pairs with the next one
// and shifts every later flag pairing; DeleteBefore at the returned column
// then does not restore text. The returned column always lies within
// [0, Len] of the new text.
func Insert(text string, col int, s string) (string, int) {
	col = Clamp(text, col)

	s = Sanitize(s)
	if s == "" {
		return text, col
	}

	off := ByteOffset(text, col)
	prefix := text[:off] + s
	next := prefix + text[off:]

	// Combining marks fold into the preceding cluster, so the cursor is the
	// cluster count of the new prefix rather than col+Count(s).
	return next, clampInt(grapheme.Count(prefix), 0, grapheme.Count(next))
}

// DeleteBefore removes the cluster before col (backspace semantics).
//
// It reports false and leaves text untouched when col is 0.
func DeleteBefore(text string, col int) (string, int, bool) {
	clusters := grapheme.Split(text)
	col = clampInt(col, 0, len(clusters))
	if col == 0 {
		return text, 0, false
	}
	next := grapheme.Join(clusters[:col-1]) + grapheme.Join(clusters[col:])
	return next, col - 1, true
}

// DeleteAfter removes the cluster at col (delete-key semantics).
//
// It reports false and leaves text untouched when col is at the end of text.
func DeleteAfter(text string, col int) (string, int, bool) {
	clusters := grapheme.Split(text)
	col = clampInt(col, 0, len(clusters))
	if col == len(clusters) {
		return text, col, false
	}
	next := grapheme.Join(clusters[:col]) + grapheme.Join(clusters[col+1:])
	return next, col, true
}
