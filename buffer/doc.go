// Package buffer implements grapheme-accurate editing of single-line field
// text.
//
// Cursor columns are 0-based indices into the grapheme-cluster sequence of a
// string, so a combined character or an emoji sequence is one editable unit.
// All operations are pure: they take the current text and column and return
// the next ones. Out-of-range columns are clamped, never reported as errors.
package buffer
