package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var c string
		c, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, c)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the clusters of text in [start, end).
func Slice(text string, start, end int) string {
	clusters := Split(text)
	if start < 0 {
		start = 0
	}
	if end > len(clusters) {
		end = len(clusters)
	}
	if start >= end {
		return ""
	}
	return Join(clusters[start:end])
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsControl reports whether cluster starts with a control rune. Line breaks
// and tabs count as control.
func IsControl(cluster string) bool {
	for _, r := range cluster {
		return unicode.IsControl(r)
	}
	return false
}
