package reference

import (
	"html"
	"strings"
)

const (
	italicOpen  = "<i>"
	italicClose = "</i>"
)

// Segment is a run of rendered text with uniform emphasis.
type Segment struct {
	Text   string
	Italic bool
}

// Segments splits a rendered reference on its emphasis markers. Unbalanced
// markers extend emphasis to the end of the string.
func Segments(s string) []Segment {
	var out []Segment
	italic := false
	for s != "" {
		marker := italicOpen
		if italic {
			marker = italicClose
		}
		i := strings.Index(s, marker)
		if i < 0 {
			out = append(out, Segment{Text: s, Italic: italic})
			break
		}
		if i > 0 {
			out = append(out, Segment{Text: s[:i], Italic: italic})
		}
		s = s[i+len(marker):]
		italic = !italic
	}
	return out
}

// PlainText drops emphasis markers.
func PlainText(s string) string {
	var sb strings.Builder
	for _, seg := range Segments(s) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// HTML returns an HTML fragment of s: text is escaped and emphasis becomes
// <i> elements.
func HTML(s string) string {
	var sb strings.Builder
	for _, seg := range Segments(s) {
		if seg.Italic {
			sb.WriteString(italicOpen)
			sb.WriteString(html.EscapeString(seg.Text))
			sb.WriteString(italicClose)
			continue
		}
		sb.WriteString(html.EscapeString(seg.Text))
	}
	return sb.String()
}
