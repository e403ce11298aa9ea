package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/apacite/citation"
)

func TestRenderWithCursor(t *testing.T) {
	st := Style{}
	cases := []struct {
		name  string
		value string
		col   int
		want  string
	}{
		{name: "end", value: "ab", col: 2, want: "ab "},
		{name: "middle", value: "abc", col: 1, want: "abc"},
		{name: "empty", value: "", col: 0, want: " "},
		{name: "clamped", value: "ab", col: 9, want: "ab "},
		{name: "zero width cluster", value: "a\u200bb", col: 1, want: "a b"},
	}
	for _, tc := range cases {
		if got := stripANSI(renderWithCursor(st, tc.value, tc.col)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRender_FieldLabelsAreAligned(t *testing.T) {
	m := New(Config{Type: citation.TypeDictionary})
	m = typeText(m, "Doe")

	content, layout := m.renderContent()
	lines := strings.Split(stripANSI(content), "\n")
	for i := 0; i < m.Instance().Len(); i++ {
		line := lines[layout.fields+i]
		label := m.Instance().Field(i).Label
		if !strings.Contains(line, label) {
			t.Fatalf("line %d missing label %q: %q", i, label, line)
		}
	}
	// "Dictionary" is the widest label.
	if got, want := layout.valueCell, fieldMarkerWidth+len("Dictionary")+fieldGapWidth; got != want {
		t.Fatalf("value cell: got %d, want %d", got, want)
	}
	if got := lines[layout.fields]; !strings.HasPrefix(got, "> Authors     Doe") {
		t.Fatalf("first field line: got %q", got)
	}
}

func TestRenderPreview_WrapsToWidth(t *testing.T) {
	m := New(Config{Type: citation.TypeWebsite, Dates: jan5}).SetSize(30, 40)

	preview := stripANSI(m.renderPreview(m.Rendered()))
	if lipgloss.Width(preview) > 30 {
		t.Fatalf("preview wider than viewport:\n%s", preview)
	}
	if lipgloss.Height(preview) < 2 {
		t.Fatalf("long preview should wrap:\n%s", preview)
	}
}
