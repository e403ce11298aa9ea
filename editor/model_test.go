package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/apacite/citation"
	"github.com/iw2rmb/apacite/clipboard"
)

func TestView_SelectingTypeListsTypes(t *testing.T) {
	m := New(Config{})
	m = press(m, tea.KeyRight, tea.KeyRight)

	view := stripANSI(m.View())
	for _, want := range []string{"webpage", "newspaper article", "> dictionary entry", citation.TypeDictionary.Link()} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_EditingShowsFieldsAndPreview(t *testing.T) {
	m := New(Config{Type: citation.TypeWebsite, Dates: jan5})
	m = typeText(m, "Doe")

	view := stripANSI(m.View())
	for _, want := range []string{
		"webpage | insert | English",
		"> Authors",
		"Title of work",
		"Preview:",
		"Doe. (n.d.). Title of work. Website. Retrieved January 5, 2024, from",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "<i>") {
		t.Fatalf("preview shows raw markup:\n%s", view)
	}
}

func TestView_FinalizedShowsResult(t *testing.T) {
	m := New(Config{Type: citation.TypeWebsite, Dates: jan5, Clipboard: &clipboard.Memory{}})
	m = press(m, tea.KeyCtrlS)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Copied to clipboard:") || !strings.Contains(view, "Press any key to exit.") {
		t.Fatalf("finalized view:\n%s", view)
	}
}

func TestSetSize_ClipsAndFollowsFocus(t *testing.T) {
	m := New(Config{Type: citation.TypeDictionary, Dates: jan5})
	m = m.SetSize(60, 4)

	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("view height: got %d, want %d", got, 4)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "> Authors") {
		t.Fatalf("first field not visible:\n%s", view)
	}

	for i := 0; i < 6; i++ {
		m = press(m, tea.KeyTab)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "> URL") {
		t.Fatalf("selected field scrolled out of view:\n%s", view)
	}
	if strings.Contains(view, "Authors") {
		t.Fatalf("view did not scroll:\n%s", view)
	}
}

func TestDictionaryEntry_EndToEnd(t *testing.T) {
	mem := &clipboard.Memory{}
	m := New(Config{Dates: jan5, Clipboard: mem})

	m = press(m, tea.KeyRight, tea.KeyRight, tea.KeyEnter)
	if got := m.Instance().Type(); got != citation.TypeDictionary {
		t.Fatalf("type: got %v, want %v", got, citation.TypeDictionary)
	}
	m = typeText(m, "Obama")
	m = press(m, tea.KeyTab, tea.KeyTab)
	m = typeText(m, "code")
	m = press(m, tea.KeyCtrlS)

	want := "Obama. (n.d.). code. In Initial(s). Last Name (Ed.). <i>Dictionary</i>. Publisher. "
	if got := m.Result(); got != want {
		t.Fatalf("result:\ngot  %q\nwant %q", got, want)
	}
	if strings.Contains(m.Result(), "Retrieved") {
		t.Fatalf("dictionary entry must not carry a retrieved phrase")
	}
	e, ok := mem.Last()
	if !ok || !strings.Contains(e.Content, "<i>Dictionary</i>") {
		t.Fatalf("clipboard entry: %+v", e)
	}
}
