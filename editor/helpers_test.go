package editor

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	graphemeutil "github.com/iw2rmb/apacite/internal/grapheme"
	"github.com/iw2rmb/apacite/reference"
)

var jan5 = reference.Date{Month: 1, Day: 5, Year: 2024}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, types ...tea.KeyType) Model {
	for _, k := range types {
		m, _ = m.Update(tea.KeyMsg{Type: k})
	}
	return m
}

// typeText sends one key message per grapheme cluster, the way a terminal
// delivers typed characters.
func typeText(m Model, s string) Model {
	for _, c := range graphemeutil.Split(s) {
		m, _ = m.Update(runes(c))
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func checkInvariants(t *testing.T, m Model) {
	t.Helper()
	st := m.State()
	if st.TypeIndex < 0 || st.TypeIndex >= len(m.Types()) {
		t.Fatalf("type index %d out of range [0,%d)", st.TypeIndex, len(m.Types()))
	}
	if st.Phase != PhaseEditing {
		return
	}
	n := m.Instance().Len()
	if st.Selected < 0 || st.Selected >= n {
		t.Fatalf("selected %d out of range [0,%d)", st.Selected, n)
	}
	l := graphemeutil.Count(m.Instance().Value(st.Selected))
	if st.Cursor < 0 || st.Cursor > l {
		t.Fatalf("cursor %d out of range [0,%d] for %q", st.Cursor, l, m.Instance().Value(st.Selected))
	}
}
