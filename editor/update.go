package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/apacite/buffer"
	"github.com/iw2rmb/apacite/citation"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.cfg.KeyMap.Quit) {
		return m, tea.Quit
	}

	switch m.state.Phase {
	case PhaseSelectingType:
		return m.updateSelecting(msg), nil
	case PhaseEditing:
		return m.updateEditing(msg)
	default:
		// Finalized: any key ends the session.
		return m, tea.Quit
	}
}

func (m Model) updateSelecting(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.TypePrev):
		if m.state.TypeIndex > 0 {
			m.state.TypeIndex--
		}
	case key.Matches(msg, km.TypeNext):
		if m.state.TypeIndex < len(m.types)-1 {
			m.state.TypeIndex++
		}
	case key.Matches(msg, km.Confirm):
		m.selectType(m.types[m.state.TypeIndex])
	}
	return m
}

// selectType replaces the instance with an empty one of t. Values are never
// carried over, even for keys both schemas share.
func (m *Model) selectType(t citation.Type) {
	m.inst = citation.New(t, m.inst.Lang())
	m.state.Phase = PhaseEditing
	m.state.Mode = ModeInsert
	m.state.Selected = 0
	m.state.Cursor = 0
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Finish):
		return m.finalize()
	case key.Matches(msg, km.ChangeType):
		m.state.Phase = PhaseSelectingType
		for i, t := range m.types {
			if t == m.inst.Type() {
				m.state.TypeIndex = i
			}
		}
		return m, nil
	case key.Matches(msg, km.ToggleLang):
		m.inst.SetLang(m.inst.Lang().Toggle())
		return m, nil
	case key.Matches(msg, km.ToggleMode):
		if m.state.Mode == ModeInsert {
			m.state.Mode = ModeNavigate
		} else {
			m.enterInsert()
		}
		return m, nil
	case key.Matches(msg, km.PrevField):
		m.selectField(m.state.Selected - 1)
		return m, nil
	case key.Matches(msg, km.NextField):
		m.selectField(m.state.Selected + 1)
		return m, nil
	}

	if m.state.Mode == ModeNavigate {
		return m.updateNavigate(msg), nil
	}
	return m.updateInsert(msg), nil
}

func (m Model) updateNavigate(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Edit):
		m.enterInsert()
	case key.Matches(msg, km.Clear):
		if m.inst.Clear(m.state.Selected) {
			m.state.Cursor = 0
		}
	}
	return m
}

func (m Model) updateInsert(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	sel := m.state.Selected
	text := m.inst.Value(sel)

	switch {
	case key.Matches(msg, km.Commit):
		m.state.Mode = ModeNavigate

	case key.Matches(msg, km.Left):
		m.moveCursor(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.moveCursor(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.WordLeft):
		m.moveCursor(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.moveCursor(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.moveCursor(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.moveCursor(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if next, col, ok := buffer.DeleteBefore(text, m.state.Cursor); ok {
			m.inst.SetValue(sel, next)
			m.state.Cursor = col
		}
	case key.Matches(msg, km.Delete):
		if next, col, ok := buffer.DeleteAfter(text, m.state.Cursor); ok {
			m.inst.SetValue(sel, next)
			m.state.Cursor = col
		}

	default:
		if s := typedText(msg); s != "" {
			next, col := buffer.Insert(text, m.state.Cursor, s)
			m.inst.SetValue(sel, next)
			m.state.Cursor = col
		}
	}
	return m
}

// typedText returns the text a key press enters. Pastes arrive as runes and
// are inserted literally; alt-modified keys type nothing.
func typedText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		return string(msg.Runes)
	default:
		return ""
	}
}

// selectField moves the selection to i when it is a valid field index and
// clamps the cursor into the new field.
func (m *Model) selectField(i int) {
	if i < 0 || i >= m.inst.Len() || i == m.state.Selected {
		return
	}
	m.state.Selected = i
	m.state.Cursor = buffer.Clamp(m.inst.Value(i), m.state.Cursor)
}

func (m *Model) enterInsert() {
	m.state.Mode = ModeInsert
	m.state.Cursor = buffer.Len(m.inst.Value(m.state.Selected))
}

func (m *Model) moveCursor(mv buffer.Move) {
	m.state.Cursor = buffer.MoveCursor(m.inst.Value(m.state.Selected), m.state.Cursor, mv)
}
