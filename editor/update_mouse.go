package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse scrolls on wheel events and maps left clicks onto the form:
// a click on a type chooses it, a click on a field places the cursor there in
// insert mode.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, cmd
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}

	h := m.hitTest(msg.X, msg.Y)
	switch {
	case m.state.Phase == PhaseSelectingType && h.kind == hitType:
		m.state.TypeIndex = h.index
		m.selectType(m.types[h.index])
	case m.state.Phase == PhaseEditing && h.kind == hitField:
		m.state.Selected = h.index
		m.state.Mode = ModeInsert
		m.state.Cursor = h.col
	}
	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
