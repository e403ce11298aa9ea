package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the form key bindings.
//
// Bindings are looked up per phase and mode, so the same key may appear in
// more than one binding (for example enter confirms a type and commits a
// field).
type KeyMap struct {
	// Type selection.
	TypePrev, TypeNext key.Binding
	Confirm            key.Binding

	// Field selection, in both editing modes.
	PrevField, NextField key.Binding

	// Navigate mode.
	Edit, Clear key.Binding

	// Insert mode.
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding
	Backspace, Delete   key.Binding
	Commit              key.Binding

	ToggleMode key.Binding
	ChangeType key.Binding
	ToggleLang key.Binding
	Finish     key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		TypePrev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous type")),
		TypeNext: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next type")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),

		PrevField: key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "previous field")),
		NextField: key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next field")),

		Edit:  key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit")),
		Clear: key.NewBinding(key.WithKeys("delete", "x"), key.WithHelp("x", "clear field")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "field start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "field end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Commit:    key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),

		ToggleMode: key.NewBinding(key.WithKeys("insert"), key.WithHelp("ins", "toggle mode")),
		ChangeType: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "change type")),
		ToggleLang: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		Finish:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "finish & copy")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (m Model) helpBindings() []key.Binding {
	km := m.cfg.KeyMap
	switch m.state.Phase {
	case PhaseSelectingType:
		return []key.Binding{km.TypePrev, km.TypeNext, km.Confirm, km.Quit}
	case PhaseEditing:
		if m.state.Mode == ModeInsert {
			return []key.Binding{km.NextField, km.Commit, km.Finish, km.ToggleLang, km.ChangeType, km.Quit}
		}
		return []key.Binding{km.NextField, km.Edit, km.Clear, km.Finish, km.ToggleLang, km.ChangeType, km.Quit}
	default:
		return nil
	}
}
