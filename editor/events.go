package editor

import (
	"slices"

	"github.com/iw2rmb/apacite/citation"
)

// ChangeEvent describes the editor after an effective update.
type ChangeEvent struct {
	State State
	Type  citation.Type
	Lang  citation.Lang

	// Values is a copy of the field values in schema order.
	Values []string
}

func buildChangeEvent(m Model) ChangeEvent {
	return ChangeEvent{
		State:  m.state,
		Type:   m.inst.Type(),
		Lang:   m.inst.Lang(),
		Values: m.inst.Values(),
	}
}

func (ev ChangeEvent) equal(o ChangeEvent) bool {
	return ev.State == o.State &&
		ev.Type == o.Type &&
		ev.Lang == o.Lang &&
		slices.Equal(ev.Values, o.Values)
}
