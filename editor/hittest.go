package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/apacite/buffer"
)

type hitKind uint8

const (
	hitNone hitKind = iota
	hitType
	hitField
)

type hit struct {
	kind  hitKind
	index int
	// col is the grapheme column within the field value for hitField.
	col int
}

// hitTest maps viewport-local mouse coordinates to a form element.
//
// (0,0) is the top-left cell of the visible content.
func (m Model) hitTest(x, y int) hit {
	row := m.viewport.YOffset + y

	switch m.state.Phase {
	case PhaseSelectingType:
		if row != m.layout.typeList {
			return hit{}
		}
		if i, ok := m.typeAtCell(x); ok {
			return hit{kind: hitType, index: i}
		}
	case PhaseEditing:
		i := row - m.layout.fields
		if m.layout.fields < 0 || i < 0 || i >= m.inst.Len() {
			return hit{}
		}
		col := buffer.ColAtCell(m.inst.Value(i), x-m.layout.valueCell)
		return hit{kind: hitField, index: i, col: col}
	}
	return hit{}
}

// typeAtCell returns the type list item drawn at cell x. Items are laid out
// as a two-cell marker followed by the type name.
func (m Model) typeAtCell(x int) (int, bool) {
	start := 0
	for i, t := range m.types {
		end := start + 2 + runewidth.StringWidth(t.String())
		if x >= start && x < end {
			return i, true
		}
		start = end + typeGapWidth
	}
	return 0, false
}
