package editor

// Phase is the top-level state of the form.
type Phase uint8

const (
	PhaseSelectingType Phase = iota
	PhaseEditing
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingType:
		return "select type"
	case PhaseEditing:
		return "editing"
	case PhaseFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Mode is the editing sub-mode.
type Mode uint8

const (
	// ModeNavigate moves between fields; keys do not edit text.
	ModeNavigate Mode = iota
	// ModeInsert edits the selected field at the cursor.
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "navigate"
}

// State is the editor position.
//
// Selected indexes the fields of the current citation and Cursor is a
// grapheme column into the selected field's text. TypeIndex indexes
// citation.Types() while selecting a type.
type State struct {
	Phase     Phase
	Mode      Mode
	TypeIndex int
	Selected  int
	Cursor    int
}
