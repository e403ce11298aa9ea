package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

// Move describes a cursor motion within one line of text.
type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
