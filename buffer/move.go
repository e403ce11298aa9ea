package buffer

import "github.com/iw2rmb/apacite/internal/grapheme"

// MoveCursor applies m to col within text and returns the clamped result.
// Moves past either end of text leave the cursor where it stops.
func MoveCursor(text string, col int, m Move) int {
	line := grapheme.Split(text)
	col = clampInt(col, 0, len(line))

	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(line, col, m.Dir)
	case MoveWord:
		return moveWord(line, col, m.Dir)
	case MoveLine:
		return moveLine(line, col, m.Dir)
	default:
		return col
	}
}

func moveGrapheme(line []string, col int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if col == 0 {
			return col
		}
		return col - 1
	case DirRight:
		if col == len(line) {
			return col
		}
		return col + 1
	default:
		return moveLine(line, col, dir)
	}
}

func moveWord(line []string, col int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(line, col)
	case DirRight:
		return nextWordBoundary(line, col)
	default:
		return moveLine(line, col, dir)
	}
}

func moveLine(line []string, col int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(line)
	default:
		return col
	}
}

// Word boundaries skip whitespace, then skip non-whitespace.
func prevWordBoundary(line []string, col int) int {
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
