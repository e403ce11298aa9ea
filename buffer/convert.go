package buffer

import "github.com/iw2rmb/apacite/internal/grapheme"

// ByteOffset returns the byte offset in text where grapheme column col
// starts. col is clamped into [0, Len(text)].
func ByteOffset(text string, col int) int {
	if col <= 0 {
		return 0
	}
	off := 0
	for i, c := range grapheme.Split(text) {
		if i == col {
			return off
		}
		off += len(c)
	}
	return len(text)
}

// ColAtCell maps a terminal cell offset within text to the grapheme column
// of the cluster drawn at that cell. Cells past the end map to Len(text);
// wide clusters claim every cell they cover.
func ColAtCell(text string, cell int) int {
	if cell <= 0 {
		return 0
	}
	x := 0
	clusters := grapheme.Split(text)
	for i, c := range clusters {
		x += grapheme.Width(c)
		if cell < x {
			return i
		}
	}
	return len(clusters)
}
