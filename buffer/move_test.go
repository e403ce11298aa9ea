package buffer

import "testing"

func TestMoveCursor_GraphemeBounds(t *testing.T) {
	text := "a" + eAcute + "b"

	if got := MoveCursor(text, 0, Move{Unit: MoveGrapheme, Dir: DirLeft}); got != 0 {
		t.Fatalf("left at start=%d, want 0", got)
	}
	if got := MoveCursor(text, 1, Move{Unit: MoveGrapheme, Dir: DirRight}); got != 2 {
		t.Fatalf("right over cluster=%d, want 2", got)
	}
	if got := MoveCursor(text, 3, Move{Unit: MoveGrapheme, Dir: DirRight}); got != 3 {
		t.Fatalf("right at end=%d, want 3", got)
	}
	if got := MoveCursor(text, 42, Move{Unit: MoveGrapheme, Dir: DirLeft}); got != 2 {
		t.Fatalf("left from stale column=%d, want 2", got)
	}
}

func TestMoveCursor_HomeEnd(t *testing.T) {
	text := "hello"
	if got := MoveCursor(text, 3, Move{Unit: MoveLine, Dir: DirEnd}); got != 5 {
		t.Fatalf("end=%d, want 5", got)
	}
	if got := MoveCursor(text, 3, Move{Unit: MoveLine, Dir: DirHome}); got != 0 {
		t.Fatalf("home=%d, want 0", got)
	}
}

func TestMoveCursor_Word(t *testing.T) {
	text := "Oxford  English Dictionary"

	cases := []struct {
		col  int
		dir  MoveDir
		want int
	}{
		{col: 0, dir: DirRight, want: 6},
		{col: 6, dir: DirRight, want: 15},
		{col: 15, dir: DirRight, want: 26},
		{col: 26, dir: DirRight, want: 26},
		{col: 26, dir: DirLeft, want: 16},
		{col: 16, dir: DirLeft, want: 8},
		{col: 3, dir: DirLeft, want: 0},
		{col: 0, dir: DirLeft, want: 0},
	}
	for _, tc := range cases {
		got := MoveCursor(text, tc.col, Move{Unit: MoveWord, Dir: tc.dir})
		if got != tc.want {
			t.Fatalf("word move from %d dir %d: got %d, want %d", tc.col, tc.dir, got, tc.want)
		}
	}
}
