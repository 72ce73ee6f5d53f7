package session

import "testing"

func TestNextListIndex_Wrap(t *testing.T) {
	const n = 5
	tests := []struct {
		name string
		idx  int
		dir  Direction
		want int
	}{
		{"next", 1, DirNext, 2},
		{"previous", 2, DirPrevious, 1},
		{"next wraps at end", n - 1, DirNext, 0},
		{"previous wraps at start", 0, DirPrevious, n - 1},
		{"no selection next", -1, DirNext, 0},
		{"no selection previous", -1, DirPrevious, 0},
		{"unknown direction ignored", 2, DirUp, 2},
		{"unknown direction no selection", -1, DirUp, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextListIndex(tt.idx, n, tt.dir); got != tt.want {
				t.Errorf("nextListIndex(%d, %d, %s) = %d, want %d", tt.idx, n, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNextListIndex_SingleItem(t *testing.T) {
	if got := nextListIndex(0, 1, DirNext); got != 0 {
		t.Errorf("next on single item = %d, want 0", got)
	}
	if got := nextListIndex(0, 1, DirPrevious); got != 0 {
		t.Errorf("previous on single item = %d, want 0", got)
	}
}

// Grid layout used below (n=5, cols=3):
//
//	0 1 2
//	3 4
func TestNextGridIndex_ShortLastRow(t *testing.T) {
	const n, cols = 5, 3
	tests := []struct {
		name string
		idx  int
		dir  Direction
		want int
	}{
		{"down", 0, DirDown, 3},
		{"down wraps to column top", 3, DirDown, 0},
		{"down from short-row gap wraps", 2, DirDown, 2}, // column 2 has one entry
		{"down wraps mid column", 4, DirDown, 1},
		{"up", 3, DirUp, 0},
		{"up wraps to column bottom", 0, DirUp, 3},
		{"up wraps short column", 1, DirUp, 4},
		{"up wraps single-entry column", 2, DirUp, 2},
		{"right", 0, DirRight, 1},
		{"right wraps at row end", 2, DirRight, 0},
		{"right wraps at last element", 4, DirRight, 3},
		{"left", 1, DirLeft, 0},
		{"left wraps to row end", 0, DirLeft, 2},
		{"left wraps clamped on short row", 3, DirLeft, 4},
		{"no selection enters grid", -1, DirDown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextGridIndex(tt.idx, n, cols, tt.dir); got != tt.want {
				t.Errorf("nextGridIndex(%d, %d, %d, %s) = %d, want %d", tt.idx, n, cols, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNextGridIndex_SingleColumn(t *testing.T) {
	// cols=1 degenerates to a vertical list with wrap.
	if got := nextGridIndex(0, 3, 1, DirUp); got != 2 {
		t.Errorf("up from top = %d, want 2", got)
	}
	if got := nextGridIndex(2, 3, 1, DirDown); got != 0 {
		t.Errorf("down from bottom = %d, want 0", got)
	}
	// Horizontal moves wrap within the single-cell row.
	if got := nextGridIndex(1, 3, 1, DirRight); got != 1 {
		t.Errorf("right in single column = %d, want 1", got)
	}
	if got := nextGridIndex(1, 3, 1, DirLeft); got != 1 {
		t.Errorf("left in single column = %d, want 1", got)
	}
}

// Repeating right n times over a grid of full rows returns to the start, and
// repeating down once per row returns to the start.
func TestNextGridIndex_CycleIdentities(t *testing.T) {
	const n, cols = 12, 4 // full rows only
	for start := range n {
		idx := start
		for range n {
			idx = nextGridIndex(idx, n, cols, DirRight)
		}
		if idx != start {
			t.Errorf("right x %d from %d = %d, want %d", n, start, idx, start)
		}

		idx = start
		rows := (n + cols - 1) / cols
		for range rows {
			idx = nextGridIndex(idx, n, cols, DirDown)
		}
		if idx != start {
			t.Errorf("down x %d from %d = %d, want %d", rows, start, idx, start)
		}
	}
}

// down never leaves the column, and every move lands in [0, n).
func TestNextGridIndex_RangeAndColumnInvariants(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for n := 1; n <= 12; n++ {
		for cols := 1; cols <= 5; cols++ {
			for idx := range n {
				for _, dir := range dirs {
					got := nextGridIndex(idx, n, cols, dir)
					if got < 0 || got >= n {
						t.Fatalf("nextGridIndex(%d, %d, %d, %s) = %d out of range", idx, n, cols, dir, got)
					}
					if dir == DirDown || dir == DirUp {
						if got%cols != idx%cols {
							t.Fatalf("vertical move left column: nextGridIndex(%d, %d, %d, %s) = %d", idx, n, cols, dir, got)
						}
					}
				}
			}
		}
	}
}
