package session

// Direction is a navigation intent. Grid mode understands the four
// directions; list mode understands previous/next. The left==previous,
// right==next aliasing some frontends want is their mapping, not ours.
type Direction string

const (
	DirUp       Direction = "up"
	DirDown     Direction = "down"
	DirLeft     Direction = "left"
	DirRight    Direction = "right"
	DirPrevious Direction = "previous"
	DirNext     Direction = "next"
)

// ParseDirection validates a direction string.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirUp, DirDown, DirLeft, DirRight, DirPrevious, DirNext:
		return Direction(s), true
	}
	return "", false
}

// nextListIndex computes the next selection index for 1-D movement with
// wrap-around. idx -1 means no selection; any move from there selects 0.
// Unknown directions leave the index unchanged. n must be > 0.
func nextListIndex(idx, n int, dir Direction) int {
	if idx < 0 {
		if dir == DirPrevious || dir == DirNext {
			return 0
		}
		return -1
	}
	if idx >= n {
		idx = n - 1
	}
	switch dir {
	case DirNext:
		if idx+1 >= n {
			return 0
		}
		return idx + 1
	case DirPrevious:
		if idx-1 < 0 {
			return n - 1
		}
		return idx - 1
	}
	return idx
}

// nextGridIndex computes the next selection index for 2-D movement over a
// grid with cols columns and n items, the last row possibly short. Vertical
// moves wrap within the column, horizontal moves wrap within the row. idx -1
// means no selection; any directional move from there selects 0. n must
// be > 0; the result is always in [0, n).
func nextGridIndex(idx, n, cols int, dir Direction) int {
	if cols < 1 {
		cols = 1
	}
	if idx < 0 {
		switch dir {
		case DirUp, DirDown, DirLeft, DirRight:
			return 0
		}
		return -1
	}
	if idx >= n {
		idx = n - 1
	}
	switch dir {
	case DirDown:
		next := idx + cols
		if next >= n {
			// wrap to the top of the same column
			return idx % cols
		}
		return next
	case DirUp:
		next := idx - cols
		if next < 0 {
			// wrap to the same column of the last row; if the last row is
			// short of that column, step back one row
			rows := (n + cols - 1) / cols
			next = idx%cols + (rows-1)*cols
			if next > n-1 {
				next -= cols
			}
		}
		return next
	case DirRight:
		if idx == n-1 || idx%cols == cols-1 {
			// wrap to the first column of the same row
			return idx - idx%cols
		}
		return idx + 1
	case DirLeft:
		if idx%cols == 0 {
			// wrap to the last column of the same row, clamped for a short
			// final row
			next := idx + cols - 1
			if next > n-1 {
				next = n - 1
			}
			return next
		}
		return idx - 1
	}
	return idx
}
