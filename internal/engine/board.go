package engine

// Board is an N×N grid of tile values. Zero means empty; every other
// cell holds a power-of-two tile created by spawning (2 or 4) or by
// merging two equal tiles.
type Board [][]int

// NewBoard creates an empty size×size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether two boards hold the same values.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for y, row := range b {
		if len(row) != len(o[y]) {
			return false
		}
		for x, v := range row {
			if v != o[y][x] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns coordinates of all empty cells.
func (b Board) EmptyCells() []struct{ X, Y int } {
	var cells []struct{ X, Y int }
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, struct{ X, Y int }{x, y})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// transpose returns the matrix transpose.
func (b Board) transpose() Board {
	t := NewBoard(len(b))
	for y := range b {
		for x := range b {
			t[y][x] = b[x][y]
		}
	}
	return t
}

// reverseLine reverses a line in place.
func reverseLine(line []int) {
	for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
		line[i], line[j] = line[j], line[i]
	}
}

// compressLine shifts non-zero values to the low-index end, preserving
// their relative order, and pads the rest with zeros.
func compressLine(line []int) []int {
	out := make([]int, len(line))
	w := 0
	for _, v := range line {
		if v != 0 {
			out[w] = v
			w++
		}
	}
	return out
}

// processLine runs one compress/merge/re-compress pass over a line.
// The merge scan walks adjacent pairs left-to-right; when a pair of
// equal non-zero values meets, the left cell doubles and the right
// zeroes out. The zero gap keeps a freshly merged tile from merging
// again within the same pass. Returns the resulting line, the values
// created by merges in scan order, and whether the line changed.
func processLine(line []int) (out []int, merged []int, changed bool) {
	out = compressLine(line)
	for i := 0; i < len(out)-1; i++ {
		if out[i] != 0 && out[i] == out[i+1] {
			out[i] *= 2
			out[i+1] = 0
			merged = append(merged, out[i])
		}
	}
	out = compressLine(out)

	for i, v := range line {
		if v != out[i] {
			changed = true
			break
		}
	}
	return out, merged, changed
}

// slideBoard applies one move to a copy of b and returns the result.
// All four directions reduce to the leftward row pass: right reverses
// every row around the pass, up transposes the board around the pass,
// down does both. The input board is never mutated.
func slideBoard(b Board, dir Direction) (Board, []int, bool) {
	work := b.Clone()
	transposed := dir == DirUp || dir == DirDown
	reversed := dir == DirRight || dir == DirDown

	if transposed {
		work = work.transpose()
	}

	var merged []int
	changed := false
	for y, row := range work {
		if reversed {
			reverseLine(row)
		}
		out, m, ch := processLine(row)
		if reversed {
			reverseLine(out)
		}
		work[y] = out
		merged = append(merged, m...)
		changed = changed || ch
	}

	if transposed {
		work = work.transpose()
	}
	return work, merged, changed
}
