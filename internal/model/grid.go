package model

// Grid is the derived per-string, per-fret membership table. A cell holds the
// semitone offset from the root when the note belongs to the structure.
type Grid struct {
	frets int
	cells [][]int8
}

const noMember int8 = -1

// NewGrid allocates an empty grid of strings × frets.
func NewGrid(strings, frets int) Grid {
	cells := make([][]int8, strings)
	for s := range cells {
		row := make([]int8, frets)
		for f := range row {
			row[f] = noMember
		}

		cells[s] = row
	}

	return Grid{frets: frets, cells: cells}
}

// Set marks cell (s, f) as a member with the given offset.
func (g Grid) Set(s, f, offset int) {
	g.cells[s][f] = int8(offset)
}

// At returns the offset stored at (s, f). ok is false when the position is not
// a member or lies outside the grid.
func (g Grid) At(s, f int) (offset int, ok bool) {
	if s < 0 || s >= len(g.cells) || f < 0 || f >= g.frets {
		return 0, false
	}

	v := g.cells[s][f]
	if v == noMember {
		return 0, false
	}

	return int(v), true
}

// Strings returns the number of rows.
func (g Grid) Strings() int {
	return len(g.cells)
}

// Frets returns the number of columns, fret 0 included.
func (g Grid) Frets() int {
	return g.frets
}

// Members counts the non-empty cells.
func (g Grid) Members() int {
	n := 0

	for _, row := range g.cells {
		for _, v := range row {
			if v != noMember {
				n++
			}
		}
	}

	return n
}

// Rows exposes a copy of the cells as offsets with -1 for non-members.
func (g Grid) Rows() [][]int {
	out := make([][]int, len(g.cells))
	for s, row := range g.cells {
		out[s] = make([]int, len(row))
		for f, v := range row {
			out[s][f] = int(v)
		}
	}

	return out
}
