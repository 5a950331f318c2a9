package life

// MergeCells folds the cell writes left to right onto a copy of the grid.
// Each in-bounds write unconditionally overwrites the position, so the last
// write for a duplicated coordinate wins. Out-of-bounds writes are skipped;
// callers that care should validate with Grid.InBounds first. The input grid
// is never mutated.
func MergeCells(g Grid, cells []CellUpdate) Grid {
	next := g.Clone()
	for _, c := range cells {
		if !next.InBounds(c.X, c.Y) {
			continue
		}
		next[c.Y][c.X] = Cell{Color: c.C}
	}
	return next
}
