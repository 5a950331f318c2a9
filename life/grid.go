package life

// Grid is the square board, indexed row-major as grid[y][x]. It is owned
// exclusively by the board actor; everything that leaves the actor is a
// copied snapshot.
type Grid [][]Cell

// NewGrid allocates an all-dead square grid.
func NewGrid(size int) Grid {
	if size <= 0 {
		panic("life: grid size must be positive")
	}
	grid := make(Grid, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
	}
	return grid
}

// Size returns the length of one grid dimension.
func (g Grid) Size() int { return len(g) }

// InBounds reports whether (x, y) addresses a grid position.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < len(g) && y >= 0 && y < len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for y, row := range g {
		clone[y] = make([]Cell, len(row))
		copy(clone[y], row)
	}
	return clone
}
