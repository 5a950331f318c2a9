package life

// The 8 positions at Chebyshev distance 1.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NextGeneration computes one Conway step over the whole grid and returns a
// brand-new grid; the input is never mutated. The board has hard edges:
// positions outside the grid are excluded from the neighbor count, never
// wrapped. Cells born by the rule get birthColor; survivors keep the color
// they already have.
func NextGeneration(g Grid, birthColor string) Grid {
	size := g.Size()
	next := NewGrid(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			neighbors := g.liveNeighbors(x, y)
			if g[y][x].Alive() {
				if neighbors == 2 || neighbors == 3 {
					next[y][x] = g[y][x]
				}
			} else if neighbors == 3 {
				next[y][x] = Cell{Color: birthColor}
			}
		}
	}
	return next
}

// liveNeighbors counts the live cells adjacent to (x, y), truncating at the
// board edges.
func (g Grid) liveNeighbors(x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g[ny][nx].Alive() {
			count++
		}
	}
	return count
}
