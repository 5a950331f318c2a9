package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBirthColor = "#ffffff"

// gridWith builds a grid with the given cells alive.
func gridWith(size int, cells ...CellUpdate) Grid {
	grid := NewGrid(size)
	for _, c := range cells {
		grid[c.Y][c.X] = Cell{Color: c.C}
	}
	return grid
}

// positions strips colors from a snapshot so shape comparisons ignore the
// survivor/newborn color split.
func positions(cells []CellUpdate) [][2]int {
	out := make([][2]int, 0, len(cells))
	for _, c := range cells {
		out = append(out, [2]int{c.X, c.Y})
	}
	return out
}

func TestNextGenerationIsolationDeath(t *testing.T) {
	grid := gridWith(5, CellUpdate{X: 2, Y: 2, C: "#ff0000"})

	next := NextGeneration(grid, testBirthColor)

	assert.Empty(t, Snapshot(next), "a lone cell must die after one step")
}

func TestNextGenerationStasisKeepsColor(t *testing.T) {
	// A 2x2 block is a still life; every member has exactly 3 neighbors.
	block := []CellUpdate{
		{X: 1, Y: 1, C: "#aa0000"},
		{X: 2, Y: 1, C: "#00bb00"},
		{X: 1, Y: 2, C: "#0000cc"},
		{X: 2, Y: 2, C: "#dddddd"},
	}
	grid := gridWith(5, block...)

	next := NextGeneration(grid, testBirthColor)

	require.Equal(t, block, Snapshot(next), "survivors must keep their original colors")
}

func TestNextGenerationBirthUsesBirthColor(t *testing.T) {
	// Vertical blinker flips horizontal: the two side cells are births,
	// the pivot survives with its color.
	grid := gridWith(5,
		CellUpdate{X: 2, Y: 1, C: "#111111"},
		CellUpdate{X: 2, Y: 2, C: "#222222"},
		CellUpdate{X: 2, Y: 3, C: "#333333"},
	)

	next := NextGeneration(grid, testBirthColor)

	require.Equal(t, []CellUpdate{
		{X: 1, Y: 2, C: testBirthColor},
		{X: 2, Y: 2, C: "#222222"},
		{X: 3, Y: 2, C: testBirthColor},
	}, Snapshot(next))
}

func TestNextGenerationOverpopulationDeath(t *testing.T) {
	// Plus shape: the center has 4 neighbors and must die.
	grid := gridWith(5,
		CellUpdate{X: 2, Y: 2, C: "#ff0000"},
		CellUpdate{X: 1, Y: 2, C: "#ffffff"},
		CellUpdate{X: 3, Y: 2, C: "#ffffff"},
		CellUpdate{X: 2, Y: 1, C: "#ffffff"},
		CellUpdate{X: 2, Y: 3, C: "#ffffff"},
	)

	next := NextGeneration(grid, testBirthColor)

	for _, c := range Snapshot(next) {
		assert.False(t, c.X == 2 && c.Y == 2, "overpopulated center cell must die")
	}
}

func TestNextGenerationEdgeTruncation(t *testing.T) {
	// On a 3-wide board with wraparound, x=0 and x=2 would be adjacent and
	// each corner cell would survive with 2 neighbors. With hard edges the
	// far column does not count and both cells die in isolation.
	grid := gridWith(3,
		CellUpdate{X: 0, Y: 0, C: "#ff0000"},
		CellUpdate{X: 2, Y: 0, C: "#00ff00"},
	)

	next := NextGeneration(grid, testBirthColor)

	assert.Empty(t, Snapshot(next), "edge cells must not see wrapped neighbors")
}

func TestNextGenerationCornerBirth(t *testing.T) {
	// The corner has only 3 possible neighbor positions; with all of them
	// alive the corner is born.
	grid := gridWith(4,
		CellUpdate{X: 1, Y: 0, C: "#ffffff"},
		CellUpdate{X: 0, Y: 1, C: "#ffffff"},
		CellUpdate{X: 1, Y: 1, C: "#ffffff"},
	)

	next := NextGeneration(grid, testBirthColor)

	require.True(t, next[0][0].Alive(), "corner cell with 3 live neighbors must be born")
	assert.Equal(t, testBirthColor, next[0][0].Color)
}

func TestNextGenerationEmptyStability(t *testing.T) {
	grid := NewGrid(10)

	for i := 0; i < 5; i++ {
		grid = NextGeneration(grid, testBirthColor)
		require.Empty(t, Snapshot(grid), "an all-dead grid must stay all-dead")
	}
}

func TestNextGenerationDeterminism(t *testing.T) {
	grid := gridWith(8,
		CellUpdate{X: 1, Y: 0, C: "#ff0000"},
		CellUpdate{X: 2, Y: 1, C: "#ff0000"},
		CellUpdate{X: 0, Y: 2, C: "#ff0000"},
		CellUpdate{X: 1, Y: 2, C: "#ff0000"},
		CellUpdate{X: 2, Y: 2, C: "#ff0000"},
		CellUpdate{X: 5, Y: 5, C: "#00ff00"},
		CellUpdate{X: 6, Y: 5, C: "#00ff00"},
	)

	first := NextGeneration(grid, testBirthColor)
	second := NextGeneration(grid, testBirthColor)

	require.Equal(t, first, second, "NextGeneration must be a pure function")
}

func TestNextGenerationDoesNotMutateInput(t *testing.T) {
	grid := gridWith(5, CellUpdate{X: 2, Y: 2, C: "#ff0000"})
	before := grid.Clone()

	NextGeneration(grid, testBirthColor)

	require.Equal(t, before, grid, "the input grid must never be mutated")
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	glider := []CellUpdate{
		{X: 2, Y: 1, C: "#ff00ff"},
		{X: 3, Y: 2, C: "#ff00ff"},
		{X: 1, Y: 3, C: "#ff00ff"},
		{X: 2, Y: 3, C: "#ff00ff"},
		{X: 3, Y: 3, C: "#ff00ff"},
	}
	grid := gridWith(12, glider...)

	for i := 0; i < 4; i++ {
		grid = NextGeneration(grid, testBirthColor)
	}

	want := make([][2]int, 0, len(glider))
	for _, c := range glider {
		want = append(want, [2]int{c.X + 1, c.Y + 1})
	}
	require.Equal(t, want, positions(Snapshot(grid)),
		"a glider must reproduce itself shifted by (+1,+1) after 4 generations")
}
