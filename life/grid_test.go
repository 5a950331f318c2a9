package life

import "testing"

func TestNewGrid(t *testing.T) {
	gridSize := 5
	grid := NewGrid(gridSize)

	if len(grid) != gridSize {
		t.Errorf("Expected grid to have length %d, but got %d", gridSize, len(grid))
	}
	if len(grid[0]) != gridSize {
		t.Errorf("Expected grid to have width %d, but got %d", gridSize, len(grid[0]))
	}

	for y := range grid {
		for x := range grid[y] {
			if grid[y][x].Alive() {
				t.Errorf("Expected cell at (%d, %d) to start dead, got color %q", x, y, grid[y][x].Color)
			}
		}
	}
}

func TestNewGridPanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected NewGrid(0) to panic")
		}
	}()
	NewGrid(0)
}

func TestGridInBounds(t *testing.T) {
	grid := NewGrid(10)

	testCases := []struct {
		name string
		x, y int
		want bool
	}{
		{"Origin", 0, 0, true},
		{"Center", 5, 5, true},
		{"FarCorner", 9, 9, true},
		{"NegativeX", -1, 5, false},
		{"NegativeY", 5, -1, false},
		{"XTooLarge", 10, 5, false},
		{"YTooLarge", 5, 10, false},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if got := grid.InBounds(test.x, test.y); got != test.want {
				t.Errorf("InBounds(%d, %d) = %t, want %t", test.x, test.y, got, test.want)
			}
		})
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	grid := NewGrid(4)
	grid[1][2] = Cell{Color: "#ff0000"}

	clone := grid.Clone()
	clone[1][2] = Cell{Color: "#0000ff"}
	clone[3][3] = Cell{Color: "#00ff00"}

	if grid[1][2].Color != "#ff0000" {
		t.Errorf("Mutating the clone changed the original: got %q", grid[1][2].Color)
	}
	if grid[3][3].Alive() {
		t.Errorf("Mutating the clone revived a cell in the original")
	}
}
