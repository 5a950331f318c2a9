package life

import "sort"

// CellUpdate is the wire form of one live cell, both for inbound cell writes
// and outbound board snapshots.
type CellUpdate struct {
	X int    `json:"x"`
	Y int    `json:"y"`
	C string `json:"c"`
}

// BoardState is the sparse list of currently-alive cells.
type BoardState struct {
	Cells []CellUpdate `json:"cells"`
}

// BoardUpdate is the outbound payload published on TopicBoardUpdate.
type BoardUpdate struct {
	Board BoardState `json:"board"`
}

// Snapshot lists the live cells of the grid sorted ascending by y, then x.
// The sort is explicit rather than relying on iteration order so the
// encoding stays deterministic and diffable.
func Snapshot(g Grid) []CellUpdate {
	cells := make([]CellUpdate, 0, 64)
	for y, row := range g {
		for x, cell := range row {
			if cell.Alive() {
				cells = append(cells, CellUpdate{X: x, Y: y, C: cell.Color})
			}
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// NewBoardUpdate builds the broadcast payload for the given grid.
func NewBoardUpdate(g Grid) BoardUpdate {
	return BoardUpdate{Board: BoardState{Cells: Snapshot(g)}}
}
