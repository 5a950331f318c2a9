package life

// Cell is one grid position's state: dead when Color is empty, alive with
// an opaque color token (by convention "#rrggbb") otherwise.
type Cell struct {
	Color string `json:"c,omitempty"`
}

// Alive reports whether the cell holds a live value.
func (c Cell) Alive() bool { return c.Color != "" }
