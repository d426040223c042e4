// Package grid holds the static tile occupancy of a level and the A* search
// that mobile characters use to navigate it.
//
// Two solidity predicates exist side by side. Collision treats any tile value
// above 1 as solid, so 0 and 1 are both open space for bodies. Path search
// treats every non-zero value as blocked. Keep them separate: tile 1 is the
// gravity-toggle backdrop, walkable for the player but avoided by routes.
package grid

// Grid is a width x height array of tile values, read-only once built.
// Cell ids are row*width+col.
type Grid struct {
	w, h  int
	cells []uint8
}

// New creates a grid over cells. The slice is used directly and must hold
// w*h values; missing trailing cells read as empty.
func New(w, h int, cells []uint8) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.h
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the tile value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	i := y*g.w + x
	if i >= len(g.cells) {
		return 0
	}
	return g.cells[i]
}

// ID returns the cell id of (x, y).
func (g *Grid) ID(x, y int) int {
	return y*g.w + x
}

// XY returns the column and row of a cell id.
func (g *Grid) XY(id int) (int, int) {
	if g.w == 0 {
		return 0, 0
	}
	return id % g.w, id / g.w
}

// Solid reports whether the tile at (x, y) blocks bodies.
func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y) > 1
}

// Blocked reports whether (x, y) is impassable to path search: outside the
// grid, or holding any tile at all.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.At(x, y) != 0
}
