package core

import "strings"

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions. Every cell starts Dead.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col). No bounds checking.
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Toggle flips the cell at (row, col). Coordinates outside the grid are ignored.
func (g *Grid) Toggle(row, col int) {
	if !g.Contains(row, col) {
		return
	}
	idx := g.Index(row, col)
	if g.data[idx] == Alive {
		g.data[idx] = Dead
		return
	}
	g.data[idx] = Alive
}

// Set marks the cell at the wrapped coordinates with the given state.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.data[g.Index(row, col)] = c
}

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// String draws the grid one row per line, ◻ for dead and ◼ for alive.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.H; row++ {
		for _, c := range g.data[row*g.W : (row+1)*g.W] {
			if c == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
