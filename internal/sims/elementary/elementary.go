package elementary

import (
	"strconv"

	"lifeloop/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 90, Height: 90, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 is the newest generation; older rows scroll downwards.
type Elementary struct {
	grid *core.Grid
	rule uint8
	tmp  []core.Cell
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	g := core.NewGrid(w, h)
	e := &Elementary{grid: g, rule: rule, tmp: make([]core.Cell, g.W)}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Width is the number of columns.
func (e *Elementary) Width() int { return e.grid.W }

// Height is the number of rows.
func (e *Elementary) Height() int { return e.grid.H }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []core.Cell { return e.grid.Cells() }

// ToggleCell flips a cell. Only toggles on row 0 influence future generations.
func (e *Elementary) ToggleCell(row, col int) { e.grid.Toggle(row, col) }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.grid.Clear()
	e.grid.Set(0, e.grid.W/2, core.Alive)
}

// Tick computes the next generation and scrolls history downwards.
func (e *Elementary) Tick() {
	w, h := e.grid.W, e.grid.H
	cur := e.grid.Cells()
	copy(e.tmp, cur[:w])
	copy(cur[w:], cur[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		cur[x] = core.Cell((e.rule >> idx) & 1)
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Stepper {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
