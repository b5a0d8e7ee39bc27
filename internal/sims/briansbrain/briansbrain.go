package briansbrain

import (
	"strconv"

	"lifeloop/internal/core"
)

type state uint8

const (
	ready state = iota
	firing
	refractory
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 90, Height: 90, Seed: 42, Density: 0.125}
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain. Cells cycle ready, firing, refractory; only
// firing cells show as Alive, refractory ones render as Dead.
type Brain struct {
	density float64
	cur     []state
	nxt     []state
	view    *core.Grid
}

// New creates a quiet Brain with the provided dimensions.
func New(w, h int) *Brain {
	b := &Brain{
		density: DefaultConfig().Density,
		cur:     make([]state, w*h),
		nxt:     make([]state, w*h),
		view:    core.NewGrid(w, h),
	}
	return b
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Width is the number of columns.
func (b *Brain) Width() int { return b.view.W }

// Height is the number of rows.
func (b *Brain) Height() int { return b.view.H }

// Cells exposes the two-valued render buffer.
func (b *Brain) Cells() []core.Cell { return b.view.Cells() }

// ToggleCell fires a quiet cell or silences a firing one.
func (b *Brain) ToggleCell(row, col int) {
	if !b.view.Contains(row, col) {
		return
	}
	idx := b.view.Index(row, col)
	if b.cur[idx] == firing {
		b.cur[idx] = ready
	} else {
		b.cur[idx] = firing
	}
	b.sync()
}

// Reset fires a random share of the cells and quiets the rest.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for i := range b.cur {
		if rng.Chance(b.density) {
			b.cur[i] = firing
			continue
		}
		b.cur[i] = ready
	}
	b.sync()
}

// Tick advances the automaton by one generation.
func (b *Brain) Tick() {
	w, h := b.view.W, b.view.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch b.cur[idx] {
			case firing:
				b.nxt[idx] = refractory
			case refractory:
				b.nxt[idx] = ready
			default:
				if b.firingNeighbors(x, y) == 2 {
					b.nxt[idx] = firing
				} else {
					b.nxt[idx] = ready
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.sync()
}

func (b *Brain) firingNeighbors(x, y int) int {
	w, h := b.view.W, b.view.H
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if b.cur[ny*w+nx] == firing {
				n++
			}
		}
	}
	return n
}

func (b *Brain) sync() {
	cells := b.view.Cells()
	for i, s := range b.cur {
		if s == firing {
			cells[i] = core.Alive
			continue
		}
		cells[i] = core.Dead
	}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Stepper {
		c := FromMap(cfg)
		b := New(c.Width, c.Height)
		b.density = c.Density
		b.Reset(c.Seed)
		return b
	})
}
