package life

import (
	"strconv"

	"lifeloop/internal/core"
)

// Config holds parameters for the Life universe.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Pattern string
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 90, Height: 90, Seed: 42, Pattern: PatternEmpty, Density: 0.25}
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
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Universe implements Conway's Game of Life with toroidal wrapping.
type Universe struct {
	cfg Config
	cur *core.Grid
	nxt *core.Grid
}

// New returns an all-dead universe with the provided dimensions.
func New(w, h int) *Universe {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a universe and seeds it with cfg.Pattern.
func NewWithConfig(cfg Config) *Universe {
	u := &Universe{cfg: cfg, cur: core.NewGrid(cfg.Width, cfg.Height), nxt: core.NewGrid(cfg.Width, cfg.Height)}
	u.Reset(cfg.Seed)
	return u
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Width is the number of columns.
func (u *Universe) Width() int { return u.cur.W }

// Height is the number of rows.
func (u *Universe) Height() int { return u.cur.H }

// Cells exposes the current grid values.
func (u *Universe) Cells() []core.Cell { return u.cur.Cells() }

// ToggleCell flips the cell at (row, col); out of range coordinates do nothing.
func (u *Universe) ToggleCell(row, col int) { u.cur.Toggle(row, col) }

// SetCells marks every (row, col) pair alive.
func (u *Universe) SetCells(cells [][2]int) {
	for _, rc := range cells {
		u.cur.Set(rc[0], rc[1], core.Alive)
	}
}

// Reset clears the universe and reapplies the configured pattern.
func (u *Universe) Reset(seed int64) {
	u.cur.Clear()
	stampPattern(u, u.cfg.Pattern, seed)
}

func (u *Universe) String() string { return u.cur.String() }

// Tick advances the simulation by one generation.
func (u *Universe) Tick() {
	w, h := u.cur.W, u.cur.H
	cur, nxt := u.cur.Cells(), u.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == core.Alive
			nxt[idx] = core.Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = core.Alive
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Stepper {
		return NewWithConfig(FromMap(cfg))
	})
}
