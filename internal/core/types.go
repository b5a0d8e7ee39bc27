package core

import (
	"sort"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead cells are drawn with the background fill.
	Dead Cell = 0
	// Alive cells are drawn with the foreground fill.
	Alive Cell = 1
)

// Stepper is the stepping engine the frame loop drives. Cells returns the
// live buffer in row-major order, Width*Height long.
type Stepper interface {
	Name() string
	Width() int
	Height() int
	Tick()
	ToggleCell(row, col int)
	Cells() []Cell
}

// Resetter is implemented by steppers that can reseed their state.
type Resetter interface {
	Reset(seed int64)
}

// Factory constructs a Stepper using an optional configuration map.
type Factory func(cfg map[string]string) Stepper

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in sorted order.
func SimNames() string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
