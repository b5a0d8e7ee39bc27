package life

import "lifeloop/internal/core"

// Seed patterns understood by Config.Pattern.
const (
	PatternEmpty  = "empty"
	PatternRandom = "random"
	PatternGlider = "glider"
	PatternPulsar = "pulsar"
)

// Offsets are relative to the pattern center, (row, col).
var gliderOffsets = [][2]int{
	{-1, 0},
	{0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var pulsarOffsets = func() [][2]int {
	// One quadrant, mirrored into the other three.
	quadrant := [][2]int{
		{-6, -4}, {-6, -3}, {-6, -2},
		{-4, -6}, {-3, -6}, {-2, -6},
		{-4, -1}, {-3, -1}, {-2, -1},
		{-1, -4}, {-1, -3}, {-1, -2},
	}
	out := make([][2]int, 0, 4*len(quadrant))
	for _, rs := range []int{1, -1} {
		for _, cs := range []int{1, -1} {
			for _, o := range quadrant {
				out = append(out, [2]int{o[0] * rs, o[1] * cs})
			}
		}
	}
	return out
}()

// MakeGlider stamps a glider centered at (row, col), wrapping at the edges.
func (u *Universe) MakeGlider(row, col int) { u.stamp(row, col, gliderOffsets) }

// MakePulsar stamps a pulsar centered at (row, col), wrapping at the edges.
func (u *Universe) MakePulsar(row, col int) { u.stamp(row, col, pulsarOffsets) }

func (u *Universe) stamp(row, col int, offsets [][2]int) {
	for _, o := range offsets {
		u.cur.Set(row+o[0], col+o[1], core.Alive)
	}
}

func stampPattern(u *Universe, pattern string, seed int64) {
	row, col := u.Height()/2, u.Width()/2
	switch pattern {
	case PatternRandom:
		core.NewRNG(seed).FillRandom(u.cur.Cells(), u.cfg.Density)
	case PatternGlider:
		u.MakeGlider(row, col)
	case PatternPulsar:
		u.MakePulsar(row, col)
	}
}
