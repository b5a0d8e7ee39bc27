package elementary

import (
	"testing"

	"lifeloop/internal/core"
)

func TestRule90Triangle(t *testing.T) {
	e := New(7, 4, 90)
	e.Tick()
	e.Tick()

	// Newest generation first; the seed row has scrolled down to row 2.
	want := []string{
		"◻◼◻◻◻◼◻",
		"◻◻◼◻◼◻◻",
		"◻◻◻◼◻◻◻",
		"◻◻◻◻◻◻◻",
	}
	for row, line := range want {
		got := rowString(e, row)
		if got != line {
			t.Fatalf("row %d = %s, want %s", row, got, line)
		}
	}
}

func TestFromMapIgnoresInvalidRule(t *testing.T) {
	c := FromMap(map[string]string{"rule": "300", "w": "12"})
	if c.Rule != 110 || c.Width != 12 {
		t.Fatalf("config = %+v", c)
	}
}

func rowString(e *Elementary, row int) string {
	w := e.Width()
	out := ""
	for _, c := range e.Cells()[row*w : (row+1)*w] {
		if c == core.Alive {
			out += "◼"
		} else {
			out += "◻"
		}
	}
	return out
}
