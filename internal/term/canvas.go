package term

import (
	"strings"

	"lifeloop/internal/core"

	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the number of terminal columns per cell; two columns keep
// cells roughly square.
const cellWidth = 2

// Canvas renders the grid as styled terminal cells. It implements
// engine.Renderer; View returns the last rendered frame.
type Canvas struct {
	alive string
	dead  string
	frame string
	cols  int
	rows  int
}

// NewCanvas builds a canvas with black live cells on white.
func NewCanvas() *Canvas {
	blank := strings.Repeat(" ", cellWidth)
	return &Canvas{
		alive: lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Render(blank),
		dead:  lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Render(blank),
	}
}

// Render implements engine.Renderer.
func (c *Canvas) Render(s core.Stepper) {
	c.cols, c.rows = s.Width(), s.Height()
	cells := s.Cells()
	var b strings.Builder
	b.Grow(c.rows * (c.cols*len(c.dead) + 1))
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			if cells[row*c.cols+col] == core.Alive {
				b.WriteString(c.alive)
				continue
			}
			b.WriteString(c.dead)
		}
	}
	c.frame = b.String()
}

// View returns the last rendered frame.
func (c *Canvas) View() string { return c.frame }

// CellAt maps a terminal position relative to the canvas to a cell.
func (c *Canvas) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/cellWidth
	if row >= c.rows || col >= c.cols {
		return 0, 0, false
	}
	return row, col, true
}
