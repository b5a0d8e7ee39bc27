//go:build ebiten

package render

import (
	"lifeloop/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Canvas is the ebiten drawing surface of the grid. Render repaints its
// offscreen image; Draw composites that image onto the screen.
type Canvas struct {
	cols, rows int
	palette    Palette
	img        *ebiten.Image
	buf        []byte
}

// NewCanvas allocates a canvas for a grid of cols x rows cells.
func NewCanvas(cols, rows int, pal Palette) *Canvas {
	w, h := CanvasSize(cols, rows)
	return &Canvas{
		cols:    cols,
		rows:    rows,
		palette: pal,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Render implements engine.Renderer.
func (c *Canvas) Render(s core.Stepper) {
	if s.Width() != c.cols || s.Height() != c.rows {
		return
	}
	paintCanvas(c.buf, s.Cells(), c.cols, c.rows, c.palette)
	c.img.ReplacePixels(c.buf)
}

// Update toggles the cell under a left click and redraws it. x and y are
// in the canvas' coordinate space.
func (c *Canvas) Update(s core.Stepper, x, y int) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	row, col, ok := CellAt(x, y, c.cols, c.rows)
	if !ok {
		return false
	}
	s.ToggleCell(row, col)
	c.Render(s)
	return true
}

// Draw paints the canvas at the top-left of dst.
func (c *Canvas) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(c.img, op)
}

// Size returns the unscaled pixel size.
func (c *Canvas) Size() (int, int) { return CanvasSize(c.cols, c.rows) }
