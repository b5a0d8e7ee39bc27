package render

import "image/color"

// CellSize is the edge of a cell in pixels, not counting the grid line.
const CellSize = 8

const pitch = CellSize + 1

// Palette holds the three fills of the canvas.
type Palette struct {
	Grid  color.RGBA
	Dead  color.RGBA
	Alive color.RGBA
}

// DefaultPalette draws black cells on white with light grey grid lines.
var DefaultPalette = Palette{
	Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	Dead:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// CanvasSize returns the pixel size of a grid of cols x rows cells with a
// 1px line around every cell.
func CanvasSize(cols, rows int) (w, h int) {
	return pitch*cols + 1, pitch*rows + 1
}

// CellAt maps a pixel on the canvas to the cell under it. ok is false
// outside the grid.
func CellAt(x, y, cols, rows int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/pitch, x/pitch
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
