package render

import (
	"image/color"

	"lifeloop/internal/core"
)

// paintCanvas writes the grid lines and cells into buf, an RGBA buffer of
// CanvasSize(cols, rows). Pixel rows and columns that are multiples of the
// pitch carry the grid line.
func paintCanvas(buf []byte, cells []core.Cell, cols, rows int, pal Palette) {
	w, h := CanvasSize(cols, rows)
	if len(buf) != 4*w*h || len(cells) != cols*rows {
		return
	}
	for y := 0; y < h; y++ {
		gridRow := y%pitch == 0
		row := y / pitch
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			if gridRow || x%pitch == 0 {
				putRGBA(buf[base:base+4], pal.Grid)
				continue
			}
			if cells[row*cols+x/pitch] == core.Alive {
				putRGBA(buf[base:base+4], pal.Alive)
				continue
			}
			putRGBA(buf[base:base+4], pal.Dead)
		}
	}
}

func putRGBA(px []byte, c color.RGBA) {
	px[0] = c.R
	px[1] = c.G
	px[2] = c.B
	px[3] = c.A
}
