//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifeloop/internal/widgets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// generationSource is satisfied by the scheduler.
type generationSource interface {
	Generation() uint64
}

// HUD renders the control panel to the right of the simulation canvas.
type HUD struct {
	panel  *widgets.Panel
	gen    generationSource
	width  int
	height int
	img    *ebiten.Image
	pixel  *ebiten.Image
	layout panelLayout
}

// NewHUD lays out a panel of the given size for the widgets.
func NewHUD(panel *widgets.Panel, gen generationSource, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{panel: panel, gen: gen, width: width, height: height, layout: newPanelLayout(width)}
	if width > 0 && height > 0 {
		h.img = ebiten.NewImage(width, height)
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update handles clicks on the panel, which is drawn at offsetX.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return
	}
	switch h.layout.hit(mx-offsetX, my) {
	case playControl:
		h.panel.PlayPause.Click()
	case nextControl:
		h.panel.NextFrame.Click()
	case slowerControl:
		h.panel.Range.Nudge(-1)
	case fasterControl:
		h.panel.Range.Nudge(1)
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.img == nil {
		return
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13

	y := panelPadding + headerBaseline
	for i, line := range h.panel.Display.Lines() {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.img, line, face, panelPadding, y, col)
		y += lineSpacing
		if i == 1 {
			y += lineSpacing / 2
		}
	}
	if h.gen != nil {
		text.Draw(h.img, fmt.Sprintf("Generation %d", h.gen.Generation()), face, panelPadding, h.layout.buttonsTop-lineSpacing/2, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	l := h.layout
	h.drawButton(l.play, playText(h.panel.PlayPause.Label()), true)
	h.drawButton(l.next, h.panel.NextFrame.Label(), true)

	sliderY := l.sliderTop + labelBaseline
	text.Draw(h.img, "Target FPS", face, panelPadding, sliderY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	value := h.panel.Range.Label()
	bounds := text.BoundString(face, value)
	text.Draw(h.img, value, face, l.minus.Min.X-buttonGap-bounds.Dx(), sliderY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	h.drawButton(l.minus, "-", h.panel.Range.Value() > widgets.RangeMin)
	h.drawButton(l.plus, "+", h.panel.Range.Value() < widgets.RangeMax)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
