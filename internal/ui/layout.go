package ui

import (
	"image"

	"lifeloop/internal/widgets"
)

// Width is the panel width in pixels.
const Width = 240

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 16
	labelBaseline  = 24
	buttonHeight   = 28
	buttonSize     = 24
	buttonGap      = 6
	playWidth      = 56
	rowGap         = 10
	rowHeight      = 36
)

// control identifies a clickable area of the panel.
type control int

const (
	noControl control = iota
	playControl
	nextControl
	slowerControl
	fasterControl
)

// panelLayout holds the panel geometry relative to its top-left corner.
type panelLayout struct {
	buttonsTop int
	sliderTop  int
	play       image.Rectangle
	next       image.Rectangle
	minus      image.Rectangle
	plus       image.Rectangle
}

func newPanelLayout(width int) panelLayout {
	var l panelLayout
	// Title, target and four stats lines, then the generation counter.
	l.buttonsTop = panelPadding + headerBaseline + 7*lineSpacing + lineSpacing
	inner := width - 2*panelPadding
	l.play = image.Rect(panelPadding, l.buttonsTop, panelPadding+playWidth, l.buttonsTop+buttonHeight)
	l.next = image.Rect(l.play.Max.X+buttonGap, l.buttonsTop, panelPadding+inner, l.buttonsTop+buttonHeight)
	l.sliderTop = l.buttonsTop + buttonHeight + rowGap
	buttonY := l.sliderTop + (rowHeight-buttonSize)/2
	l.plus = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	l.minus = image.Rect(l.plus.Min.X-buttonGap-buttonSize, buttonY, l.plus.Min.X-buttonGap, buttonY+buttonSize)
	return l
}

// hit returns the control under (x, y).
func (l panelLayout) hit(x, y int) control {
	switch {
	case pointInRect(x, y, l.play):
		return playControl
	case pointInRect(x, y, l.next):
		return nextControl
	case pointInRect(x, y, l.minus):
		return slowerControl
	case pointInRect(x, y, l.plus):
		return fasterControl
	}
	return noControl
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// playText spells out the play/pause glyphs, which the bitmap font lacks.
func playText(label string) string {
	switch label {
	case widgets.PlayLabel:
		return "Play"
	case widgets.PauseLabel:
		return "Pause"
	}
	return label
}
