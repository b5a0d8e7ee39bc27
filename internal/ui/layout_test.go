package ui

import (
	"testing"

	"lifeloop/internal/widgets"

	"golang.org/x/image/font/basicfont"
)

func TestPanelLayoutHitTesting(t *testing.T) {
	l := newPanelLayout(Width)
	cases := []struct {
		x, y int
		want control
		what string
	}{
		{l.play.Min.X, l.play.Min.Y, playControl, "play top-left"},
		{l.play.Max.X - 1, l.play.Max.Y - 1, playControl, "play bottom-right"},
		{l.play.Max.X, l.play.Min.Y, noControl, "gap between play and next"},
		{l.next.Min.X + 1, l.next.Min.Y + 1, nextControl, "next"},
		{l.minus.Min.X + 2, l.minus.Min.Y + 2, slowerControl, "minus"},
		{l.plus.Min.X + 2, l.plus.Min.Y + 2, fasterControl, "plus"},
		{l.plus.Max.X, l.plus.Min.Y, noControl, "right of plus"},
		{0, 0, noControl, "panel corner"},
	}
	for _, tc := range cases {
		if got := l.hit(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: hit(%d,%d) = %d, want %d", tc.what, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPanelLayoutFitsWidth(t *testing.T) {
	l := newPanelLayout(Width)
	for name, r := range map[string]struct{ minX, maxX int }{
		"play":  {l.play.Min.X, l.play.Max.X},
		"next":  {l.next.Min.X, l.next.Max.X},
		"minus": {l.minus.Min.X, l.minus.Max.X},
		"plus":  {l.plus.Min.X, l.plus.Max.X},
	} {
		if r.minX < panelPadding || r.maxX > Width-panelPadding {
			t.Fatalf("%s spans %d..%d outside the padded panel", name, r.minX, r.maxX)
		}
	}
	if l.minus.Max.X > l.plus.Min.X {
		t.Fatalf("minus %v overlaps plus %v", l.minus, l.plus)
	}
	if l.sliderTop < l.play.Max.Y {
		t.Fatalf("slider row starts at %d inside the button row ending at %d", l.sliderTop, l.play.Max.Y)
	}
}

func TestButtonTextHasGlyphs(t *testing.T) {
	labels := []string{
		playText(widgets.PlayLabel),
		playText(widgets.PauseLabel),
		"Go To Next Frame",
		"-", "+", "Target FPS", "Maximum",
	}
	for _, label := range labels {
		for _, r := range label {
			if _, ok := basicfont.Face7x13.GlyphAdvance(r); !ok {
				t.Fatalf("label %q: no glyph for %q", label, r)
			}
		}
	}
	if playText(widgets.PlayLabel) == playText(widgets.PauseLabel) {
		t.Fatalf("play and pause must read differently")
	}
	if got := playText("Go"); got != "Go" {
		t.Fatalf("playText(%q) = %q, want it unchanged", "Go", got)
	}
}

func TestPlayTextFitsButton(t *testing.T) {
	l := newPanelLayout(Width)
	for _, label := range []string{playText(widgets.PlayLabel), playText(widgets.PauseLabel)} {
		if w := len(label) * basicfont.Face7x13.Advance; w > l.play.Dx() {
			t.Fatalf("%q is %dpx wide, button is %dpx", label, w, l.play.Dx())
		}
	}
}
