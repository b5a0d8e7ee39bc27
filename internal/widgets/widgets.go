// Package widgets holds the view models of the on-screen controls. Each one
// subscribes to the scheduler's bus, exposes the text it shows and turns
// clicks into calls on the control surface. Drawing is left to the ebiten HUD
// and the terminal panel.
package widgets

import (
	"lifeloop/internal/bus"
	"lifeloop/internal/core"

	"github.com/benbjohnson/clock"
)

// Controller is the control surface the widgets drive.
type Controller interface {
	Resume()
	Pause()
	IsPaused() bool
	Fps() core.Rate
	UpdateFps(r core.Rate)
	GoToNextFrame()
	Events() *bus.Bus
}

// Labels shown by the play/pause button.
const (
	PlayLabel  = "▶"
	PauseLabel = "⏸"
)

// PlayPause toggles the loop and reflects its state.
type PlayPause struct {
	ctl   Controller
	label string

	onPaused  *bus.Handler[bus.Empty]
	onResumed *bus.Handler[bus.Empty]
}

// NewPlayPause subscribes a play/pause button to ctl.
func NewPlayPause(ctl Controller) *PlayPause {
	p := &PlayPause{ctl: ctl, label: PauseLabel}
	if ctl.IsPaused() {
		p.label = PlayLabel
	}
	p.onPaused = bus.Func(func(bus.Empty) { p.label = PlayLabel })
	p.onResumed = bus.Func(func(bus.Empty) { p.label = PauseLabel })
	bus.Subscribe(ctl.Events(), bus.Paused, p.onPaused)
	bus.Subscribe(ctl.Events(), bus.Resumed, p.onResumed)
	return p
}

// Label is the glyph to draw.
func (p *PlayPause) Label() string { return p.label }

// Click resumes a paused loop and pauses a running one.
func (p *PlayPause) Click() {
	if p.ctl.IsPaused() {
		p.ctl.Resume()
		return
	}
	p.ctl.Pause()
}

// Dispose unsubscribes the button.
func (p *PlayPause) Dispose() {
	bus.Unsubscribe(p.ctl.Events(), bus.Resumed, p.onResumed)
	bus.Unsubscribe(p.ctl.Events(), bus.Paused, p.onPaused)
}

// NextFrame single-steps the simulation.
type NextFrame struct {
	ctl Controller
}

// NewNextFrame returns a next-frame button.
func NewNextFrame(ctl Controller) *NextFrame { return &NextFrame{ctl: ctl} }

// Label is the button text.
func (n *NextFrame) Label() string { return "Go To Next Frame" }

// Click steps exactly one frame.
func (n *NextFrame) Click() { n.ctl.GoToNextFrame() }

// Dispose is a no-op; the button does not listen to the bus.
func (n *NextFrame) Dispose() {}

// Panel groups the four controls shown next to the canvas.
type Panel struct {
	PlayPause *PlayPause
	NextFrame *NextFrame
	Range     *FPSRange
	Display   *FPSDisplay
}

// NewPanel subscribes every control to ctl.
func NewPanel(ctl Controller, maxSamples int, clk clock.Clock) (*Panel, error) {
	display, err := NewFPSDisplay(ctl, maxSamples, clk)
	if err != nil {
		return nil, err
	}
	return &Panel{
		PlayPause: NewPlayPause(ctl),
		NextFrame: NewNextFrame(ctl),
		Range:     NewFPSRange(ctl),
		Display:   display,
	}, nil
}

// Dispose unsubscribes every control.
func (p *Panel) Dispose() {
	p.PlayPause.Dispose()
	p.NextFrame.Dispose()
	p.Range.Dispose()
	p.Display.Dispose()
}
