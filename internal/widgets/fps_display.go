package widgets

import (
	"fmt"

	"lifeloop/internal/bus"
	"lifeloop/internal/core"
	"lifeloop/internal/fps"

	"github.com/benbjohnson/clock"
)

// DefaultMaxSamples is the rolling window of the FPS readout.
const DefaultMaxSamples = 100

// FPSDisplay shows the target rate and rolling statistics of committed ticks.
type FPSDisplay struct {
	ctl        Controller
	clock      clock.Clock
	maxSamples int

	calc  *fps.Calculator
	stats []string

	onPaused    *bus.Handler[bus.Empty]
	onAfterTick *bus.Handler[bus.Empty]
	onFpsUpdate *bus.Handler[core.Rate]
}

// NewFPSDisplay subscribes a readout to ctl. maxSamples <= 0 is rejected.
func NewFPSDisplay(ctl Controller, maxSamples int, clk clock.Clock) (*FPSDisplay, error) {
	if clk == nil {
		clk = clock.New()
	}
	d := &FPSDisplay{ctl: ctl, clock: clk, maxSamples: maxSamples}
	if err := d.reset(); err != nil {
		return nil, err
	}
	d.onPaused = bus.NewHandler(func(bus.Empty) error { return d.reset() })
	d.onAfterTick = bus.NewHandler(d.afterTick)
	d.onFpsUpdate = bus.NewHandler(func(core.Rate) error {
		d.stats = nil
		return d.reset()
	})
	bus.Subscribe(ctl.Events(), bus.Paused, d.onPaused)
	bus.Subscribe(ctl.Events(), bus.AfterTick, d.onAfterTick)
	bus.Subscribe(ctl.Events(), bus.FPSUpdate, d.onFpsUpdate)
	return d, nil
}

// Title is the heading of the readout.
func (d *FPSDisplay) Title() string { return "Frames per Second" }

// Target describes the target rate.
func (d *FPSDisplay) Target() string { return "Target: " + d.ctl.Fps().String() }

// Stats returns the statistics lines; empty until two ticks were observed.
func (d *FPSDisplay) Stats() []string { return d.stats }

// Lines is the full readout, title first.
func (d *FPSDisplay) Lines() []string {
	return append([]string{d.Title(), d.Target()}, d.stats...)
}

// Dispose unsubscribes the readout.
func (d *FPSDisplay) Dispose() {
	bus.Unsubscribe(d.ctl.Events(), bus.Paused, d.onPaused)
	bus.Unsubscribe(d.ctl.Events(), bus.AfterTick, d.onAfterTick)
	bus.Unsubscribe(d.ctl.Events(), bus.FPSUpdate, d.onFpsUpdate)
}

// afterTick initializes a fresh calculator on the first tick and samples on
// every following one.
func (d *FPSDisplay) afterTick(bus.Empty) error {
	if !d.calc.Initialized() {
		d.calc.Initialize()
		return nil
	}
	s, err := d.calc.Tick()
	if err != nil {
		return err
	}
	d.stats = []string{
		fmt.Sprintf("Latest = %.2f", s.Last),
		fmt.Sprintf("Average of last %d = %.2f", s.Samples, s.Avg),
		fmt.Sprintf("Minimum of last %d = %.2f", s.Samples, s.Min),
		fmt.Sprintf("Maximum of last %d = %.2f", s.Samples, s.Max),
	}
	return nil
}

func (d *FPSDisplay) reset() error {
	calc, err := fps.New(d.maxSamples, d.clock)
	if err != nil {
		return err
	}
	d.calc = calc
	return nil
}
