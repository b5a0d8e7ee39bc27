package widgets

import (
	"math"

	"lifeloop/internal/bus"
	"lifeloop/internal/core"
)

// Slider bounds. The top notch means "no cap".
const (
	RangeMin  = 1
	RangeMax  = 101
	RangeStep = 1
)

// FPSRange is the target-rate slider.
type FPSRange struct {
	ctl   Controller
	value int

	onFpsUpdate *bus.Handler[core.Rate]
}

// NewFPSRange builds a slider positioned at the current target rate.
func NewFPSRange(ctl Controller) *FPSRange {
	r := &FPSRange{ctl: ctl, value: sliderValue(ctl.Fps())}
	r.onFpsUpdate = bus.Func(func(rate core.Rate) { r.value = sliderValue(rate) })
	bus.Subscribe(ctl.Events(), bus.FPSUpdate, r.onFpsUpdate)
	return r
}

// Value is the slider position.
func (r *FPSRange) Value() int { return r.value }

// Label describes the position; the top notch reads "Maximum".
func (r *FPSRange) Label() string { return rateForValue(r.value).String() }

// SetValue moves the slider, clamped to its bounds, and updates the target
// rate. Positions above 100 select an unbounded rate.
func (r *FPSRange) SetValue(v int) {
	if v < RangeMin {
		v = RangeMin
	}
	if v > RangeMax {
		v = RangeMax
	}
	r.value = v
	r.ctl.UpdateFps(rateForValue(v))
}

// Nudge moves the slider by delta steps.
func (r *FPSRange) Nudge(delta int) { r.SetValue(r.value + delta*RangeStep) }

// Dispose unsubscribes the slider.
func (r *FPSRange) Dispose() {
	bus.Unsubscribe(r.ctl.Events(), bus.FPSUpdate, r.onFpsUpdate)
}

func rateForValue(v int) core.Rate {
	if v > RangeMax-1 {
		return core.Unbounded
	}
	return core.Rate(v)
}

func sliderValue(rate core.Rate) int {
	if rate.IsUnbounded() || rate > RangeMax-1 {
		return RangeMax
	}
	v := int(math.Round(float64(rate)))
	if v < RangeMin {
		return RangeMin
	}
	return v
}
