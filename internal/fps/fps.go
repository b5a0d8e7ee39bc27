// Package fps computes rolling frame-rate statistics from a stream of
// "a frame happened now" signals.
package fps

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

var (
	// ErrNotInitialized is returned by Tick before Initialize.
	ErrNotInitialized = errors.New("fps: calculator should be initialized first")
	// ErrEmptyWindow rejects calculators that could never hold a sample.
	ErrEmptyWindow = errors.New("fps: window must hold at least one sample")
)

// Stats is the result of one Tick. Rates are in frames per second.
type Stats struct {
	Last    float64
	Samples int
	Avg     float64
	Min     float64
	Max     float64
}

func (s Stats) String() string {
	return fmt.Sprintf("last=%.2f avg=%.2f min=%.2f max=%.2f samples=%d", s.Last, s.Avg, s.Min, s.Max, s.Samples)
}

// Calculator keeps the most recent instantaneous rates in a fixed-size ring.
type Calculator struct {
	clock clock.Clock

	ring []float64
	head int
	n    int
	sum  float64

	min, max       float64
	hasMin, hasMax bool

	last        time.Time
	initialized bool
}

// New returns a calculator remembering up to maxSamples rates.
func New(maxSamples int, clk clock.Clock) (*Calculator, error) {
	if maxSamples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyWindow, maxSamples)
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Calculator{clock: clk, ring: make([]float64, maxSamples)}, nil
}

// Initialize records the base timestamp for the first Tick.
func (c *Calculator) Initialize() {
	c.last = c.clock.Now()
	c.initialized = true
}

// Initialized reports whether Initialize was called.
func (c *Calculator) Initialized() bool { return c.initialized }

// MaxSamples is the window capacity.
func (c *Calculator) MaxSamples() int { return len(c.ring) }

// Tick records a frame at the current time and returns the window statistics.
func (c *Calculator) Tick() (Stats, error) {
	if !c.initialized {
		return Stats{}, ErrNotInitialized
	}
	now := c.clock.Now()
	rate := float64(time.Second) / float64(now.Sub(c.last))
	c.last = now

	if c.n == len(c.ring) {
		c.evict()
	}
	c.ring[(c.head+c.n)%len(c.ring)] = rate
	c.n++
	c.sum += rate
	if math.IsInf(c.sum, 0) || math.IsNaN(c.sum) {
		c.resum()
	}

	if !c.hasMin || !c.hasMax {
		c.rescan()
	} else {
		if rate < c.min {
			c.min = rate
		}
		if rate > c.max {
			c.max = rate
		}
	}

	return Stats{
		Last:    rate,
		Samples: c.n,
		Avg:     c.sum / float64(c.n),
		Min:     c.min,
		Max:     c.max,
	}, nil
}

// Window returns the samples oldest first.
func (c *Calculator) Window() []float64 {
	out := make([]float64, c.n)
	for i := range out {
		out[i] = c.ring[(c.head+i)%len(c.ring)]
	}
	return out
}

// Sum is the running sum of the window.
func (c *Calculator) Sum() float64 { return c.sum }

func (c *Calculator) evict() {
	old := c.ring[c.head]
	c.head = (c.head + 1) % len(c.ring)
	c.n--
	c.sum -= old
	if old == c.min {
		c.hasMin = false
	}
	if old == c.max {
		c.hasMax = false
	}
	if math.IsInf(old, 0) || math.IsNaN(old) {
		c.resum()
	}
}

// resum rebuilds the running sum; Inf-Inf would otherwise poison it.
func (c *Calculator) resum() {
	c.sum = 0
	for i := 0; i < c.n; i++ {
		c.sum += c.ring[(c.head+i)%len(c.ring)]
	}
}

func (c *Calculator) rescan() {
	c.min = math.Inf(1)
	c.max = math.Inf(-1)
	for i := 0; i < c.n; i++ {
		v := c.ring[(c.head+i)%len(c.ring)]
		c.min = math.Min(c.min, v)
		c.max = math.Max(c.max, v)
	}
	c.hasMin, c.hasMax = true, true
}
