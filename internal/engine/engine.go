// Package engine owns the animation loop: it decides when the stepper ticks
// and the renderer draws, and broadcasts lifecycle events on the bus.
//
// The loop never sleeps. Every attempt asks the Host for the next paint
// opportunity and skips the ones that arrive before the target rate allows
// another tick. The comparison is always against the last committed tick, so
// a late frame does not push later frames back.
package engine

import (
	"time"

	"lifeloop/internal/bus"
	"lifeloop/internal/core"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultRate is the target rate when none is configured.
const DefaultRate core.Rate = 5

// Renderer draws the stepper state onto its surface.
type Renderer interface {
	Render(s core.Stepper)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s core.Stepper)

// Render calls f.
func (f RendererFunc) Render(s core.Stepper) { f(s) }

// Next is the outcome of one loop attempt.
type Next int

const (
	// Stop means the loop is no longer running and wants no further frames.
	Stop Next = iota
	// ContinueLater asks for another attempt on the next paint opportunity.
	ContinueLater
)

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithRate sets the initial target rate.
func WithRate(r core.Rate) Option {
	return func(s *Scheduler) { s.rate = r }
}

// WithClock replaces the monotonic clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the log entry used for lifecycle and timing logs.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler is the frame loop of one simulation session. It is not safe for
// concurrent use; the host calls it from a single goroutine.
type Scheduler struct {
	host     Host
	stepper  core.Stepper
	renderer Renderer
	events   *bus.Bus
	clock    clock.Clock
	log      *logrus.Entry

	rate       core.Rate
	running    bool
	pending    FrameID
	lastTick   time.Time
	generation uint64
}

// New builds a paused scheduler and renders the initial state once.
func New(host Host, stepper core.Stepper, renderer Renderer, events *bus.Bus, opts ...Option) *Scheduler {
	s := &Scheduler{
		host:     host,
		stepper:  stepper,
		renderer: renderer,
		events:   events,
		rate:     DefaultRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.log == nil {
		s.log = logrus.NewEntry(logrus.StandardLogger())
	}
	if s.events == nil {
		s.events = bus.New(s.log)
	}
	s.log = s.log.WithFields(logrus.Fields{"session": uuid.NewString(), "sim": stepper.Name()})
	s.lastTick = s.clock.Now()
	s.renderer.Render(s.stepper)
	return s
}

// Events exposes the bus widgets subscribe to.
func (s *Scheduler) Events() *bus.Bus { return s.events }

// Stepper returns the driven stepping engine.
func (s *Scheduler) Stepper() core.Stepper { return s.stepper }

// IsPaused reports whether the loop is stopped.
func (s *Scheduler) IsPaused() bool { return !s.running }

// Fps returns the target rate.
func (s *Scheduler) Fps() core.Rate { return s.rate }

// Generation counts committed ticks, single steps included.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Resume starts the loop. The first attempt runs immediately.
func (s *Scheduler) Resume() {
	if s.running {
		return
	}
	s.running = true
	s.log.WithField("rate", s.rate).Debug("resumed")
	bus.Publish(s.events, bus.Resumed, bus.Empty{})
	s.frame()
}

// Pause stops the loop and cancels the pending frame request.
func (s *Scheduler) Pause() {
	if !s.running {
		return
	}
	s.cancelPending()
	s.running = false
	s.log.Debug("paused")
	bus.Publish(s.events, bus.Paused, bus.Empty{})
}

// UpdateFps changes the target rate without touching the pause state. Rates
// that are not positive, NaN included, are ignored.
func (s *Scheduler) UpdateFps(r core.Rate) {
	if !(r > 0) {
		s.log.WithField("rate", float64(r)).Warn("ignoring invalid target rate")
		return
	}
	s.rate = r
	s.log.WithField("rate", r).Debug("target rate updated")
	bus.Publish(s.events, bus.FPSUpdate, r)
}

// GoToNextFrame pauses the loop and performs exactly one tick and render.
// It does not publish AfterTick.
func (s *Scheduler) GoToNextFrame() {
	s.Pause()
	s.lastTick = s.clock.Now()
	s.commit()
}

// frame is the callback handed to the host.
func (s *Scheduler) frame() {
	s.pending = 0
	next, committed := s.attempt()
	s.continueLater(next)
	if committed {
		bus.Publish(s.events, bus.AfterTick, bus.Empty{})
	}
}

// attempt runs one loop iteration. committed reports whether the stepper
// ticked.
func (s *Scheduler) attempt() (next Next, committed bool) {
	if !s.running {
		return Stop, false
	}
	bus.Publish(s.events, bus.BeforeTick, bus.Empty{})
	if !s.running {
		return Stop, false
	}
	now := s.clock.Now()
	if !s.rate.Due(now.Sub(s.lastTick)) {
		return ContinueLater, false
	}
	s.lastTick = now
	s.commit()
	return ContinueLater, true
}

// continueLater consumes the attempt's signal. At most one request is ever
// pending, even when a handler resumed the loop in the meantime.
func (s *Scheduler) continueLater(next Next) {
	if next != ContinueLater || !s.running || s.pending != 0 {
		return
	}
	s.pending = s.host.RequestFrame(s.frame)
}

func (s *Scheduler) cancelPending() {
	if s.pending == 0 {
		return
	}
	s.host.CancelFrame(s.pending)
	s.pending = 0
}

func (s *Scheduler) commit() {
	start := s.clock.Now()
	s.stepper.Tick()
	ticked := s.clock.Now()
	s.renderer.Render(s.stepper)
	s.generation++
	if s.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		s.log.WithFields(logrus.Fields{
			"generation": s.generation,
			"tick":       ticked.Sub(start),
			"render":     s.clock.Now().Sub(ticked),
		}).Trace("frame committed")
	}
}
