// Package session wires a stepper, a renderer, the scheduler and the control
// panel into one running simulation. Hosts own the refresh cycle and call
// Paint once per frame.
package session

import (
	"fmt"

	"lifeloop/internal/bus"
	"lifeloop/internal/config"
	"lifeloop/internal/core"
	"lifeloop/internal/engine"
	"lifeloop/internal/logger"
	"lifeloop/internal/widgets"

	"github.com/benbjohnson/clock"
)

// Session is one simulation with its loop and widgets.
type Session struct {
	Frames    *engine.FrameQueue
	Scheduler *engine.Scheduler
	Panel     *widgets.Panel

	stepper  core.Stepper
	renderer engine.Renderer
	seed     int64
	closed   bool
	log      *logger.Entry
}

// NewStepper builds the simulation named by cfg.Sim.
func NewStepper(cfg config.Config) (core.Stepper, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("session: unknown sim %q (have %s)", cfg.Sim, core.SimNames())
	}
	return factory(cfg.SimConfig()), nil
}

// New builds a session around stepper. The loop starts paused unless
// cfg.Autoplay is set. clk may be nil.
func New(cfg config.Config, stepper core.Stepper, renderer engine.Renderer, clk clock.Clock) (*Session, error) {
	if clk == nil {
		clk = clock.New()
	}
	frames := &engine.FrameQueue{}
	sched := engine.New(frames, stepper, renderer, bus.New(logger.Named("bus")),
		engine.WithRate(cfg.FPS),
		engine.WithClock(clk),
		engine.WithLogger(logger.Named("engine")),
	)
	panel, err := widgets.NewPanel(sched, cfg.Samples, clk)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		Frames:    frames,
		Scheduler: sched,
		Panel:     panel,
		stepper:   stepper,
		renderer:  renderer,
		seed:      cfg.Seed,
		log:       logger.Named("session"),
	}
	if cfg.Autoplay {
		sched.Resume()
	}
	return s, nil
}

// Stepper returns the simulation.
func (s *Session) Stepper() core.Stepper { return s.stepper }

// Paint is one paint opportunity of the host.
func (s *Session) Paint() { s.Frames.Paint() }

// Toggle flips a cell and redraws.
func (s *Session) Toggle(row, col int) {
	s.stepper.ToggleCell(row, col)
	s.renderer.Render(s.stepper)
}

// Reset reseeds the simulation when it supports it and redraws. It reports
// whether the stepper was reset.
func (s *Session) Reset(seed int64) bool {
	r, ok := s.stepper.(core.Resetter)
	if !ok {
		s.log.WithField("sim", s.stepper.Name()).Warn("simulation cannot be reset")
		return false
	}
	s.seed = seed
	r.Reset(seed)
	s.renderer.Render(s.stepper)
	s.log.WithField("seed", seed).Info("reset")
	return true
}

// Seed is the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Close stops the loop and unsubscribes the widgets. Later calls do nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Scheduler.Pause()
	s.Panel.Dispose()
}
