package session

import (
	"testing"
	"time"

	"lifeloop/internal/config"
	"lifeloop/internal/core"
	_ "lifeloop/internal/sims/elementary"
	_ "lifeloop/internal/sims/life"

	"github.com/benbjohnson/clock"
)

type renderCount struct{ n int }

func (r *renderCount) Render(core.Stepper) { r.n++ }

func newSession(t *testing.T, mutate func(*config.Config)) (*Session, *renderCount, *clock.Mock) {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Pattern = 10, 10, "glider"
	if mutate != nil {
		mutate(&cfg)
	}
	stepper, err := NewStepper(cfg)
	if err != nil {
		t.Fatalf("stepper: %v", err)
	}
	r := &renderCount{}
	clk := clock.NewMock()
	s, err := New(cfg, stepper, r, clk)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s, r, clk
}

func TestNewStepperRejectsUnknownSim(t *testing.T) {
	cfg := config.Default()
	cfg.Sim = "nope"
	if _, err := NewStepper(cfg); err == nil {
		t.Fatalf("expected an error for an unknown sim")
	}
}

func TestNewStartsPausedByDefault(t *testing.T) {
	s, r, _ := newSession(t, nil)
	if !s.Scheduler.IsPaused() {
		t.Fatalf("session should start paused")
	}
	if r.n != 1 {
		t.Fatalf("renders = %d, want the initial render only", r.n)
	}
	if s.Frames.Pending() != 0 {
		t.Fatalf("a paused session should not request frames")
	}
}

func TestAutoplayRunsOnPaint(t *testing.T) {
	s, _, clk := newSession(t, func(c *config.Config) {
		c.Autoplay = true
		c.FPS = 10
	})
	if s.Scheduler.IsPaused() {
		t.Fatalf("autoplay should resume the loop")
	}
	for i := 0; i < 5; i++ {
		clk.Add(100 * time.Millisecond)
		s.Paint()
	}
	if got := s.Scheduler.Generation(); got != 5 {
		t.Fatalf("generation = %d, want 5", got)
	}
}

func TestToggleAndReset(t *testing.T) {
	s, r, _ := newSession(t, func(c *config.Config) { c.Pattern = "empty" })
	s.Toggle(2, 3)
	if s.Stepper().Cells()[2*10+3] != core.Alive {
		t.Fatalf("toggle did not flip the cell")
	}
	if r.n != 2 {
		t.Fatalf("renders = %d, want 2 after a toggle", r.n)
	}
	if !s.Reset(9) {
		t.Fatalf("life should support reset")
	}
	if s.Seed() != 9 {
		t.Fatalf("seed = %d, want 9", s.Seed())
	}
	for i, c := range s.Stepper().Cells() {
		if c != core.Dead {
			t.Fatalf("cell %d alive after resetting an empty pattern", i)
		}
	}
	if r.n != 3 {
		t.Fatalf("renders = %d, want 3 after a reset", r.n)
	}
}

func TestCloseLeavesBusEmpty(t *testing.T) {
	s, _, _ := newSession(t, func(c *config.Config) { c.Autoplay = true })
	s.Close()
	if !s.Scheduler.IsPaused() {
		t.Fatalf("close should pause the loop")
	}
	if s.Frames.Pending() != 0 {
		t.Fatalf("close should cancel the pending frame")
	}
	if topics := s.Scheduler.Events().Topics(); len(topics) != 0 {
		t.Fatalf("topics left after close: %v", topics)
	}
}
