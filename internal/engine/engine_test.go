package engine

import (
	"math"
	"slices"
	"testing"
	"time"

	"lifeloop/internal/bus"
	"lifeloop/internal/core"
	"lifeloop/internal/logger"

	"github.com/benbjohnson/clock"
)

type countingStepper struct {
	ticks int
	log   *[]string
}

func (c *countingStepper) Name() string        { return "counting" }
func (c *countingStepper) Width() int          { return 1 }
func (c *countingStepper) Height() int         { return 1 }
func (c *countingStepper) ToggleCell(int, int) {}
func (c *countingStepper) Cells() []core.Cell  { return []core.Cell{core.Dead} }
func (c *countingStepper) Tick() {
	c.ticks++
	if c.log != nil {
		*c.log = append(*c.log, "tick")
	}
}

type harness struct {
	clock   *clock.Mock
	host    *FrameQueue
	stepper *countingStepper
	renders int
	events  []string
	sched   *Scheduler
}

func newHarness(t *testing.T, rate core.Rate) *harness {
	t.Helper()
	h := &harness{clock: clock.NewMock(), host: &FrameQueue{}}
	h.stepper = &countingStepper{log: &h.events}
	b := bus.New(logger.Discard())
	record := func(name string) *bus.Handler[bus.Empty] {
		return bus.Func(func(bus.Empty) { h.events = append(h.events, name) })
	}
	bus.Subscribe(b, bus.BeforeTick, record("beforeTick"))
	bus.Subscribe(b, bus.AfterTick, record("afterTick"))
	bus.Subscribe(b, bus.Paused, record("paused"))
	bus.Subscribe(b, bus.Resumed, record("resumed"))
	bus.Subscribe(b, bus.FPSUpdate, bus.Func(func(core.Rate) { h.events = append(h.events, "fpsUpdate") }))

	render := RendererFunc(func(core.Stepper) {
		h.renders++
		h.events = append(h.events, "render")
	})
	h.sched = New(h.host, h.stepper, render, b, WithRate(rate), WithClock(h.clock), WithLogger(logger.Discard()))
	h.events = nil
	return h
}

func (h *harness) paintAfter(d time.Duration) {
	h.clock.Add(d)
	h.host.Paint()
}

func (h *harness) count(name string) int {
	n := 0
	for _, e := range h.events {
		if e == name {
			n++
		}
	}
	return n
}

func TestNewStartsPausedAndRendersOnce(t *testing.T) {
	h := newHarness(t, 5)
	if !h.sched.IsPaused() {
		t.Fatal("scheduler should start paused")
	}
	if h.renders != 1 {
		t.Fatalf("renders = %d, want 1 initial render", h.renders)
	}
	if h.host.Pending() != 0 {
		t.Fatal("a paused scheduler must not hold a frame request")
	}
	if h.sched.Fps() != 5 {
		t.Fatalf("fps = %v, want 5", h.sched.Fps())
	}
}

func TestResumePublishesAndSchedules(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.Resume()
	if h.sched.IsPaused() {
		t.Fatal("scheduler should be running")
	}
	if !slices.Equal(h.events, []string{"resumed", "beforeTick"}) {
		t.Fatalf("events = %v", h.events)
	}
	if h.host.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", h.host.Pending())
	}

	h.sched.Resume()
	if h.count("resumed") != 1 || h.host.Pending() != 1 {
		t.Fatal("second Resume must be a no-op")
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.Resume()
	h.sched.Pause()
	h.sched.Pause()
	if h.count("paused") != 1 {
		t.Fatalf("paused published %d times, want 1", h.count("paused"))
	}
	if h.host.Pending() != 0 {
		t.Fatal("Pause must cancel the pending frame")
	}
	h.paintAfter(time.Second)
	if h.stepper.ticks != 0 {
		t.Fatalf("stepper ticked %d times while paused", h.stepper.ticks)
	}
}

func TestThrottleDelaysButDoesNotLoseTicks(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.Resume()

	h.paintAfter(50 * time.Millisecond)
	h.paintAfter(50 * time.Millisecond)
	h.paintAfter(50 * time.Millisecond)
	if h.stepper.ticks != 0 {
		t.Fatalf("ticked after 150ms at 5 fps: %d", h.stepper.ticks)
	}
	h.paintAfter(50 * time.Millisecond)
	if h.stepper.ticks != 1 {
		t.Fatalf("ticks after 200ms = %d, want 1", h.stepper.ticks)
	}
	if h.count("beforeTick") != 5 {
		t.Fatalf("beforeTick = %d, want one per attempt (5)", h.count("beforeTick"))
	}
	if h.count("afterTick") != 1 {
		t.Fatalf("afterTick = %d, want 1", h.count("afterTick"))
	}

	// The next period is measured from the committed tick, not the last attempt.
	h.paintAfter(199 * time.Millisecond)
	if h.stepper.ticks != 1 {
		t.Fatal("ticked before a full period elapsed")
	}
	h.paintAfter(time.Millisecond)
	if h.stepper.ticks != 2 {
		t.Fatalf("ticks = %d, want 2", h.stepper.ticks)
	}
}

func TestUnboundedRateTicksEveryPaint(t *testing.T) {
	h := newHarness(t, core.Unbounded)
	h.sched.Resume()
	if h.stepper.ticks != 1 {
		t.Fatalf("first attempt should tick at an unbounded rate, got %d", h.stepper.ticks)
	}
	for i := 0; i < 3; i++ {
		h.host.Paint()
	}
	if h.stepper.ticks != 4 {
		t.Fatalf("ticks = %d, want 4", h.stepper.ticks)
	}
	if h.host.Pending() != 1 {
		t.Fatalf("pending = %d, want exactly 1", h.host.Pending())
	}
}

func TestCommittedFrameOrdering(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.Resume()
	h.events = nil

	var pendingAtAfterTick int
	bus.Subscribe(h.sched.Events(), bus.AfterTick, bus.Func(func(bus.Empty) {
		pendingAtAfterTick = h.host.Pending()
	}))

	h.paintAfter(200 * time.Millisecond)
	if !slices.Equal(h.events, []string{"beforeTick", "tick", "render", "afterTick"}) {
		t.Fatalf("events = %v", h.events)
	}
	if pendingAtAfterTick != 1 {
		t.Fatal("next attempt should be scheduled before afterTick is published")
	}
}

func TestGoToNextFrameWhileRunning(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.Resume()
	h.events = nil

	h.sched.GoToNextFrame()
	if !h.sched.IsPaused() {
		t.Fatal("GoToNextFrame should pause")
	}
	if !slices.Equal(h.events, []string{"paused", "tick", "render"}) {
		t.Fatalf("events = %v", h.events)
	}
	if h.host.Pending() != 0 {
		t.Fatal("single step must not leave a frame request behind")
	}
	if h.sched.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", h.sched.Generation())
	}
}

func TestGoToNextFrameWhilePaused(t *testing.T) {
	h := newHarness(t, 5)
	h.sched.GoToNextFrame()
	h.sched.GoToNextFrame()
	if h.stepper.ticks != 2 || h.count("paused") != 0 || h.count("afterTick") != 0 {
		t.Fatalf("ticks=%d events=%v", h.stepper.ticks, h.events)
	}
}

func TestGoToNextFrameResetsClock(t *testing.T) {
	h := newHarness(t, 5)
	h.clock.Add(time.Second)
	h.sched.GoToNextFrame()
	h.sched.Resume()
	if h.stepper.ticks != 1 {
		t.Fatalf("resume right after a single step should wait a period, ticks = %d", h.stepper.ticks)
	}
	h.paintAfter(200 * time.Millisecond)
	if h.stepper.ticks != 2 {
		t.Fatalf("ticks = %d, want 2", h.stepper.ticks)
	}
}

func TestUpdateFpsPublishesRate(t *testing.T) {
	h := newHarness(t, 5)
	var got core.Rate
	bus.Subscribe(h.sched.Events(), bus.FPSUpdate, bus.Func(func(r core.Rate) { got = r }))

	h.sched.UpdateFps(core.Unbounded)
	if !got.IsUnbounded() || !h.sched.Fps().IsUnbounded() {
		t.Fatalf("payload = %v, fps = %v", got, h.sched.Fps())
	}
	if !h.sched.IsPaused() || h.count("resumed") != 0 {
		t.Fatal("UpdateFps must not change the pause state")
	}
}

func TestUpdateFpsIgnoresInvalidRates(t *testing.T) {
	h := newHarness(t, 5)
	for _, r := range []core.Rate{0, -5, core.Rate(math.NaN()), core.Rate(math.Inf(-1))} {
		h.sched.UpdateFps(r)
		if h.sched.Fps() != 5 {
			t.Fatalf("UpdateFps(%v) changed the rate to %v", float64(r), h.sched.Fps())
		}
	}
	if h.count("fpsUpdate") != 0 {
		t.Fatalf("invalid rates were published %d times", h.count("fpsUpdate"))
	}
}

func TestPauseFromAfterTickStopsLoop(t *testing.T) {
	h := newHarness(t, core.Unbounded)
	bus.Subscribe(h.sched.Events(), bus.AfterTick, bus.Func(func(bus.Empty) { h.sched.Pause() }))
	h.sched.Resume()
	if !h.sched.IsPaused() || h.host.Pending() != 0 {
		t.Fatalf("paused=%v pending=%d", h.sched.IsPaused(), h.host.Pending())
	}
	h.host.Paint()
	if h.stepper.ticks != 1 {
		t.Fatalf("ticks = %d, want 1", h.stepper.ticks)
	}
}

func TestPauseFromBeforeTickSkipsCommit(t *testing.T) {
	h := newHarness(t, core.Unbounded)
	h.sched.Resume()
	ticks := h.stepper.ticks
	bus.Subscribe(h.sched.Events(), bus.BeforeTick, bus.Func(func(bus.Empty) { h.sched.Pause() }))
	h.host.Paint()
	if h.stepper.ticks != ticks {
		t.Fatal("an attempt paused from beforeTick must not tick")
	}
	if h.host.Pending() != 0 {
		t.Fatal("no frame should be requested after pausing")
	}
}

func TestResumeInsideHandlerKeepsSinglePendingFrame(t *testing.T) {
	h := newHarness(t, core.Unbounded)
	bounce := true
	bus.Subscribe(h.sched.Events(), bus.AfterTick, bus.Func(func(bus.Empty) {
		if bounce {
			bounce = false
			h.sched.Pause()
			h.sched.Resume()
		}
	}))
	h.sched.Resume()
	if h.host.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", h.host.Pending())
	}
}
