package fps

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestNewRejectsEmptyWindow(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := New(n, clock.NewMock()); !errors.Is(err, ErrEmptyWindow) {
			t.Fatalf("New(%d) err = %v, want ErrEmptyWindow", n, err)
		}
	}
}

func TestTickBeforeInitialize(t *testing.T) {
	c, err := New(3, clock.NewMock())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Tick(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Tick err = %v, want ErrNotInitialized", err)
	}
}

func TestEvenlySpacedTicks(t *testing.T) {
	mock := clock.NewMock()
	c, err := New(3, mock)
	if err != nil {
		t.Fatal(err)
	}
	c.Initialize()

	var stats Stats
	for i := 0; i < 4; i++ {
		mock.Add(100 * time.Millisecond)
		stats, err = c.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if stats.Samples != 3 {
		t.Fatalf("samples = %d, want 3", stats.Samples)
	}
	for name, v := range map[string]float64{"last": stats.Last, "avg": stats.Avg, "min": stats.Min, "max": stats.Max} {
		if math.Abs(v-10) > 1e-9 {
			t.Fatalf("%s = %v, want 10", name, v)
		}
	}
}

func TestExtremaFollowEviction(t *testing.T) {
	mock := clock.NewMock()
	c, _ := New(3, mock)
	c.Initialize()

	intervals := []time.Duration{
		50 * time.Millisecond,  // 20 fps
		200 * time.Millisecond, // 5 fps
		100 * time.Millisecond, // 10 fps
		100 * time.Millisecond, // 10 fps, evicts 20
		100 * time.Millisecond, // 10 fps, evicts 5
	}
	want := []struct{ min, max float64 }{
		{20, 20},
		{5, 20},
		{5, 20},
		{5, 10},
		{10, 10},
	}
	for i, d := range intervals {
		mock.Add(d)
		stats, err := c.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if math.Abs(stats.Min-want[i].min) > 1e-9 || math.Abs(stats.Max-want[i].max) > 1e-9 {
			t.Fatalf("tick %d: min=%v max=%v, want min=%v max=%v", i, stats.Min, stats.Max, want[i].min, want[i].max)
		}
	}
}

func TestWindowInvariant(t *testing.T) {
	mock := clock.NewMock()
	c, _ := New(5, mock)
	c.Initialize()

	for i := 0; i < 40; i++ {
		mock.Add(time.Duration(5+(i*37)%90) * time.Millisecond)
		stats, err := c.Tick()
		if err != nil {
			t.Fatal(err)
		}
		window := c.Window()
		if len(window) > c.MaxSamples() || len(window) != stats.Samples {
			t.Fatalf("tick %d: window len %d, samples %d, max %d", i, len(window), stats.Samples, c.MaxSamples())
		}
		sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
		for _, v := range window {
			sum += v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if math.Abs(sum-c.Sum()) > 1e-6 {
			t.Fatalf("tick %d: running sum %v, window sum %v", i, c.Sum(), sum)
		}
		if stats.Min != lo || stats.Max != hi {
			t.Fatalf("tick %d: min/max %v/%v, window %v/%v", i, stats.Min, stats.Max, lo, hi)
		}
		if math.Abs(stats.Avg-sum/float64(len(window))) > 1e-6 {
			t.Fatalf("tick %d: avg %v", i, stats.Avg)
		}
	}
}

func TestZeroIntervalDoesNotPoisonSum(t *testing.T) {
	mock := clock.NewMock()
	c, _ := New(2, mock)
	c.Initialize()

	stats, _ := c.Tick()
	if !math.IsInf(stats.Last, 1) {
		t.Fatalf("zero interval rate = %v, want +Inf", stats.Last)
	}
	mock.Add(100 * time.Millisecond)
	c.Tick()
	mock.Add(100 * time.Millisecond)
	stats, _ = c.Tick()
	if math.IsNaN(stats.Avg) || math.Abs(stats.Avg-10) > 1e-9 {
		t.Fatalf("avg after evicting +Inf = %v, want 10", stats.Avg)
	}
}
