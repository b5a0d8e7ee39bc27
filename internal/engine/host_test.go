package engine

import "testing"

func TestFrameQueueDefersRequestsToNextPaint(t *testing.T) {
	q := &FrameQueue{}
	calls := 0
	var again FrameFunc
	again = func() {
		calls++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	q.Paint()
	if calls != 1 {
		t.Fatalf("calls = %d after one paint, want 1", calls)
	}
	q.Paint()
	if calls != 2 {
		t.Fatalf("calls = %d after two paints, want 2", calls)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := &FrameQueue{}
	var ran []string
	a := q.RequestFrame(func() { ran = append(ran, "a") })
	var b FrameID
	q.RequestFrame(func() {
		ran = append(ran, "first")
		q.CancelFrame(b)
	})
	b = q.RequestFrame(func() { ran = append(ran, "b") })
	q.CancelFrame(a)
	q.CancelFrame(99)

	q.Paint()
	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("ran = %v, want [first]", ran)
	}
	if q.Pending() != 0 {
		t.Fatalf("pending = %d", q.Pending())
	}
}
