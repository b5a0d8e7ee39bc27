package engine

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// FrameFunc runs on a paint opportunity.
type FrameFunc func()

// Host grants paint opportunities. The scheduler never sleeps; it only asks
// to be called back on the next opportunity.
type Host interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Host driven by whoever owns the real refresh cycle: the
// ebiten Game calls Paint from Update, the terminal model calls it on every
// frame message.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
	running []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// RequestFrame queues fn for the next Paint.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending request, including one queued in the Paint
// currently running. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Pending reports how many requests wait for the next Paint.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Paint is one paint opportunity. Requests made while it runs wait for the
// next one.
func (q *FrameQueue) Paint() {
	q.running = q.pending
	q.pending = nil
	defer func() { q.running = nil }()
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
		}
	}
}
