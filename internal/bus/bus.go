// Package bus is the in-process event bus between the frame scheduler and
// the widgets observing it.
//
// The set of topics is closed: BeforeTick, AfterTick, Paused, Resumed and
// FPSUpdate. Each topic fixes its payload type at compile time, while
// handlers can still come and go at runtime. Delivery is synchronous and in
// subscription order. The bus is not safe for concurrent use; everything runs
// on the host's frame goroutine.
package bus

import (
	"fmt"
	"slices"
	"sort"

	"lifeloop/internal/core"

	"github.com/sirupsen/logrus"
)

// Empty is the payload of topics that carry no data.
type Empty struct{}

// Topic names a channel whose payload type is P.
type Topic[P any] struct {
	name string
}

func (t Topic[P]) String() string { return t.name }

var (
	// BeforeTick is published at the start of every loop attempt.
	BeforeTick = Topic[Empty]{name: "beforeTick"}
	// AfterTick is published after a committed tick and render.
	AfterTick = Topic[Empty]{name: "afterTick"}
	// Paused is published when the loop stops.
	Paused = Topic[Empty]{name: "paused"}
	// Resumed is published when the loop starts.
	Resumed = Topic[Empty]{name: "resumed"}
	// FPSUpdate carries the new target rate.
	FPSUpdate = Topic[core.Rate]{name: "fpsUpdate"}
)

// Handler wraps a callback. Its pointer is its identity for Unsubscribe.
type Handler[P any] struct {
	fn func(P) error
}

// NewHandler wraps fn. A non-nil error is logged by Publish.
func NewHandler[P any](fn func(P) error) *Handler[P] {
	return &Handler[P]{fn: fn}
}

// Func wraps a callback that cannot fail.
func Func[P any](fn func(P)) *Handler[P] {
	return &Handler[P]{fn: func(p P) error {
		fn(p)
		return nil
	}}
}

// Bus maps topic names to their ordered handler lists. A topic without
// handlers has no entry.
type Bus struct {
	log       *logrus.Entry
	listeners map[string][]any
}

// New creates an empty bus logging to log.
func New(log *logrus.Entry) *Bus {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Bus{log: log, listeners: map[string][]any{}}
}

// Subscribe appends h to topic. Subscribing the same handler twice registers
// it twice. Zero-value topics are refused.
func Subscribe[P any](b *Bus, topic Topic[P], h *Handler[P]) {
	if h == nil {
		return
	}
	if topic.name == "" {
		b.log.Warn("refusing to subscribe to an unnamed topic")
		return
	}
	b.listeners[topic.name] = append(b.listeners[topic.name], h)
}

// Unsubscribe removes every registration of h from topic. Removing a handler
// that is not registered only logs a warning.
func Unsubscribe[P any](b *Bus, topic Topic[P], h *Handler[P]) {
	current, ok := b.listeners[topic.name]
	if !ok {
		b.log.WithField("topic", topic.name).Warn("no listeners currently registered")
		return
	}
	kept := slices.DeleteFunc(slices.Clone(current), func(l any) bool {
		return l == any(h)
	})
	if len(kept) == len(current) {
		b.log.WithField("topic", topic.name).Warn("listener not found")
		return
	}
	if len(kept) == 0 {
		delete(b.listeners, topic.name)
		return
	}
	b.listeners[topic.name] = kept
}

// Publish calls every handler registered on topic when Publish starts, in
// subscription order. Handlers added or removed during delivery do not
// change it. A failing or panicking handler is logged and skipped.
func Publish[P any](b *Bus, topic Topic[P], payload P) {
	current, ok := b.listeners[topic.name]
	if !ok || topic.name == "" {
		return
	}
	for _, l := range slices.Clone(current) {
		if h, ok := l.(*Handler[P]); ok {
			deliver(b, topic, h, payload)
		}
	}
}

func deliver[P any](b *Bus, topic Topic[P], h *Handler[P], payload P) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithField("topic", topic.name).WithError(fmt.Errorf("panic: %v", r)).Error("event listener failed")
		}
	}()
	if err := h.fn(payload); err != nil {
		b.log.WithField("topic", topic.name).WithError(err).Error("event listener failed")
	}
}

// Count returns the number of registrations on topic.
func Count[P any](b *Bus, topic Topic[P]) int {
	return len(b.listeners[topic.name])
}

// Topics lists the names of topics that currently have handlers.
func (b *Bus) Topics() []string {
	names := make([]string, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
