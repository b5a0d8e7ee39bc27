package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Rate is a target frequency in ticks per second. Unbounded means the loop
// runs on every paint opportunity the host grants.
type Rate float64

// Unbounded is the "no cap" rate.
var Unbounded = Rate(math.Inf(1))

// ErrInvalidRate is returned when a rate cannot be parsed or is not positive.
var ErrInvalidRate = errors.New("core: rate must be a positive number or \"max\"")

// IsUnbounded reports whether r places no cap on the tick frequency.
func (r Rate) IsUnbounded() bool { return math.IsInf(float64(r), 1) }

// Period returns the minimum spacing between two committed ticks. An
// unbounded rate has a zero period.
func (r Rate) Period() time.Duration {
	if r.IsUnbounded() || r <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(r))
}

// Due reports whether enough time has elapsed since the last committed tick.
// A zero rate is never due.
func (r Rate) Due(elapsed time.Duration) bool {
	ms := float64(elapsed) / float64(time.Millisecond)
	return !(ms < 1000/float64(r))
}

// String renders the rate the way the FPS readout shows it.
func (r Rate) String() string {
	if r.IsUnbounded() {
		return "Maximum"
	}
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// Set implements flag.Value. It accepts a positive number or "max".
func (r *Rate) Set(s string) error {
	parsed, err := ParseRate(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRate parses a positive number, or one of "max", "maximum", "inf" for
// an unbounded rate.
func ParseRate(s string) (Rate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximum", "inf", "+inf":
		return Unbounded, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v <= 0 {
		return 0, ErrInvalidRate
	}
	return Rate(v), nil
}
