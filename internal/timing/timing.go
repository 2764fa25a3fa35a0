// Package timing provides the phase measurement used by all diagnostic
// programs. Every phase is bracketed by two readings of a monotonic clock and
// its duration is the difference of both readings.
package timing

import (
	"time"
)

// Clock is a source of monotonic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating system clock. Timestamps returned by
// [time.Now] carry a monotonic reading, which [time.Time.Sub] prefers.
type SystemClock struct{}

// Now wraps around [time.Now].
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Stopwatch measures the time elapsed since it was started.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// Start returns a new [Stopwatch] started at the current time of the clock.
func Start(clock Clock) Stopwatch {
	return Stopwatch{
		clock: clock,
		start: clock.Now(),
	}
}

// Elapsed returns the time elapsed since the [Stopwatch] was started. It is
// never negative.
func (s Stopwatch) Elapsed() time.Duration {
	return max(s.clock.Now().Sub(s.start), 0)
}

// Sample is the set of measured durations of one operation sequence. Total
// is measured across the entire sequence on its own, it is not the sum of the
// other phases.
type Sample struct {
	Open      time.Duration
	Operation time.Duration
	Close     time.Duration
	Total     time.Duration
}

// Add returns the phase-wise sum of both samples.
func (s Sample) Add(o Sample) Sample {
	return Sample{
		Open:      s.Open + o.Open,
		Operation: s.Operation + o.Operation,
		Close:     s.Close + o.Close,
		Total:     s.Total + o.Total,
	}
}

// Div returns the phase-wise quotient of the sample, as used for averages.
// A non-positive divisor returns a zero [Sample].
func (s Sample) Div(n int) Sample {
	if n <= 0 {
		return Sample{}
	}

	d := time.Duration(n)

	return Sample{
		Open:      s.Open / d,
		Operation: s.Operation / d,
		Close:     s.Close / d,
		Total:     s.Total / d,
	}
}

// Milliseconds returns the duration as fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
