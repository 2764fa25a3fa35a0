package timing

import (
	"time"
)

// StepClock is a deterministic [Clock] which advances by a fixed step on
// every reading. A zero step yields a clock on which every phase measures as
// zero.
type StepClock struct {
	Current time.Time
	Step    time.Duration
}

// NewStepClock returns a pointer to a new [StepClock].
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{
		Current: time.Unix(0, 0),
		Step:    step,
	}
}

// Now returns the current time of the clock and advances it by one step.
func (c *StepClock) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)

	return now
}
