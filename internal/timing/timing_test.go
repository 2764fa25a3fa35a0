package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch_Elapsed_StepClock(t *testing.T) {
	t.Parallel()

	clock := NewStepClock(time.Millisecond)

	sw := Start(clock)
	assert.Equal(t, time.Millisecond, sw.Elapsed())
	assert.Equal(t, 2*time.Millisecond, sw.Elapsed())
}

func TestStopwatch_Elapsed_ZeroStep(t *testing.T) {
	t.Parallel()

	sw := Start(NewStepClock(0))
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestStopwatch_Elapsed_NeverNegative(t *testing.T) {
	t.Parallel()

	sw := Start(NewStepClock(-time.Second))
	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestStopwatch_Elapsed_SystemClock(t *testing.T) {
	t.Parallel()

	sw := Start(SystemClock{})
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, sw.Elapsed(), time.Millisecond)
}

func TestSample_AddDiv(t *testing.T) {
	t.Parallel()

	a := Sample{Open: 1 * time.Millisecond, Operation: 2 * time.Millisecond, Close: 3 * time.Millisecond, Total: 7 * time.Millisecond}
	b := Sample{Open: 3 * time.Millisecond, Operation: 4 * time.Millisecond, Close: 5 * time.Millisecond, Total: 13 * time.Millisecond}

	sum := a.Add(b)
	assert.Equal(t, Sample{Open: 4 * time.Millisecond, Operation: 6 * time.Millisecond, Close: 8 * time.Millisecond, Total: 20 * time.Millisecond}, sum)
	assert.Equal(t, Sample{Open: 2 * time.Millisecond, Operation: 3 * time.Millisecond, Close: 4 * time.Millisecond, Total: 10 * time.Millisecond}, sum.Div(2))
	assert.Equal(t, Sample{}, sum.Div(0))
}

func TestMilliseconds(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.5, Milliseconds(1500*time.Microsecond), 1e-9)
	assert.InDelta(t, 0.001, Milliseconds(time.Microsecond), 1e-12)
	assert.Zero(t, Milliseconds(0))
}
