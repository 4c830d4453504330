package ecs

import "time"

// DefaultMaxFrame caps how much wall time one Advance may feed the clock.
const DefaultMaxFrame = 250 * time.Millisecond

// FixedClock converts variable frame times into whole simulation steps.
// Time is accumulated in integer nanoseconds so splitting the same total
// elapsed time into different frame sizes yields the same step count.
type FixedClock struct {
	step        time.Duration
	maxFrame    time.Duration
	accumulated time.Duration
	steps       uint64
}

// NewFixedClock returns a clock with the given step. A maxFrame of zero
// disables the catch-up cap.
func NewFixedClock(step, maxFrame time.Duration) *FixedClock {
	if step <= 0 {
		step = time.Second / 60
	}
	if maxFrame < 0 {
		maxFrame = 0
	}
	return &FixedClock{step: step, maxFrame: maxFrame}
}

// ClockForRate builds a clock ticking rate times per second.
func ClockForRate(rate float64, maxFrameSeconds float64) *FixedClock {
	step := time.Second / 60
	if rate > 0 {
		step = time.Duration(float64(time.Second) / rate)
	}
	return NewFixedClock(step, time.Duration(maxFrameSeconds*float64(time.Second)))
}

// Advance accumulates elapsed and returns how many whole steps are now due.
// Those steps are consumed; the remainder carries into Overstep. The step
// counter is not touched here: it moves as each step is actually run.
func (c *FixedClock) Advance(elapsed time.Duration) int {
	if c == nil || elapsed <= 0 {
		return 0
	}
	if c.maxFrame > 0 && elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.accumulated += elapsed
	n := int(c.accumulated / c.step)
	c.accumulated -= time.Duration(n) * c.step
	return n
}

// tick marks the start of one fixed step.
func (c *FixedClock) tick() {
	if c != nil {
		c.steps++
	}
}

// Overstep is the fraction of the next step already accumulated, in [0,1).
func (c *FixedClock) Overstep() float64 {
	if c == nil {
		return 0
	}
	return float64(c.accumulated) / float64(c.step)
}

func (c *FixedClock) Step() time.Duration {
	if c == nil {
		return 0
	}
	return c.step
}

// StepSeconds is the step length used by integration.
func (c *FixedClock) StepSeconds() float64 {
	if c == nil {
		return 0
	}
	return c.step.Seconds()
}

// Steps is the number of fixed steps started so far. Inside a fixed pass it
// is that pass's 1-based index, whatever the frame cadence.
func (c *FixedClock) Steps() uint64 {
	if c == nil {
		return 0
	}
	return c.steps
}
