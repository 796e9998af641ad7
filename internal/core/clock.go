package core

import "time"

// FrameClock turns frame timestamps into elapsed time between frames.
type FrameClock struct {
	last time.Time
}

// Tick records now and returns the time since the previous tick.
// The first tick, and any tick that goes backwards, returns 0.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	prev := c.last
	c.last = now
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev)
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
