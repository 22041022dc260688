package hal

import (
	"sync"
	"time"
)

// monoClock reads wall time through the monotonic component of time.Time.
type monoClock struct {
	start time.Time
}

func newMonoClock() *monoClock { return &monoClock{start: time.Now()} }

func (c *monoClock) Seconds() float64 { return time.Since(c.start).Seconds() }

// stepClock only moves when the runner advances it, one fixed tick at a time.
type stepClock struct {
	mu   sync.Mutex
	tick time.Duration
	now  time.Duration
}

func newStepClock(hz int) *stepClock {
	return &stepClock{tick: time.Second / time.Duration(hz)}
}

func (c *stepClock) Seconds() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Seconds()
}

func (c *stepClock) step(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += time.Duration(n) * c.tick
}
