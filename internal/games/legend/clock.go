package legend

import "time"

// Clock converts wall time between frames into dt, the number of nominal
// frames that elapsed. The first tick after a reset is exactly one frame.
type Clock struct {
	now      func() time.Time
	frame    time.Duration
	maxDelta float64
	last     time.Time
	started  bool
}

// NewClock creates a clock targeting fps frames per second. now defaults to
// time.Now; maxDelta <= 0 disables clamping.
func NewClock(fps int, maxDelta float64, now func() time.Time) *Clock {
	if fps <= 0 {
		fps = 60
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, frame: time.Second / time.Duration(fps), maxDelta: maxDelta}
}

// Tick returns the dt of the frame that is starting.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 1
	}
	dt := float64(t.Sub(c.last)) / float64(c.frame)
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}

// Reset makes the next Tick a first frame again.
func (c *Clock) Reset() {
	c.started = false
}
