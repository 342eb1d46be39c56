package provider

import (
	"sync/atomic"
	"time"
)

// Clock remembers the time of the last update. Pages read it instead of
// calling time.Now so tests can drive the displayed time.
type Clock struct {
	now atomic.Int64
	loc *time.Location
}

// NewClock returns a clock showing local time in loc (time.Local if nil).
func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

func (c *Clock) Update(now time.Time) {
	c.now.Store(now.UnixNano())
}

// Now is the time of the last update, zero before the first.
func (c *Clock) Now() time.Time {
	n := c.now.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).In(c.loc)
}

// UTC is Now in UTC.
func (c *Clock) UTC() time.Time {
	return c.Now().UTC()
}
