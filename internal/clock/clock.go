package clock

import (
	"sync/atomic"
	"time"
)

// Clock supplies the current time as unix epoch seconds
type Clock interface {
	Now() int64
}

// System reads the wall clock
type System struct{}

// Now returns the current unix time in seconds (UTC)
func (System) Now() int64 {
	return time.Now().UTC().Unix()
}

// Fixed is a settable clock for tests and replays
type Fixed struct {
	now atomic.Int64
}

// NewFixed creates a Fixed clock pinned at now
func NewFixed(now int64) *Fixed {
	c := &Fixed{}
	c.now.Store(now)
	return c
}

// Now returns the pinned time
func (c *Fixed) Now() int64 {
	return c.now.Load()
}

// Set moves the clock to now
func (c *Fixed) Set(now int64) {
	c.now.Store(now)
}

// Advance moves the clock forward by d seconds
func (c *Fixed) Advance(d int64) {
	c.now.Add(d)
}
