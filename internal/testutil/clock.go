// Package testutil provides deterministic time sources for tests, the
// harness and the CLI.
package testutil

import (
	"sync"
	"time"
)

// Epoch is the default start instant of deterministic clocks:
// 2023-11-14T22:13:20Z, Unix second 1700000000.
var Epoch = time.Unix(1_700_000_000, 0).UTC()

// DeterministicClock yields instants from a fixed start, advancing by a
// fixed step after every Now call.
//
// Unlike the system clock, DeterministicClock can be reset for test reuse.
// The same scenario run twice sees identical instants.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewDeterministicClock creates a clock starting at Epoch, advancing one
// second per call.
//
// The first call to Now() returns Epoch.
func NewDeterministicClock() *DeterministicClock {
	return NewDeterministicClockAt(Epoch, time.Second)
}

// NewDeterministicClockAt creates a clock starting at start and advancing
// by step per call. A zero step makes the clock fixed.
func NewDeterministicClockAt(start time.Time, step time.Duration) *DeterministicClock {
	return &DeterministicClock{start: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.at(c.ticks)
	c.ticks++
	return t
}

// Current returns the instant the next Now call will return, without
// advancing.
func (c *DeterministicClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at(c.ticks)
}

// Ticks returns how many times Now has been called since the last reset.
func (c *DeterministicClock) Ticks() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Reset rewinds the clock to its start instant.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}

func (c *DeterministicClock) at(ticks int64) time.Time {
	return c.start.Add(time.Duration(ticks) * c.step)
}

// FixedClock always returns the same instant.
//
// Thread-safety: FixedClock is immutable and safe for concurrent use.
type FixedClock struct {
	t time.Time
}

// NewFixedClock creates a clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{t: t}
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.t
}
