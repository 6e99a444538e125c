// Package timertest provides a manually advanced clock for tests.
package timertest

import (
	"sort"
	"time"

	"github.com/mchmarny/breve/pkg/timer"
)

// Clock is a fake timer.Clock. Scheduled callbacks only run from Advance.
type Clock struct {
	now     time.Duration
	seq     int
	entries []*entry
}

type entry struct {
	at      time.Duration
	seq     int
	f       func()
	stopped bool
}

func (e *entry) Stop() bool {
	if e.stopped {
		return false
	}
	e.stopped = true
	return true
}

var _ timer.Clock = (*Clock)(nil)

// New returns a clock at time zero.
func New() *Clock {
	return &Clock{}
}

// AfterFunc schedules f at now+d.
func (c *Clock) AfterFunc(d time.Duration, f func()) timer.Stopper {
	c.seq++
	e := &entry{at: c.now + d, seq: c.seq, f: f}
	c.entries = append(c.entries, e)
	return e
}

// Advance moves the clock forward by d, running due callbacks in order.
// Callbacks scheduled by other callbacks run too when they fall due.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.next(target)
		if next == nil {
			break
		}
		c.now = next.at
		next.stopped = true
		next.f()
	}
	c.now = target
}

// Pending returns the number of callbacks not yet run or stopped.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.entries {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Now returns the elapsed fake time.
func (c *Clock) Now() time.Duration { return c.now }

func (c *Clock) next(target time.Duration) *entry {
	live := c.entries[:0]
	for _, e := range c.entries {
		if !e.stopped {
			live = append(live, e)
		}
	}
	c.entries = live
	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].at == c.entries[j].at {
			return c.entries[i].seq < c.entries[j].seq
		}
		return c.entries[i].at < c.entries[j].at
	})
	if len(c.entries) == 0 || c.entries[0].at > target {
		return nil
	}
	return c.entries[0]
}
