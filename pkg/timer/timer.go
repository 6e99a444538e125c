// Package timer provides a restartable, pausable delayed action used for
// hover intent on tooltips and submenus.
package timer

import "time"

// DefaultDelay is the delay remembered by a Timer after Cancel.
const DefaultDelay = time.Second

// Stopper cancels a scheduled callback. Stop reports whether the call
// prevented the callback from running.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. Implementations must run callbacks on the same
// event loop that delivers UI events.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func(d time.Duration, f func()) Stopper

// AfterFunc calls f(d, fn).
func (c ClockFunc) AfterFunc(d time.Duration, fn func()) Stopper { return c(d, fn) }

// System is a Clock backed by time.AfterFunc. Callbacks run on their own
// goroutine, so it is only suitable for hosts that serialize UI access.
var System Clock = ClockFunc(func(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
})

// Timer runs one deferred action at a time.
//
// Arming replaces whatever was scheduled before. While paused, newly armed
// actions are remembered but only start on Resume. A sticky timer stays paused
// across Cancel calls.
type Timer struct {
	clock  Clock
	sticky bool

	pending    Stopper
	generation uint64

	action  func()
	delay   time.Duration
	onPause func()
	paused  bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithSticky keeps the paused state across Cancel.
func WithSticky() Option {
	return func(t *Timer) { t.sticky = true }
}

// New returns an idle timer scheduling on clock. A nil clock uses System.
func New(clock Clock, opts ...Option) *Timer {
	if clock == nil {
		clock = System
	}
	t := &Timer{clock: clock, delay: DefaultDelay}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Arm schedules action to run after delay, replacing any pending action.
// onPause, when not nil, runs every time the timer is paused.
func (t *Timer) Arm(action func(), delay time.Duration, onPause func()) {
	t.action = action
	t.delay = delay
	t.onPause = onPause
	t.stop()
	if !t.paused {
		t.start()
	}
}

// Pause cancels the pending firing and marks the timer paused.
func (t *Timer) Pause() {
	t.paused = true
	t.stop()
	if t.onPause != nil {
		t.onPause()
	}
}

// Resume restarts the last armed action from zero if the timer was paused.
func (t *Timer) Resume() {
	if t.paused {
		t.paused = false
		t.start()
	}
}

// Cancel drops the pending firing and forgets the armed action.
func (t *Timer) Cancel() {
	t.stop()
	if !t.sticky {
		t.paused = false
	}
	t.action = nil
	t.delay = DefaultDelay
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool { return t.paused }

// Pending reports whether an action is scheduled to fire.
func (t *Timer) Pending() bool { return t.pending != nil }

// Delay returns the currently remembered delay.
func (t *Timer) Delay() time.Duration { return t.delay }

func (t *Timer) start() {
	if t.action == nil {
		return
	}
	t.generation++
	gen := t.generation
	action := t.action
	t.pending = t.clock.AfterFunc(t.delay, func() {
		// a superseded schedule may still fire if Stop lost the race
		if gen != t.generation {
			return
		}
		t.pending = nil
		action()
	})
}

func (t *Timer) stop() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
