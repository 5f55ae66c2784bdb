// Package carousel rotates through a list of services, automatically and on request,
// without ever running two transitions at once.
//
// A transition has two phases: Advance marks the carousel as settling (the view hides
// the current item) and arms a settle timer; Settle moves the index and returns to idle.
// The auto-advance interval runs on its own slot and is not reset by manual advances.
package carousel

import (
	"time"

	"bemali/internal/schedule"
)

const (
	// DefaultInterval is the auto-advance period.
	DefaultInterval = 7 * time.Second
	// TransitionDelay is how long the exit/enter effect plays before the index moves.
	TransitionDelay = 500 * time.Millisecond
)

// Direction of a transition.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "unknown"
	}
}

// Phase of the transition timer.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSettling
)

// Controller is the carousel state. It is not safe for concurrent use; all calls
// come from the UI event loop.
type Controller struct {
	index   int
	n       int
	phase   Phase
	pending Direction

	settle schedule.Slot
	auto   schedule.Slot
}

// New returns an idle carousel over n items.
func New(n int) *Controller {
	c := &Controller{n: max(n, 0)}
	c.settle.Name = "carousel.settle"
	c.auto.Name = "carousel.auto"
	return c
}

// Index returns the active item.
func (c *Controller) Index() int { return c.index }

// Len returns the number of items.
func (c *Controller) Len() int { return c.n }

// Phase returns the current transition phase.
func (c *Controller) Phase() Phase { return c.phase }

// Transitioning reports whether a transition is in flight.
func (c *Controller) Transitioning() bool { return c.phase == PhaseSettling }

// Slots exposes the timer handles for teardown registration.
func (c *Controller) Slots() []*schedule.Slot {
	return []*schedule.Slot{&c.settle, &c.auto}
}

// Start arms the auto-advance timer.
func (c *Controller) Start() schedule.Token {
	return c.auto.Arm()
}

// AutoTick handles an auto-advance timer firing. A stale token does nothing.
// Otherwise the interval is re-armed (rearm) and, unless a transition is in
// flight or blocked is set (modal open, mode switching), a forward transition
// begins (settle, started == true).
func (c *Controller) AutoTick(tok schedule.Token, blocked bool) (rearm, settle schedule.Token, started bool) {
	if !c.auto.Fire(tok) {
		return 0, 0, false
	}
	rearm = c.auto.Arm()
	if blocked {
		return rearm, 0, false
	}
	settle, started = c.Advance(Next)
	return rearm, settle, started
}

// Advance begins a transition in dir. Requests made while a transition is in
// flight, or on an empty carousel, are ignored.
func (c *Controller) Advance(dir Direction) (schedule.Token, bool) {
	if c.phase == PhaseSettling || c.n == 0 {
		return 0, false
	}
	c.phase = PhaseSettling
	c.pending = dir
	return c.settle.Arm(), true
}

// Settle completes the transition armed with tok and moves the index.
func (c *Controller) Settle(tok schedule.Token) bool {
	if !c.settle.Fire(tok) {
		return false
	}
	c.index = step(c.index, c.n, c.pending)
	c.phase = PhaseIdle
	return true
}

// Reset points the carousel at a new list of n items, starting from 0.
// A transition in flight is abandoned.
func (c *Controller) Reset(n int) {
	c.settle.Cancel()
	c.n = max(n, 0)
	c.index = 0
	c.phase = PhaseIdle
}

// Stop cancels every pending timer.
func (c *Controller) Stop() {
	c.settle.Cancel()
	c.auto.Cancel()
	c.phase = PhaseIdle
}

func step(i, n int, dir Direction) int {
	if n == 0 {
		return 0
	}
	if dir == Prev {
		return (i - 1 + n) % n
	}
	return (i + 1) % n
}
