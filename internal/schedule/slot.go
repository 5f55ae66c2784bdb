// Package schedule provides cancellation handles for timers driven by the UI event loop.
//
// Bubble Tea timers (tea.Tick) cannot be stopped once scheduled. Instead each timer
// carries a Token, and the owner keeps the current Token in a Slot. When the timer
// message arrives, Fire accepts it only if its Token is still current, so cancelling
// a Slot (or re-arming it) turns the pending timer into a no-op.
package schedule

import "sync/atomic"

// Token identifies one scheduled timer. The zero Token is never issued.
type Token uint64

var lastToken atomic.Uint64

func nextToken() Token {
	return Token(lastToken.Add(1))
}

// Slot holds at most one live timer.
type Slot struct {
	Name    string
	current Token
}

// Arm issues a new Token, superseding any previously armed one.
func (s *Slot) Arm() Token {
	s.current = nextToken()
	return s.current
}

// Fire reports whether tok is the live timer of this slot and, if so, disarms it.
func (s *Slot) Fire(tok Token) bool {
	if tok == 0 || tok != s.current {
		return false
	}
	s.current = 0
	return true
}

// Cancel disarms the slot; the pending timer, if any, will be ignored.
func (s *Slot) Cancel() {
	s.current = 0
}

// Current returns the live Token, or zero when the slot is disarmed.
func (s *Slot) Current() Token {
	return s.current
}

// Armed reports whether a timer is pending.
func (s *Slot) Armed() bool {
	return s.current != 0
}

// Group collects slots so they can be cancelled together on teardown.
type Group struct {
	slots []*Slot
}

// Add registers slots with the group.
func (g *Group) Add(slots ...*Slot) {
	g.slots = append(g.slots, slots...)
}

// CancelAll disarms every registered slot.
func (g *Group) CancelAll() {
	for _, s := range g.slots {
		s.Cancel()
	}
}

// Armed returns the names of slots that still have a pending timer.
func (g *Group) Armed() []string {
	var names []string
	for _, s := range g.slots {
		if s.Armed() {
			names = append(names, s.Name)
		}
	}
	return names
}
