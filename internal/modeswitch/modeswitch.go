// Package modeswitch toggles the page between its institutional and personal
// content sets with a guarded, delayed transition.
package modeswitch

import (
	"fmt"
	"strings"
	"time"

	"bemali/internal/schedule"
)

// SwitchDelay is how long the switching overlay stays up before the mode flips.
const SwitchDelay = 800 * time.Millisecond

// Mode is which content set is displayed.
type Mode int

const (
	Institutional Mode = iota
	Personal
)

func (m Mode) String() string {
	switch m {
	case Institutional:
		return "institutional"
	case Personal:
		return "personal"
	default:
		return "unknown"
	}
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Personal {
		return Institutional
	}
	return Personal
}

// Parse accepts "institutional" or "personal" (case-insensitive).
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "institutional", "":
		return Institutional, nil
	case "personal":
		return Personal, nil
	default:
		return Institutional, fmt.Errorf("unknown mode %q (want institutional or personal)", s)
	}
}

// Request describes a switch that has started.
type Request struct {
	Token  schedule.Token
	Target Mode
	// ScrollTop asks the view to scroll to the top before the delay elapses.
	ScrollTop bool
}

// Controller is Idle(mode) -> Switching -> Idle(other mode).
type Controller struct {
	mode      Mode
	target    Mode
	switching bool
	slot      schedule.Slot
}

// New returns an idle controller showing initial.
func New(initial Mode) *Controller {
	c := &Controller{mode: initial}
	c.slot.Name = "modeswitch"
	return c
}

// Mode returns the mode currently displayed.
func (c *Controller) Mode() Mode { return c.mode }

// Switching reports whether a switch is in flight.
func (c *Controller) Switching() bool { return c.switching }

// Slot exposes the timer handle for teardown registration.
func (c *Controller) Slot() *schedule.Slot { return &c.slot }

// Toggle starts a switch to the other mode. Requests made while a switch is in
// flight are dropped, not queued.
func (c *Controller) Toggle() (Request, bool) {
	if c.switching {
		return Request{}, false
	}
	c.switching = true
	c.target = c.mode.Other()
	return Request{
		Token:     c.slot.Arm(),
		Target:    c.target,
		ScrollTop: c.target == Institutional,
	}, true
}

// Complete flips the mode when tok is the pending switch.
func (c *Controller) Complete(tok schedule.Token) (Mode, bool) {
	if !c.slot.Fire(tok) {
		return c.mode, false
	}
	c.mode = c.target
	c.switching = false
	return c.mode, true
}

// Stop abandons a switch in flight; the current mode stays.
func (c *Controller) Stop() {
	c.slot.Cancel()
	c.switching = false
}
