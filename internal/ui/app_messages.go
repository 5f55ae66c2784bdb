package ui

import (
	"bemali/internal/schedule"
	"bemali/internal/tagline"
)

// ToggleModeMsg requests a switch between the institutional and personal pages (m, SPC p, SPC i).
type ToggleModeMsg struct{}

// RefreshTaglineMsg re-requests the welcome tagline for the current mode (r).
type RefreshTaglineMsg struct{}

// FocusSectionMsg moves focus to a page section (SPC g c, SPC g t).
type FocusSectionMsg struct {
	Section string
}

// QuitMsg tears the page down and exits (q, ctrl+c).
type QuitMsg struct{}

// autoAdvanceMsg is the carousel auto-advance interval firing.
type autoAdvanceMsg struct {
	token schedule.Token
}

// settleMsg ends a carousel transition.
type settleMsg struct {
	token schedule.Token
}

// switchDoneMsg ends a mode switch.
type switchDoneMsg struct {
	token schedule.Token
}

// taglineMsg carries the outcome of a tagline request.
type taglineMsg struct {
	result tagline.Result
}
