package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bemali/internal/carousel"
	"bemali/internal/modeswitch"
	"bemali/internal/schedule"
	"bemali/internal/tagline"
)

// autoAdvanceCmd schedules the next auto-advance tick.
func autoAdvanceCmd(interval time.Duration, tok schedule.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoAdvanceMsg{token: tok}
	})
}

// settleCmd schedules the end of a carousel transition.
func settleCmd(tok schedule.Token) tea.Cmd {
	return tea.Tick(carousel.TransitionDelay, func(time.Time) tea.Msg {
		return settleMsg{token: tok}
	})
}

// switchDoneCmd schedules the end of a mode switch.
func switchDoneCmd(tok schedule.Token) tea.Cmd {
	return tea.Tick(modeswitch.SwitchDelay, func(time.Time) tea.Msg {
		return switchDoneMsg{token: tok}
	})
}

// fetchTaglineCmd runs one tagline request off the event loop.
// Fetch touches only the fetcher's immutable options.
func fetchTaglineCmd(f *tagline.Fetcher, req tagline.Request) tea.Cmd {
	return func() tea.Msg {
		return taglineMsg{result: f.Fetch(req)}
	}
}
