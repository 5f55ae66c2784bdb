// Package ui renders the Bem Ali page with Bubble Tea.
//
// AppModel is the root model. It owns the carousel, mode switch and tagline
// controllers and drives their timers through tea.Tick; every timer message
// carries a schedule.Token so that ticks from a superseded or torn-down
// timer are ignored.
//
// Rendering is a function of the model: the Theme for the current mode is
// chosen by AppModel and passed to every renderer.
package ui
