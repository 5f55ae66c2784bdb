package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bemali/internal/carousel"
	"bemali/internal/metrics"
)

// handleKey routes a key press. While a mode switch is in flight only quitting
// is possible; while a sheet is open the sheet gets first refusal.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.Modes.Switching() {
		switch msg.String() {
		case "ctrl+c", "q":
			return func() tea.Msg { return QuitMsg{} }
		}
		return nil
	}

	if a.sheetOpen() {
		if a.handleSheetKey(msg) {
			return nil
		}
		if msg.String() == "ctrl+c" {
			return func() tea.Msg { return QuitMsg{} }
		}
		return nil
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	switch msg.String() {
	case "left", "h":
		return a.advance(carousel.Prev, metrics.SourceManual)
	case "right", "l":
		return a.advance(carousel.Next, metrics.SourceManual)
	case "tab":
		a.Focus.Next()
	case "shift+tab":
		a.Focus.Prev()
	case "j":
		if a.Focus.Is(SectionTeam) {
			a.moveTeamCursor(1)
		}
	case "k":
		if a.Focus.Is(SectionTeam) {
			a.moveTeamCursor(-1)
		}
	case "enter":
		a.openFocused()
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	case "home":
		a.viewport.GotoTop()
	}
	return nil
}

// handleSheetKey handles keys of the open sheet. Returns false for keys the
// sheet does not use.
func (a *AppModel) handleSheetKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q":
		a.closeSheets()
	case "j", "down":
		a.moveFAQCursor(1)
	case "k", "up":
		a.moveFAQCursor(-1)
	case "enter", " ":
		if svc, ok := a.ServiceSheet.Selection(); ok && svc.Detail != nil && len(svc.Detail.FAQ) > 0 {
			a.FAQ.Toggle(svc.Detail.FAQ[a.faqCursor].ID)
		}
	case "left", "h":
		a.stepService(-1)
	case "right", "l":
		a.stepService(1)
	default:
		return false
	}
	return true
}

// openFocused opens the sheet for the focused item: the visible carousel
// entry or the team member under the cursor.
func (a *AppModel) openFocused() {
	if a.Focus.Is(SectionTeam) {
		a.OpenMember(a.teamCursor)
		return
	}
	services := a.profile().Services
	if len(services) == 0 {
		return
	}
	a.OpenService(services[a.Carousel.Index()].ID)
}

// stepService replaces the open service sheet with its neighbour in the list.
// The carousel itself does not move.
func (a *AppModel) stepService(delta int) {
	cur, ok := a.ServiceSheet.Selection()
	if !ok {
		return
	}
	services := a.profile().Services
	for i, s := range services {
		if s.ID == cur.ID {
			n := len(services)
			a.OpenService(services[((i+delta)%n+n)%n].ID)
			return
		}
	}
}

func (a *AppModel) moveTeamCursor(delta int) {
	n := len(a.profile().Team)
	if n == 0 {
		return
	}
	a.teamCursor = min(max(a.teamCursor+delta, 0), n-1)
}

func (a *AppModel) moveFAQCursor(delta int) {
	svc, ok := a.ServiceSheet.Selection()
	if !ok || svc.Detail == nil || len(svc.Detail.FAQ) == 0 {
		return
	}
	a.faqCursor = min(max(a.faqCursor+delta, 0), len(svc.Detail.FAQ)-1)
}

// handleMouse turns a horizontal drag into a carousel step and closes an open
// sheet on a click outside of it.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Modes.Switching() {
		a.swipe.Abort()
		return nil
	}

	if a.sheetOpen() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !a.insideSheet(msg.X, msg.Y) {
			a.closeSheets()
		}
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.swipe.Press(msg.X)
	case msg.Action == tea.MouseActionRelease:
		if dir, ok := a.swipe.Release(msg.X); ok {
			return a.advance(dir, metrics.SourceSwipe)
		}
	}
	return nil
}

// insideSheet reports whether the cell (x, y) lies on the sheet panel, which
// is centred horizontally and anchored to the bottom of the screen.
func (a *AppModel) insideSheet(x, y int) bool {
	w, h := a.size()
	box := a.renderSheet(w)
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	left := max((w-bw)/2, 0)
	top := max(h-bh, 0)
	return x >= left && x < left+bw && y >= top && y < top+bh
}
