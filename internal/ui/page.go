package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bemali/internal/carousel"
	"bemali/internal/content"
	"bemali/internal/modeswitch"
	"bemali/internal/ui/textutil"
)

// maxInsurers is how many insurers the strip lists before "...".
const maxInsurers = 3

var platformIcons = map[string]string{
	"instagram": "◎",
	"whatsapp":  "✆",
	"website":   "◍",
	"youtube":   "▶",
	"pinterest": "✚",
}

func platformIcon(platform string) string {
	if icon, ok := platformIcons[platform]; ok {
		return icon
	}
	return "•"
}

// view renders the whole screen for the current state.
func (a *AppModel) view() string {
	if a.closed {
		return ""
	}
	w, h := a.size()
	if a.Modes.Switching() {
		return a.renderSwitching(w, h)
	}
	if a.sheetOpen() {
		return a.renderSheetScreen(w, h)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(w),
		a.viewport.View(),
		a.renderFooter(w),
	)
}

// renderHeader draws the avatar, name, handle, location badge and tagline.
func (a *AppModel) renderHeader(w int) string {
	t := a.Theme
	brand := a.profile().Brand

	avatar := t.Badge.Render(textutil.Initials(brand.Name))
	ident := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(brand.Name),
		t.Handle.Render(strings.ToUpper(brand.Handle)),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Center, avatar, " ", ident)

	right := ""
	if brand.Location.Venue != "" {
		right = lipgloss.JoinVertical(lipgloss.Right,
			t.Badge.Render(brand.Location.Venue),
			t.Faint.Render(brand.Location.Area),
		)
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	var top string
	if gap < 1 || right == "" {
		top = left
	} else {
		top = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, a.renderTagline(w), "")
}

// renderTagline shows a pulsing placeholder while loading, the tagline otherwise.
func (a *AppModel) renderTagline(w int) string {
	t := a.Theme
	var line string
	switch {
	case a.Tagline.Loading():
		line = t.Faint.Render(a.spinner.View() + " " + strings.Repeat("▂", min(24, max(w-8, 1))))
	case a.Tagline.Text() != "":
		line = t.Tagline.Render("“" + textutil.Truncate(a.Tagline.Text(), max(w-4, 1)) + "”")
	default:
		line = t.Tagline.Render("“" + a.profile().FallbackTagline + "”")
	}
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, line)
}

// renderBody draws the scrollable part of the page.
func (a *AppModel) renderBody(w int) string {
	p := a.profile()
	inner := max(w-2, 10)

	sections := []string{a.renderCarousel(p, inner)}
	if contacts := a.renderContacts(p, inner); contacts != "" {
		sections = append(sections, contacts)
	}
	if stats := a.renderStats(p); stats != "" {
		sections = append(sections, stats)
	}
	if len(p.Team) > 0 {
		sections = append(sections, a.renderTeam(p, inner))
	}
	if strip := a.renderInsurers(p); strip != "" {
		sections = append(sections, strip)
	}
	if strip := a.renderEmergencies(p); strip != "" {
		sections = append(sections, strip)
	}
	if p.Brand.Bio != "" {
		sections = append(sections, a.Theme.Muted.Render(strings.Join(textutil.Wrap(p.Brand.Bio, inner), "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCarousel draws the visible service tile. While a transition is
// settling the tile content is replaced by a blurred placeholder.
func (a *AppModel) renderCarousel(p *content.Profile, w int) string {
	t := a.Theme
	style := t.Tile
	if a.Focus.Is(SectionCarousel) {
		style = t.TileFocus
	}
	contentWidth := max(w-style.GetHorizontalFrameSize(), 8)

	if a.Carousel.Len() == 0 {
		return style.Width(w - style.GetHorizontalBorderSize()).Render(t.Faint.Render("Nenhum serviço cadastrado."))
	}

	svc := p.Services[a.Carousel.Index()]
	heading := t.Heading.Render("Serviços") + t.Faint.Render(fmt.Sprintf("  %d/%d", a.Carousel.Index()+1, a.Carousel.Len()))

	title := textutil.Truncate(svc.Title, contentWidth)
	desc := textutil.Wrap(svc.Description, contentWidth)
	var titleLine, descBlock string
	if a.Carousel.Phase() == carousel.PhaseSettling {
		for i, line := range desc {
			desc[i] = strings.Repeat("░", textutil.VisualWidth(line))
		}
		titleLine = t.Blur.Render(strings.Repeat("░", textutil.VisualWidth(title)))
		descBlock = t.Blur.Render(strings.Join(desc, "\n"))
	} else {
		titleLine = t.Title.Render(title)
		descBlock = t.Text.Render(strings.Join(desc, "\n"))
	}

	body := []string{
		heading, "",
		titleLine, descBlock, "",
		a.renderDots(),
		t.Faint.Render("←/→ navegar · enter detalhes"),
	}
	return style.Width(w - style.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// renderDots draws one dot per service, the visible one filled.
func (a *AppModel) renderDots() string {
	dots := make([]string, a.Carousel.Len())
	for i := range dots {
		if i == a.Carousel.Index() {
			dots[i] = a.Theme.Selected.Render("●")
		} else {
			dots[i] = a.Theme.Faint.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderContacts draws the call-to-action tiles. Featured links are filled.
func (a *AppModel) renderContacts(p *content.Profile, w int) string {
	t := a.Theme
	var rows []string
	for _, c := range p.Brand.Contacts {
		lines := []string{c.Title}
		if c.Description != "" {
			lines = append(lines, c.Description)
		}
		lines = append(lines, c.URL)
		text := strings.Join(lines, "\n")
		if c.Featured {
			rows = append(rows, t.CTA.Width(w).Render(text))
			continue
		}
		rows = append(rows, t.Tile.Width(w-t.Tile.GetHorizontalBorderSize()).Render(
			t.Heading.Render(c.Title)+"\n"+t.Muted.Render(strings.Join(lines[1:], "\n")),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStats draws the headline numbers side by side.
func (a *AppModel) renderStats(p *content.Profile) string {
	if len(p.Stats) == 0 {
		return ""
	}
	t := a.Theme
	cells := make([]string, 0, len(p.Stats))
	for _, s := range p.Stats {
		cells = append(cells, t.Tile.Render(lipgloss.JoinVertical(lipgloss.Center,
			t.Title.Render(s.Value),
			t.Faint.Render(strings.ToUpper(s.Label)),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderTeam draws the team list with the cursor when the section has focus.
func (a *AppModel) renderTeam(p *content.Profile, w int) string {
	t := a.Theme
	style := t.Tile
	focused := a.Focus.Is(SectionTeam)
	if focused {
		style = t.TileFocus
	}
	contentWidth := max(w-style.GetHorizontalFrameSize(), 8)

	heading := "Equipe Técnica"
	if a.Modes.Mode() == modeswitch.Personal {
		heading = "Sobre mim"
	}
	lines := []string{t.Heading.Render(heading), ""}
	for i, m := range p.Team {
		marker := "  "
		name := t.Text.Render(m.Name)
		if focused && i == a.teamCursor {
			marker = t.Selected.Render("▸ ")
			name = t.Selected.Render(m.Name)
		}
		meta := m.Role
		if m.CRP != "" {
			meta += " · CRP " + m.CRP
		}
		lines = append(lines, marker+name, "  "+t.Muted.Render(textutil.Truncate(meta, contentWidth-2)))
	}
	if focused {
		lines = append(lines, "", t.Faint.Render("j/k escolher · enter perfil"))
	}
	return style.Width(w - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// renderInsurers lists the first insurers, eliding the rest.
func (a *AppModel) renderInsurers(p *content.Profile) string {
	if len(p.Insurers) == 0 {
		return ""
	}
	shown := p.Insurers
	more := ""
	if len(shown) > maxInsurers {
		shown = shown[:maxInsurers]
		more = " ..."
	}
	return a.Theme.Heading.Render("Convênios: ") + a.Theme.Muted.Render(strings.Join(shown, " • ")+more)
}

func (a *AppModel) renderEmergencies(p *content.Profile) string {
	if len(p.Emergencies) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.Emergencies))
	for _, e := range p.Emergencies {
		parts = append(parts, e.Label+" "+e.Number)
	}
	return a.Theme.Emergency.Render("Emergência: " + strings.Join(parts, "   "))
}

// renderFooter draws the social links, the mode toggle hint and, while a
// leader sequence is pending, the key help.
func (a *AppModel) renderFooter(w int) string {
	t := a.Theme
	brand := a.profile().Brand

	socials := make([]string, 0, len(brand.Socials))
	for _, s := range brand.Socials {
		socials = append(socials, platformIcon(s.Platform)+" "+s.URL)
	}
	lines := []string{""}
	if len(socials) > 0 {
		lines = append(lines, t.Muted.Render(textutil.Truncate(strings.Join(socials, "  "), w)))
	}

	if help := RenderKeybindHelp(a.KeyHandler, t); help != "" {
		lines = append(lines, help)
		return strings.Join(lines, "\n")
	}

	target := "perfil pessoal"
	if a.Modes.Mode() == modeswitch.Personal {
		target = "perfil institucional"
	}
	hints := t.Key.Render("m") + t.Faint.Render(" "+target+"  ") +
		t.Key.Render("tab") + t.Faint.Render(" seção  ") +
		t.Key.Render("r") + t.Faint.Render(" nova frase  ") +
		t.Key.Render("SPC") + t.Faint.Render(" atalhos  ") +
		t.Key.Render("q") + t.Faint.Render(" sair")
	lines = append(lines, hints)
	return strings.Join(lines, "\n")
}

// renderSwitching is the full-screen loading overlay shown during a mode switch.
func (a *AppModel) renderSwitching(w, h int) string {
	target := a.Modes.Mode().Other()
	t := ThemeFor(target)
	label := "Carregando perfil pessoal"
	if target == modeswitch.Institutional {
		label = "Carregando perfil institucional"
	}
	msg := lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(label),
		t.Muted.Render(a.spinner.View()),
	)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}
