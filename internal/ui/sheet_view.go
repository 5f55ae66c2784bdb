package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bemali/internal/content"
	"bemali/internal/ui/textutil"
)

// maxSheetWidth caps the sheet panel on wide terminals.
const maxSheetWidth = 72

// renderSheetScreen anchors the open sheet to the bottom of the screen over a
// dotted backdrop.
func (a *AppModel) renderSheetScreen(w, h int) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Bottom, a.renderSheet(w),
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(a.Theme.Palette.Border),
	)
}

// renderSheet renders whichever sheet is open, or "" when none is.
func (a *AppModel) renderSheet(w int) string {
	width := min(w, maxSheetWidth)
	inner := max(width-a.Theme.Sheet.GetHorizontalFrameSize(), 10)

	var body string
	if svc, ok := a.ServiceSheet.Selection(); ok {
		body = a.renderServiceSheet(svc, inner)
	} else if m, ok := a.TeamSheet.Selection(); ok {
		body = a.renderTeamSheet(m, inner)
	} else {
		return ""
	}
	return a.Theme.Sheet.Width(width - a.Theme.Sheet.GetHorizontalBorderSize()).Render(body)
}

func (a *AppModel) renderServiceSheet(svc content.ServiceEntry, w int) string {
	t := a.Theme
	lines := []string{
		t.Title.Render(svc.Title),
		t.Muted.Render(strings.Join(textutil.Wrap(svc.Description, w), "\n")),
		"",
	}

	if !svc.HasDetail() {
		lines = append(lines, t.Faint.Render("Mais detalhes em breve."))
		lines = append(lines, "", t.Faint.Render("esc fechar · ←/→ outro serviço"))
		return strings.Join(lines, "\n")
	}

	d := svc.Detail
	if d.HowItWorks != "" {
		lines = append(lines, t.Heading.Render("Como funciona"))
		lines = append(lines, textutil.Wrap(d.HowItWorks, w)...)
		lines = append(lines, "")
	}
	if len(d.Steps) > 0 {
		lines = append(lines, t.Heading.Render("Etapas"))
		for i, step := range d.Steps {
			lines = append(lines, fmt.Sprintf("%s %s", t.Key.Render(fmt.Sprintf("%d.", i+1)), textutil.Truncate(step, w-3)))
		}
		lines = append(lines, "")
	}
	if len(d.Testimonials) > 0 {
		lines = append(lines, t.Heading.Render("Depoimentos"))
		for _, q := range d.Testimonials {
			lines = append(lines, t.Tagline.Render(strings.Join(textutil.Wrap("“"+q.Quote+"”", w), "\n")))
			lines = append(lines, t.Faint.Render("  "+q.Author))
		}
		lines = append(lines, "")
	}
	if len(d.FAQ) > 0 {
		lines = append(lines, t.Heading.Render("Perguntas frequentes"))
		for i, item := range d.FAQ {
			marker := "▸"
			if a.FAQ.IsOpen(item.ID) {
				marker = "▾"
			}
			q := marker + " " + textutil.Truncate(item.Question, w-2)
			if i == a.faqCursor {
				lines = append(lines, t.Selected.Render(q))
			} else {
				lines = append(lines, t.Text.Render(q))
			}
			if a.FAQ.IsOpen(item.ID) {
				for _, l := range textutil.Wrap(item.Answer, w-2) {
					lines = append(lines, "  "+t.Muted.Render(l))
				}
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, t.Faint.Render("esc fechar · ←/→ outro serviço · j/k · enter expandir"))
	return strings.Join(lines, "\n")
}

func (a *AppModel) renderTeamSheet(m content.TeamMember, w int) string {
	t := a.Theme
	header := m.Role
	if m.CRP != "" {
		header += " · CRP " + m.CRP
	}
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, t.Badge.Render(textutil.Initials(m.Name)), " ", t.Title.Render(m.Name)),
		t.Muted.Render(header),
		"",
	}

	if !m.HasDetail() {
		lines = append(lines, t.Faint.Render("Perfil completo em breve."))
	} else {
		d := m.Detail
		if d.Bio != "" {
			lines = append(lines, textutil.Wrap(d.Bio, w)...)
			lines = append(lines, "")
		}
		if len(d.Specialties) > 0 {
			lines = append(lines, t.Heading.Render("Especialidades"))
			lines = append(lines, textutil.Wrap(strings.Join(d.Specialties, " · "), w)...)
			lines = append(lines, "")
		}
		if d.Approach != "" {
			lines = append(lines, t.Heading.Render("Abordagem"))
			lines = append(lines, textutil.Wrap(d.Approach, w)...)
		}
	}

	lines = append(lines, "", t.Faint.Render("esc fechar"))
	return strings.Join(lines, "\n")
}
