package ui

import (
	"github.com/charmbracelet/lipgloss"

	"bemali/internal/modeswitch"
)

// Palette is the set of colors of one mode.
type Palette struct {
	Ink       lipgloss.Color // headings, primary text
	Soft      lipgloss.Color // secondary text
	Faint     lipgloss.Color // hints, placeholders
	Surface   lipgloss.Color // tile background
	Border    lipgloss.Color
	Accent    lipgloss.Color // call-to-action tiles
	OnAccent  lipgloss.Color
	Emergency lipgloss.Color
}

var (
	institutionalPalette = Palette{
		Ink:       lipgloss.Color("#4a3f35"),
		Soft:      lipgloss.Color("#8c7e6f"),
		Faint:     lipgloss.Color("#b0a194"),
		Surface:   lipgloss.Color("#ede7e1"),
		Border:    lipgloss.Color("#d6ccc2"),
		Accent:    lipgloss.Color("#4a3f35"),
		OnAccent:  lipgloss.Color("#fdfcfb"),
		Emergency: lipgloss.Color("#c53030"),
	}
	personalPalette = Palette{
		Ink:       lipgloss.Color("#2f4a3a"),
		Soft:      lipgloss.Color("#6f8c7a"),
		Faint:     lipgloss.Color("#9db0a4"),
		Surface:   lipgloss.Color("#e3ede6"),
		Border:    lipgloss.Color("#c2d6c9"),
		Accent:    lipgloss.Color("#2f4a3a"),
		OnAccent:  lipgloss.Color("#f7fbf8"),
		Emergency: lipgloss.Color("#c53030"),
	}
)

// Theme is the set of styles the page is rendered with. It is chosen from the
// mode by the root model and passed down to every renderer.
type Theme struct {
	Mode    modeswitch.Mode
	Palette Palette

	Title     lipgloss.Style // brand name
	Handle    lipgloss.Style // uppercase subtitle
	Heading   lipgloss.Style // tile headings
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Tagline   lipgloss.Style
	Badge     lipgloss.Style
	Key       lipgloss.Style // key names in hints
	Tile      lipgloss.Style
	TileFocus lipgloss.Style
	CTA       lipgloss.Style // filled call-to-action tile
	Emergency lipgloss.Style
	Sheet     lipgloss.Style
	Selected  lipgloss.Style
	Blur      lipgloss.Style // carousel placeholder while transitioning
}

// ThemeFor builds the theme of mode.
func ThemeFor(mode modeswitch.Mode) Theme {
	p := institutionalPalette
	if mode == modeswitch.Personal {
		p = personalPalette
	}

	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Theme{
		Mode:    mode,
		Palette: p,

		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Ink),
		Handle:  lipgloss.NewStyle().Foreground(p.Soft),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(p.Ink),
		Text:    lipgloss.NewStyle().Foreground(p.Ink),
		Muted:   lipgloss.NewStyle().Foreground(p.Soft),
		Faint:   lipgloss.NewStyle().Foreground(p.Faint),
		Tagline: lipgloss.NewStyle().Italic(true).Foreground(p.Soft),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Ink).
			Background(p.Surface).
			Padding(0, 1),
		Key:       lipgloss.NewStyle().Bold(true).Foreground(p.Ink),
		Tile:      tile,
		TileFocus: tile.BorderForeground(p.Ink),
		CTA: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnAccent).
			Background(p.Accent).
			Padding(1, 2),
		Emergency: lipgloss.NewStyle().Bold(true).Foreground(p.Emergency),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Ink).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Ink),
		Blur:     lipgloss.NewStyle().Foreground(p.Border),
	}
}
