package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
func RenderKeybindHelp(keyHandler *KeyHandler, theme Theme) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = theme.Key
	helpModel.Styles.ShortDesc = theme.Muted
	helpModel.Styles.ShortSeparator = theme.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Palette.Border).
		Padding(0, 1)

	prefix := strings.Join(keyHandler.Buffer, " ")
	return boxStyle.Render(theme.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
