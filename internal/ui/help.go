package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	// Sections follow keyMap.FullHelp, ignoring per-view enablement.
	titles := []string{"Jokes", "Favorites", "General"}
	groups := DefaultKeyMap().FullHelp()

	var b strings.Builder

	// Title
	b.WriteString(styles.Setup.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.Faint.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, group := range groups {
		b.WriteString(styles.Category.Render(titles[i]))
		b.WriteString("\n")
		for _, binding := range group {
			b.WriteString(renderHelpLine(binding, styles.HelpKey, styles.Setup))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.HelpFrame.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Base)),
	)
}

func renderHelpLine(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
