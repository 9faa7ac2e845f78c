package ui

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette. Colors are keyed by the role they play on the
// joke screens rather than by hue.
type Theme struct {
	Name string

	Base  string // screen background behind overlays
	Bar   string // header and command bar
	Frame string // joke card border
	Focus string // help overlay border

	Text  string
	Muted string
	Faint string

	Category  string // category label, spinner, key hints
	Punchline string // punchline, favorites badge, help keys
	Saved     string // saved marker and saved card border
	Failure   string // error title and error card border
	Hint      string // retry hint for transient failures
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	Card      lipgloss.Style
	SavedCard lipgloss.Style
	ErrorCard lipgloss.Style

	Category  lipgloss.Style
	Setup     lipgloss.Style
	Punchline lipgloss.Style
	Saved     lipgloss.Style
	Failure   lipgloss.Style
	Hint      lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style

	HelpKey   lipgloss.Style
	HelpFrame lipgloss.Style
}

// Styles builds the styles for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Frame)).
		Padding(1, 2)

	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Bar)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Bar)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: fg(t.Punchline).Bold(true),

		Card:      card,
		SavedCard: card.BorderForeground(lipgloss.Color(t.Saved)),
		ErrorCard: card.BorderForeground(lipgloss.Color(t.Failure)),

		Category:  fg(t.Category).Bold(true),
		Setup:     fg(t.Text),
		Punchline: fg(t.Punchline).Bold(true),
		Saved:     fg(t.Saved).Bold(true),
		Failure:   fg(t.Failure).Bold(true),
		Hint:      fg(t.Hint),
		Muted:     fg(t.Muted),
		Faint:     fg(t.Faint),

		HelpKey: fg(t.Punchline).Width(12),
		HelpFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Focus)).
			Padding(1, 2).
			Width(40),
	}
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": {
		Name: "Nightfox",
		Base: "#131a24", Bar: "#192330", Frame: "#39506d", Focus: "#719cd6",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Category: "#719cd6", Punchline: "#dbc074", Saved: "#81b29a", Failure: "#c94f6d", Hint: "#63cdcf",
	},
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": {
		Name: "Kanagawa",
		Base: "#16161D", Bar: "#1F1F28", Frame: "#54546D", Focus: "#7E9CD8",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Category: "#7E9CD8", Punchline: "#E6C384", Saved: "#98BB6C", Failure: "#E46876", Hint: "#7FB4CA",
	},
	// Tailwind slate/sky
	"Slate": {
		Name: "Slate",
		Base: "#020617", Bar: "#0f172a", Frame: "#334155", Focus: "#38bdf8",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Category: "#38bdf8", Punchline: "#f59e0b", Saved: "#22c55e", Failure: "#ef4444", Hint: "#06b6d4",
	},
}

// GetTheme returns the named theme, or the first theme for unknown names.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the theme names in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}
