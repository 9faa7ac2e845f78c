package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chuckle/internal/state"
)

// renderHeader renders the status bar: logo, state indicator and the
// favorites count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := newBarText(m.theme.Bar)
	compact := m.width < LayoutCompactWidth

	favLabel := "Favorites:"
	if compact {
		favLabel = "Fav:"
	}
	countStyle := styles.Muted
	if m.favorites.Len() > 0 {
		countStyle = styles.Punchline
	}

	segments := []string{
		bar.paint("chuckle", styles.Logo),
		m.stateIndicator(styles, bar, compact),
		bar.paint(favLabel, styles.Muted) + bar.gap(1) +
			bar.paint(fmt.Sprintf("%d", m.favorites.Len()), countStyle),
	}
	if m.showFavorites && !compact {
		segments = append(segments, bar.paint("Viewing favorites", styles.Category))
	}

	return styles.Header.Width(m.width).Render(bar.join(segments, 2))
}

// stateIndicator renders a colored dot describing the controller state.
func (m Model) stateIndicator(styles Styles, bar barText, compact bool) string {
	label := func(dot lipgloss.Style, text string) string {
		if compact {
			return bar.paint("●", dot)
		}
		return bar.paint("● "+text, dot)
	}
	return state.Match(m.current,
		func(state.Loading) string {
			return label(styles.Punchline, "Loading")
		},
		func(s state.Success) string {
			return label(styles.Saved, categoryLabel(s.Joke.Category))
		},
		func(e state.Error) string {
			if e.Retryable {
				return label(styles.Failure, "Retry")
			}
			return label(styles.Failure, "Error")
		},
	)
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	onBar := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(c)).
			Background(lipgloss.Color(m.theme.Bar))
	}
	h := m.help
	h.Styles.ShortKey = onBar(m.theme.Category)
	h.Styles.ShortDesc = onBar(m.theme.Muted)
	h.Styles.ShortSeparator = onBar(m.theme.Faint)

	return m.theme.Styles().Footer.
		Width(m.width).
		Render(h.ShortHelpView(m.keys.ShortHelp()))
}
