package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/chuckle/internal/state"
)

const (
	loadingText       = "Loading a fresh joke..."
	errorTitle        = "Oops! Something went wrong"
	emptyFavorites    = "No favorites yet. Press s on a joke you like."
	favoriteMarker    = "★ Saved"
	notFavoriteMarker = "☆ s to save"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the favorites list or the current joke state.
func (m Model) renderContent() string {
	if m.showFavorites {
		return m.viewport.View()
	}

	body := state.Match(m.current,
		m.renderLoading,
		m.renderJoke,
		m.renderError,
	)

	return lipgloss.Place(
		m.contentWidth(),
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		body,
	)
}

func (m Model) renderLoading(state.Loading) string {
	styles := m.theme.Styles()
	return m.spinner.View() + " " + styles.Muted.Render(loadingText)
}

func (m Model) renderJoke(s state.Success) string {
	styles := m.theme.Styles()
	width := cardWidth(m.width)
	inner := width - styles.Card.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(styles.Category.Render(categoryLabel(s.Joke.Category)))
	b.WriteString("\n\n")
	b.WriteString(styles.Setup.Width(inner).Render(s.Joke.Setup))
	b.WriteString("\n\n")
	b.WriteString(styles.Punchline.Width(inner).Render(s.Joke.Punchline))
	b.WriteString("\n\n")
	if s.IsFavorite() {
		b.WriteString(styles.Saved.Render(favoriteMarker))
	} else {
		b.WriteString(styles.Faint.Render(notFavoriteMarker))
	}

	card := styles.Card
	if s.IsFavorite() {
		card = styles.SavedCard
	}
	return card.Width(width).Render(b.String())
}

func (m Model) renderError(e state.Error) string {
	styles := m.theme.Styles()
	width := cardWidth(m.width)
	inner := width - styles.Card.GetHorizontalFrameSize()

	hint := styles.Muted.Render("Press n to try again.")
	if e.Retryable {
		hint = styles.Hint.Render("This usually clears up on its own. Press n to retry.")
	}

	var b strings.Builder
	b.WriteString(styles.Failure.Render(errorTitle))
	b.WriteString("\n\n")
	b.WriteString(styles.Setup.Width(inner).Render(e.Message))
	b.WriteString("\n\n")
	b.WriteString(hint)

	return styles.ErrorCard.Width(width).Render(b.String())
}

// renderFavoritesList renders the saved jokes in insertion order.
func (m Model) renderFavoritesList() string {
	styles := m.theme.Styles()
	width := cardWidth(m.width)

	var b strings.Builder
	title := fmt.Sprintf("Favorites (%d)", m.favorites.Len())
	b.WriteString(styles.Category.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Faint.Render(strings.Repeat("─", min(width, max(m.width, 1)))))
	b.WriteString("\n\n")

	if m.favorites.Len() == 0 {
		b.WriteString(styles.Muted.Render(emptyFavorites))
		return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
	}

	for i, j := range m.favorites {
		num := styles.Faint.Render(fmt.Sprintf("%2d.", i+1))
		cat := styles.Category.Render(truncate(categoryLabel(j.Category), 20))
		b.WriteString(num + " " + cat + "\n")
		b.WriteString(styles.Setup.Width(width).PaddingLeft(4).Render(j.Setup))
		b.WriteString("\n")
		b.WriteString(styles.Punchline.Width(width).PaddingLeft(4).Render(j.Punchline))
		b.WriteString("\n\n")
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.TrimRight(b.String(), "\n"))
}
