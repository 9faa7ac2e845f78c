package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barText paints segments onto a solid bar background. lipgloss resets the
// background after every styled segment, so the spaces between words and
// segments are painted explicitly.
type barText struct {
	bg lipgloss.Color
}

func newBarText(color string) barText {
	return barText{bg: lipgloss.Color(color)}
}

// paint renders text in style over the bar, word by word.
func (b barText) paint(text string, style lipgloss.Style) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Background(b.bg).Render(w)
		}
	}
	return strings.Join(words, b.gap(1))
}

// gap renders n bar-colored spaces.
func (b barText) gap(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// join places segments side by side separated by n painted spaces.
func (b barText) join(segments []string, n int) string {
	return strings.Join(segments, b.gap(n))
}
