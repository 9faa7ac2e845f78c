package ui

// Layout limits.
const (
	// CardMaxWidth caps the joke card width on wide terminals.
	CardMaxWidth = 72

	// CardMinWidth is the narrowest card that still renders sensibly.
	CardMinWidth = 24

	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 60

	// chromeHeight is the header plus command bar.
	chromeHeight = 2
)

// cardWidth returns the joke card width for a terminal of the given width.
func cardWidth(termWidth int) int {
	w := termWidth - 4
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}
