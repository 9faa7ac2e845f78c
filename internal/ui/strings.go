package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// categoryLabel renders a joke category the way the card shows it.
func categoryLabel(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "UNCATEGORIZED"
	}
	return strings.ToUpper(category)
}
