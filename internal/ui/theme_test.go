package ui

import (
	"testing"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}

	names[0] = "Mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatalf("ThemeNames() should return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got.Name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", unknown.Name)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Base": th.Base, "Bar": th.Bar, "Frame": th.Frame, "Focus": th.Focus,
			"Text": th.Text, "Muted": th.Muted, "Faint": th.Faint,
			"Category": th.Category, "Punchline": th.Punchline, "Saved": th.Saved,
			"Failure": th.Failure, "Hint": th.Hint,
		}
		for field, value := range colors {
			if len(value) != 7 || value[0] != '#' {
				t.Fatalf("%s.%s = %q, want #rrggbb", name, field, value)
			}
		}
	}
}

func TestBarTextPaintsEveryWord(t *testing.T) {
	bar := newBarText("#192330")
	style := GetTheme("Nightfox").Styles().Muted

	if got := bar.paint("", style); got != "" {
		t.Fatalf("paint(\"\") = %q, want empty", got)
	}

	got := bar.paint("Viewing favorites", style)
	want := style.Background(bar.bg).Render("Viewing") + bar.gap(1) + style.Background(bar.bg).Render("favorites")
	if got != want {
		t.Fatalf("paint = %q, want %q", got, want)
	}

	if got := bar.join([]string{"a", "b"}, 2); got != "a"+bar.gap(2)+"b" {
		t.Fatalf("join = %q", got)
	}
}
