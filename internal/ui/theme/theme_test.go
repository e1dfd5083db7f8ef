package theme_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"focusforge/internal/ui/theme"
)

// Apply rewrites package-level styles, so no t.Parallel here.

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { theme.Apply("dark") })

	dark := theme.Base
	theme.Apply("light")
	if theme.Base == dark {
		t.Fatal("light palette left the background unchanged")
	}
	if got := theme.App.GetBackground(); got != theme.Base {
		t.Fatalf("styles not rebuilt for the new palette: %v", got)
	}

	theme.Apply("dark")
	if theme.Base != dark {
		t.Fatalf("dark palette not restored: %v", theme.Base)
	}
}

func TestApplyUnknownNameFallsBackToDark(t *testing.T) {
	t.Cleanup(func() { theme.Apply("dark") })

	theme.Apply("nonsense")
	if theme.Base != lipgloss.Color("#1e1e2e") {
		t.Fatalf("unknown theme must select the dark palette, got %v", theme.Base)
	}
}
