package tui

import (
	"testing"

	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

func TestNextThemeCycles(t *testing.T) {
	name := ThemeOrder[0]
	for range ThemeOrder {
		name = NextTheme(name)
	}
	if name != ThemeOrder[0] {
		t.Fatalf("expected full cycle back to %s, got %s", ThemeOrder[0], name)
	}
	if got := NextTheme("missing"); got != ThemeOrder[0] {
		t.Fatalf("expected unknown theme to restart the cycle, got %s", got)
	}
	for _, n := range ThemeOrder {
		if _, ok := Themes[n]; !ok {
			t.Fatalf("theme %s missing from Themes", n)
		}
	}
}

func TestSetThemeUnknown(t *testing.T) {
	t.Cleanup(func() { SetTheme("default") })
	if SetTheme("neon") {
		t.Fatalf("expected unknown theme to be rejected")
	}
	if CurrentTheme.Name != "Default" {
		t.Fatalf("expected default theme kept, got %s", CurrentTheme.Name)
	}
}

func TestThemeStyleLookups(t *testing.T) {
	th := Themes["default"]
	if th.StageStyle(timeline.Current).Render("x") == "" || th.PlantStyle(models.PlantCanceled).Render("x") == "" {
		t.Fatalf("expected styles to render")
	}
}
