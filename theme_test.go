package mdspan

import (
	"testing"

	"pkt.systems/mdspan/internal/palette"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"outrun-electric",
		"iosvkem",
		"gruvbox",
		"dracula",
		"nord",
		"tokyo-night",
		"catppuccin-mocha",
		"solarized-dark",
		"solarized-light",
		"github-dark",
		"github-light",
		"one-dark",
		"rose-pine",
		"kanagawa",
		"monochrome",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %d: %v", len(expected), len(available), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("available themes not sorted: %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	th, ok := ThemeByName("  Tokyo-Night ")
	if !ok || th.Name() != "tokyo-night" {
		t.Fatalf("expected tokyo-night, got %v %v", th, ok)
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != DefaultTheme().Name() {
		t.Fatalf("expected empty name to resolve to the default theme")
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestStylesResolveCombinesBase(t *testing.T) {
	st := Styles{
		Plain:          Style{Prefix: palette.FG(7)},
		EmphasisSingle: Style{Prefix: palette.Italic},
		EmphasisDouble: Style{Prefix: palette.Bold},
	}
	if got := st.Resolve(Plain).Prefix; got != palette.FG(7) {
		t.Fatalf("plain prefix %q", got)
	}
	if got := st.Resolve(EmphasisSingle).Prefix; got != palette.FG(7)+palette.Italic {
		t.Fatalf("single prefix %q", got)
	}
	if got := st.Resolve(EmphasisBoth).Prefix; got != palette.FG(7) {
		t.Fatalf("both prefix should fall back to base, got %q", got)
	}
}

func TestMonochromeHasNoColors(t *testing.T) {
	th, _ := ThemeByName("monochrome")
	st := th.Styles()
	if st.Plain.Prefix != "" {
		t.Fatalf("expected no plain prefix, got %q", st.Plain.Prefix)
	}
	if st.EmphasisBoth.Prefix != palette.Bold+palette.Italic {
		t.Fatalf("unexpected both prefix %q", st.EmphasisBoth.Prefix)
	}
}
