package mdspan

import (
	"sort"
	"strings"

	"pkt.systems/mdspan/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles maps each StyleSet to a terminal style. Plain doubles as the base
// applied underneath every emphasis style.
type Styles struct {
	Plain          Style
	EmphasisSingle Style
	EmphasisDouble Style
	EmphasisBoth   Style
}

// Resolve returns the base style combined with the style for s. Styles
// satisfies StyleResolver[Style].
func (st Styles) Resolve(s StyleSet) Style {
	switch s {
	case EmphasisSingle:
		return combineStyles(st.Plain, st.EmphasisSingle)
	case EmphasisDouble:
		return combineStyles(st.Plain, st.EmphasisDouble)
	case EmphasisBoth:
		return combineStyles(st.Plain, st.EmphasisBoth)
	default:
		return st.Plain
	}
}

// Theme provides named styles for emphasis rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func combineStyles(base Style, extra Style) Style {
	if base.Prefix == "" {
		return extra
	}
	if extra.Prefix == "" {
		return base
	}
	return Style{Prefix: base.Prefix + extra.Prefix}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Plain:          style(p.Text),
		EmphasisSingle: style(palette.Italic, p.Emphasis),
		EmphasisDouble: style(palette.Bold, p.Strong),
		EmphasisBoth:   style(palette.Bold, palette.Italic, p.EmphasisStrong),
	}
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"outrun-electric":  theme{name: "outrun-electric", styles: stylesFromPalette(palette.PaletteOutrunElectric)},
	"iosvkem":          theme{name: "iosvkem", styles: stylesFromPalette(palette.PaletteDoomIosvkem)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(palette.PaletteCatppuccinMocha)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"one-dark":         theme{name: "one-dark", styles: stylesFromPalette(palette.PaletteOneDark)},
	"rose-pine":        theme{name: "rose-pine", styles: stylesFromPalette(palette.PaletteRosePine)},
	"kanagawa":         theme{name: "kanagawa", styles: stylesFromPalette(palette.PaletteKanagawa)},
	"monochrome": theme{name: "monochrome", styles: Styles{
		EmphasisSingle: style(palette.Italic),
		EmphasisDouble: style(palette.Bold),
		EmphasisBoth:   style(palette.Bold, palette.Italic),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
