package mdspan

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/mdspan/internal/palette"
)

// StylesFile is the YAML form of a theme. Each style is a list of
// attributes: bold, dim, italic, underline, reverse, strike, fg:N or bg:N
// (xterm-256 color indexes). Styles left out inherit from the base theme.
type StylesFile struct {
	Name           string   `yaml:"name"`
	Base           string   `yaml:"base"`
	Plain          []string `yaml:"plain"`
	EmphasisSingle []string `yaml:"emphasis_single"`
	EmphasisDouble []string `yaml:"emphasis_double"`
	EmphasisBoth   []string `yaml:"emphasis_both"`
}

// LoadTheme reads a YAML styles file and returns the resulting Theme.
func LoadTheme(path string) (Theme, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("styles file: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("styles file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme builds a Theme from YAML styles file contents.
func ParseTheme(data []byte) (Theme, error) {
	var f StylesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("styles file: %w", err)
	}
	base, ok := ThemeByName(f.Base)
	if !ok {
		return nil, fmt.Errorf("styles file: unknown base theme %q", f.Base)
	}
	styles := base.Styles()
	fields := []struct {
		key   string
		attrs []string
		dst   *Style
	}{
		{"plain", f.Plain, &styles.Plain},
		{"emphasis_single", f.EmphasisSingle, &styles.EmphasisSingle},
		{"emphasis_double", f.EmphasisDouble, &styles.EmphasisDouble},
		{"emphasis_both", f.EmphasisBoth, &styles.EmphasisBoth},
	}
	for _, field := range fields {
		if field.attrs == nil {
			continue
		}
		st, err := styleFromAttributes(field.attrs)
		if err != nil {
			return nil, fmt.Errorf("styles file: %s: %w", field.key, err)
		}
		*field.dst = st
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "custom"
	}
	return NewTheme(name, styles), nil
}

func styleFromAttributes(attrs []string) (Style, error) {
	prefixes := make([]string, 0, len(attrs))
	for _, raw := range attrs {
		attr := strings.ToLower(strings.TrimSpace(raw))
		switch attr {
		case "bold":
			prefixes = append(prefixes, palette.Bold)
		case "dim":
			prefixes = append(prefixes, palette.Dim)
		case "italic":
			prefixes = append(prefixes, palette.Italic)
		case "underline":
			prefixes = append(prefixes, palette.Underline)
		case "reverse":
			prefixes = append(prefixes, palette.Reverse)
		case "strike":
			prefixes = append(prefixes, palette.Strike)
		default:
			kind, value, ok := strings.Cut(attr, ":")
			if !ok || (kind != "fg" && kind != "bg") {
				return Style{}, fmt.Errorf("unknown attribute %q", raw)
			}
			idx, err := strconv.Atoi(value)
			if err != nil || idx < 0 || idx > 255 {
				return Style{}, fmt.Errorf("invalid color %q", raw)
			}
			if kind == "fg" {
				prefixes = append(prefixes, palette.FG(idx))
			} else {
				prefixes = append(prefixes, palette.BG(idx))
			}
		}
	}
	return style(prefixes...), nil
}
