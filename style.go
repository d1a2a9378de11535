package mdspan

import "fmt"

// StyleSet is the closed set of emphasis categories a span can carry.
type StyleSet uint8

const (
	// Plain is unstyled text.
	Plain StyleSet = iota
	// EmphasisSingle is text inside `*` or `_` (typically italic).
	EmphasisSingle
	// EmphasisDouble is text inside `**` or `__` (typically bold).
	EmphasisDouble
	// EmphasisBoth is text inside both a single and a double layer (typically bold italic).
	EmphasisBoth
)

var styleNames = [...]string{
	Plain:          "plain",
	EmphasisSingle: "emphasis_single",
	EmphasisDouble: "emphasis_double",
	EmphasisBoth:   "emphasis_both",
}

func (s StyleSet) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("StyleSet(%d)", uint8(s))
}

// Italic reports whether the style carries the single-emphasis axis.
func (s StyleSet) Italic() bool {
	return s == EmphasisSingle || s == EmphasisBoth
}

// Bold reports whether the style carries the double-emphasis axis.
func (s StyleSet) Bold() bool {
	return s == EmphasisDouble || s == EmphasisBoth
}

// Compose returns the union of both styles.
func (s StyleSet) Compose(other StyleSet) StyleSet {
	return styleFor(s.Italic() || other.Italic(), s.Bold() || other.Bold())
}

// MarshalText implements encoding.TextMarshaler.
func (s StyleSet) MarshalText() ([]byte, error) {
	if int(s) >= len(styleNames) {
		return nil, fmt.Errorf("style: invalid value %d", uint8(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StyleSet) UnmarshalText(text []byte) error {
	style, ok := StyleByName(string(text))
	if !ok {
		return fmt.Errorf("style: unknown name %q", text)
	}
	*s = style
	return nil
}

// StyleByName looks up a StyleSet by its String form.
func StyleByName(name string) (StyleSet, bool) {
	for i, n := range styleNames {
		if n == name {
			return StyleSet(i), true
		}
	}
	return Plain, false
}

// known maps values outside the closed set to Plain.
func (s StyleSet) known() StyleSet {
	if int(s) < len(styleNames) {
		return s
	}
	return Plain
}

func styleFor(italic, bold bool) StyleSet {
	switch {
	case italic && bold:
		return EmphasisBoth
	case bold:
		return EmphasisDouble
	case italic:
		return EmphasisSingle
	default:
		return Plain
	}
}
