package mdspan

import (
	"strings"
	"unicode"
)

// LiteralMarkers lists the characters Escape prefixes with a backslash.
const LiteralMarkers = "*_"

const (
	singleMarker = "_"
	doubleMarker = "**"
)

// Escape backslash-escapes every emphasis marker in text so Parse returns it
// unchanged.
func Escape(text string) string {
	if !strings.ContainsAny(text, LiteralMarkers) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	writeEscaped(&b, text)
	return b.String()
}

func writeEscaped(b *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c == '*' || c == '_' {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
}

// Markdown renders res back to inline markup: `_` for single emphasis, `**`
// for double and both nested for EmphasisBoth. Whitespace at the edges of a
// styled span is written outside the markers so they stay valid delimiters;
// whitespace-only spans can end emphasis but never start it. A backslash directly
// before a marker boundary cannot be represented and reads back as an escape.
func Markdown(res ParseResult) string {
	var (
		b       strings.Builder
		layers  []StyleSet
		pending string
	)
	b.Grow(len(res.PlainText) + 4*len(res.Spans))
	for i, s := range res.Spans {
		text := res.Text(s)
		core := strings.TrimLeftFunc(text, unicode.IsSpace)
		pending += text[:len(text)-len(core)]
		trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
		if trimmed == "" {
			// Closers may precede whitespace, openers may not.
			layers = closeLayers(&b, layers, s.Style)
			continue
		}
		layers = transition(&b, layers, s.Style, pending, res.Spans[i:])
		writeEscaped(&b, trimmed)
		pending = core[len(trimmed):]
	}
	transition(&b, layers, Plain, pending, nil)
	return b.String()
}

// transition closes layers the target does not carry, writes the
// whitespace between the previous and the next styled text, then opens what
// is missing. When both layers open together the one that stays active over
// more of the upcoming spans goes outermost, so it never has to be closed and
// reopened around whitespace it still covers.
func transition(b *strings.Builder, layers []StyleSet, target StyleSet, between string, upcoming []Span) []StyleSet {
	layers = closeLayers(b, layers, target)
	b.WriteString(between)
	order := [2]StyleSet{EmphasisDouble, EmphasisSingle}
	if target == EmphasisBoth && len(layers) == 0 &&
		activeFor(upcoming, EmphasisSingle) > activeFor(upcoming, EmphasisDouble) {
		order = [2]StyleSet{EmphasisSingle, EmphasisDouble}
	}
	for _, layer := range order {
		if carries(target, layer) && !hasLayer(layers, layer) {
			b.WriteString(layerMarker(layer))
			layers = append(layers, layer)
		}
	}
	return layers
}

// activeFor counts the leading spans that carry layer.
func activeFor(spans []Span, layer StyleSet) int {
	n := 0
	for n < len(spans) && carries(spans[n].Style, layer) {
		n++
	}
	return n
}

// closeLayers pops layers down to the deepest one target still carries.
func closeLayers(b *strings.Builder, layers []StyleSet, target StyleSet) []StyleSet {
	keep := 0
	for keep < len(layers) && carries(target, layers[keep]) {
		keep++
	}
	for i := len(layers) - 1; i >= keep; i-- {
		b.WriteString(layerMarker(layers[i]))
	}
	return layers[:keep]
}

func carries(s StyleSet, layer StyleSet) bool {
	if layer == EmphasisDouble {
		return s.Bold()
	}
	return s.Italic()
}

func hasLayer(layers []StyleSet, layer StyleSet) bool {
	for _, l := range layers {
		if l == layer {
			return true
		}
	}
	return false
}

func layerMarker(layer StyleSet) string {
	if layer == EmphasisDouble {
		return doubleMarker
	}
	return singleMarker
}
