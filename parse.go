package mdspan

import (
	"unicode/utf16"
	"unicode/utf8"
)

// MediaType is the media type of the inline Markdown accepted by Parse.
const MediaType = "text/markdown"

// Span tags the PlainText byte range [Start, End) with a style.
type Span struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Style StyleSet `json:"style"`
}

// Len returns the span length in the span's own units.
func (s Span) Len() int { return s.End - s.Start }

// ParseResult is marker-stripped text plus spans that partition it: spans
// are ordered, contiguous and non-overlapping, the first starts at 0 and the
// last ends at len(PlainText). Empty text has no spans.
type ParseResult struct {
	PlainText string `json:"plain_text"`
	Spans     []Span `json:"spans"`
}

// Parse converts inline emphasis markup into plain text and styled spans.
// Every input is valid; markers that cannot form emphasis are kept as
// literal text.
func Parse(input string) ParseResult {
	var p parser
	p.tokenize(input)
	p.resolve()
	return p.assemble()
}

// Text returns the PlainText covered by a byte-offset span.
func (r ParseResult) Text(s Span) string {
	return r.PlainText[s.Start:s.End]
}

// RuneSpans returns the spans with offsets counted in runes.
func (r ParseResult) RuneSpans() []Span {
	return r.projectSpans(func(rune) int { return 1 })
}

// UTF16Spans returns the spans with offsets counted in UTF-16 code units,
// the indexing used by platform attributed strings.
func (r ParseResult) UTF16Spans() []Span {
	return r.projectSpans(func(c rune) int {
		if n := utf16.RuneLen(c); n > 0 {
			return n
		}
		return 1
	})
}

func (r ParseResult) projectSpans(width func(rune) int) []Span {
	out := make([]Span, len(r.Spans))
	pos, units := 0, 0
	for i, s := range r.Spans {
		out[i].Style = s.Style
		for pos < s.Start {
			c, size := utf8.DecodeRuneInString(r.PlainText[pos:])
			pos += size
			units += width(c)
		}
		out[i].Start = units
		for pos < s.End {
			c, size := utf8.DecodeRuneInString(r.PlainText[pos:])
			pos += size
			units += width(c)
		}
		out[i].End = units
	}
	return out
}
