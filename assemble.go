package mdspan

import "strings"

// assemble writes text and unmatched markers in source order and tags every
// output byte with the layers active at that point. Closed layers end before
// a delimiter's literal leftovers and opened layers begin after them.
func (p *parser) assemble() ParseResult {
	var b strings.Builder
	b.Grow(len(p.text) + len(p.nodes))
	spans := make([]Span, 0, 1)
	single, double := 0, 0
	for i := range p.nodes {
		n := &p.nodes[i]
		if n.marker == MarkerNone {
			b.Write(p.text[n.start:n.end])
			spans = extendSpans(spans, b.Len(), styleFor(single > 0, double > 0))
			continue
		}
		single -= n.closeS
		double -= n.closeD
		if lit := n.literal(); lit > 0 {
			for k := 0; k < lit; k++ {
				b.WriteByte(n.marker.Byte())
			}
			spans = extendSpans(spans, b.Len(), styleFor(single > 0, double > 0))
		}
		single += n.openS
		double += n.openD
	}
	return ParseResult{PlainText: b.String(), Spans: spans}
}

// extendSpans covers output up to end with style, merging into the previous
// span when the style is unchanged.
func extendSpans(spans []Span, end int, style StyleSet) []Span {
	start := 0
	if last := len(spans) - 1; last >= 0 {
		start = spans[last].End
		if spans[last].Style == style {
			spans[last].End = end
			return spans
		}
	}
	if end == start {
		return spans
	}
	return append(spans, Span{Start: start, End: end, Style: style})
}
