package mdspan

import "strings"

var debugTags = [...][2]string{
	Plain:          {"", ""},
	EmphasisSingle: {"{i}", "{/i}"},
	EmphasisDouble: {"{b}", "{/b}"},
	EmphasisBoth:   {"{bi}", "{/bi}"},
}

// Debug renders res with inline tags around styled spans, e.g.
// "a {i}b{/i} c". It is meant for tests and diagnostics.
func Debug(res ParseResult) string {
	var b strings.Builder
	b.Grow(len(res.PlainText) + 8*len(res.Spans))
	for _, s := range res.Spans {
		tags := debugTags[s.Style.known()]
		b.WriteString(tags[0])
		b.WriteString(res.Text(s))
		b.WriteString(tags[1])
	}
	return b.String()
}
