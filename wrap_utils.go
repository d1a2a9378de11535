package mdspan

import (
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapText word wraps ANSI text to width printable cells. Words longer than
// width are only broken when soft is set.
func wrapText(text string, width int, soft bool) string {
	if width <= 0 || text == "" {
		return text
	}
	out := wordwrap.String(text, width)
	if soft {
		out = wrap.String(out, width)
	}
	return out
}
