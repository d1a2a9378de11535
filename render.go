package mdspan

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/mdspan/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Input   string
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render parses inline Markdown and writes it as ANSI-styled text.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	return RenderResult(req.Writer, Parse(req.Input), req.Width, req.Theme, req.Options...)
}

// RenderResult writes an already parsed result as ANSI-styled text, word
// wrapped to width when width > 0. A nil theme uses DefaultTheme.
func RenderResult(w io.Writer, res ParseResult, width int, theme Theme, opts ...RenderOption) error {
	if w == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	var b strings.Builder
	b.Grow(len(res.PlainText) + 16*len(res.Spans))
	for _, run := range Apply[Style](res, theme.Styles()) {
		if run.Attributes.Prefix == "" {
			b.WriteString(run.Text)
			continue
		}
		b.WriteString(run.Attributes.Prefix)
		b.WriteString(run.Text)
		if !cfg.noReset {
			b.WriteString(palette.Reset)
		}
	}
	out := wrapText(b.String(), width, cfg.softWrap)
	if cfg.trailingNewline && !strings.HasSuffix(res.PlainText, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}
