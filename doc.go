// Package mdspan converts inline Markdown emphasis into styled text runs.
//
// Parse walks the input once, recognizes `*`, `**`, `_`, `__` and their
// combinations, and returns the marker-stripped text together with an
// exhaustive list of non-overlapping spans tagged Plain, EmphasisSingle,
// EmphasisDouble or EmphasisBoth. Parse never fails: markers that cannot form
// emphasis stay in the output as literal text.
//
// Core properties:
//   - Pure and allocation-light; safe for concurrent use
//   - Spans partition PlainText with byte offsets (rune and UTF-16 projections available)
//   - Attribute vocabulary belongs to the caller via StyleResolver
//   - Theme-driven ANSI rendering for terminals
//
// Example:
//
//	res := mdspan.Parse("This is a **_simple_ example**.")
//	for _, run := range mdspan.Apply[mdspan.Style](res, mdspan.DefaultTheme().Styles()) {
//		fmt.Print(run.Attributes.Prefix, run.Text, "\x1b[0m")
//	}
//
// Markdown converts a ParseResult back to inline markup and Render writes it
// to a terminal with word wrapping.
package mdspan
