package mdspan

// StyleResolver translates a StyleSet into caller-defined rendering
// attributes. Implementations are owned by the embedding application; this
// package never inspects A.
type StyleResolver[A any] interface {
	Resolve(StyleSet) A
}

// StyleResolverFunc adapts a function to StyleResolver.
type StyleResolverFunc[A any] func(StyleSet) A

// Resolve calls f(s).
func (f StyleResolverFunc[A]) Resolve(s StyleSet) A { return f(s) }

// Run is a span of text with resolved attributes.
type Run[A any] struct {
	Text       string
	Style      StyleSet
	Attributes A
}

// Apply resolves every span of res. The resolver is called at most once per
// distinct StyleSet. Unknown StyleSet values are treated as Plain.
func Apply[A any](res ParseResult, resolver StyleResolver[A]) []Run[A] {
	var (
		cache    [len(styleNames)]A
		resolved [len(styleNames)]bool
	)
	runs := make([]Run[A], 0, len(res.Spans))
	for _, s := range res.Spans {
		style := s.Style.known()
		if !resolved[style] {
			cache[style] = resolver.Resolve(style)
			resolved[style] = true
		}
		runs = append(runs, Run[A]{
			Text:       res.Text(s),
			Style:      style,
			Attributes: cache[style],
		})
	}
	return runs
}
