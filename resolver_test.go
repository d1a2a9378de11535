package mdspan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyResolvesEachStyleOnce(t *testing.T) {
	res := Parse("*a* b *c* **d** *e*")
	calls := map[StyleSet]int{}
	resolver := StyleResolverFunc[string](func(s StyleSet) string {
		calls[s]++
		return s.String()
	})
	runs := Apply[string](res, resolver)
	want := []Run[string]{
		{Text: "a", Style: EmphasisSingle, Attributes: "emphasis_single"},
		{Text: " b ", Style: Plain, Attributes: "plain"},
		{Text: "c", Style: EmphasisSingle, Attributes: "emphasis_single"},
		{Text: " ", Style: Plain, Attributes: "plain"},
		{Text: "d", Style: EmphasisDouble, Attributes: "emphasis_double"},
		{Text: " ", Style: Plain, Attributes: "plain"},
		{Text: "e", Style: EmphasisSingle, Attributes: "emphasis_single"},
	}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Fatalf("unexpected runs (-want +got):\n%s", diff)
	}
	for style, n := range calls {
		if n != 1 {
			t.Fatalf("resolver called %d times for %s", n, style)
		}
	}
	if len(calls) != 3 {
		t.Fatalf("expected 3 distinct styles, got %v", calls)
	}
}

func TestApplyEmpty(t *testing.T) {
	runs := Apply[int](Parse(""), StyleResolverFunc[int](func(StyleSet) int {
		t.Fatalf("resolver should not be called")
		return 0
	}))
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %+v", runs)
	}
}

type fontAttrs struct {
	italic bool
	weight int
}

type fontResolver struct{}

func (fontResolver) Resolve(s StyleSet) fontAttrs {
	attrs := fontAttrs{italic: s.Italic(), weight: 400}
	if s.Bold() {
		attrs.weight = 700
	}
	return attrs
}

func TestApplyWithInterfaceResolver(t *testing.T) {
	runs := Apply[fontAttrs](Parse("***x***"), fontResolver{})
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %+v", runs)
	}
	if got := runs[0].Attributes; got != (fontAttrs{italic: true, weight: 700}) {
		t.Fatalf("unexpected attributes %+v", got)
	}
}

func TestApplyTreatsUnknownStyleAsPlain(t *testing.T) {
	res := ParseResult{PlainText: "ab", Spans: []Span{{0, 1, StyleSet(9)}, {1, 2, EmphasisSingle}}}
	runs := Apply[string](res, StyleResolverFunc[string](func(s StyleSet) string {
		return s.String()
	}))
	if runs[0].Style != Plain || runs[0].Attributes != "plain" {
		t.Fatalf("unexpected run for unknown style: %+v", runs[0])
	}
	if got := Debug(res); got != "a{i}b{/i}" {
		t.Fatalf("unexpected debug output %q", got)
	}
}

func TestStylesSatisfiesResolver(t *testing.T) {
	var _ StyleResolver[Style] = Styles{}
}
