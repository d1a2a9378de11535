package mdspan

import (
	"strings"
	"unicode"
)

// maxRun is the longest marker run that is fully usable as emphasis. A run
// of three carries a double and a single layer.
const maxRun = 3

// node is either a text segment or a delimiter run. Delimiter nodes carry
// their flanking classification and, after resolution, the number of layers
// they open and close.
type node struct {
	marker   Marker
	start    int
	end      int
	count    int
	excess   int
	canOpen  bool
	canClose bool

	remain int
	openS  int
	openD  int
	closeS int
	closeD int
}

func (n *node) literal() int {
	return n.count + n.excess - n.closeS - 2*n.closeD - n.openS - 2*n.openD
}

type parser struct {
	sc    scanner
	text  []byte
	nodes []node
	stack []int
}

func (p *parser) tokenize(src string) {
	p.sc.reset(src)
	p.text = make([]byte, 0, len(src))
	p.nodes = p.nodes[:0]
	prev := ' '
	for {
		u, ok := p.sc.advance()
		if !ok {
			break
		}
		if u.marker == MarkerNone {
			p.appendText(u.text)
			prev = u.r
			continue
		}
		n := 1
		for {
			next, ok := p.sc.peek()
			if !ok || next.marker != u.marker {
				break
			}
			p.sc.advance()
			n++
		}
		after := ' '
		if next, ok := p.sc.peek(); ok {
			after = next.r
		}
		p.appendRun(u.marker, n, prev, after)
		prev = u.r
	}
}

func (p *parser) appendText(text string) {
	if last := len(p.nodes) - 1; last >= 0 && p.nodes[last].marker == MarkerNone && p.nodes[last].end == len(p.text) {
		p.text = append(p.text, text...)
		p.nodes[last].end = len(p.text)
		return
	}
	start := len(p.text)
	p.text = append(p.text, text...)
	p.nodes = append(p.nodes, node{start: start, end: len(p.text)})
}

// appendRun classifies a run of n identical markers. Start and end of input
// count as whitespace.
func (p *parser) appendRun(m Marker, n int, before, after rune) {
	canOpen := !unicode.IsSpace(after)
	canClose := !unicode.IsSpace(before)
	if !canOpen && !canClose {
		p.appendText(strings.Repeat(string(m.Byte()), n))
		return
	}
	count, excess := n, 0
	if n > maxRun {
		count, excess = 2, n-2
	}
	p.nodes = append(p.nodes, node{
		marker:   m,
		count:    count,
		excess:   excess,
		canOpen:  canOpen,
		canClose: canClose,
	})
}

// Tokenize returns the classified token stream for input. Runs of three
// markers are reported as a double and a single delimiter, ordered inner
// layer last for openers and first for closers. Excess markers of longer
// runs are reported as text on the outer side.
func Tokenize(input string) []Token {
	var p parser
	p.tokenize(input)
	out := make([]Token, 0, len(p.nodes))
	for i := range p.nodes {
		n := &p.nodes[i]
		if n.marker == MarkerNone {
			out = append(out, Token{Kind: TokenText, Text: string(p.text[n.start:n.end])})
			continue
		}
		kind := TokenOpenClose
		switch {
		case n.canOpen && !n.canClose:
			kind = TokenOpen
		case n.canClose && !n.canOpen:
			kind = TokenClose
		}
		excess := Token{Kind: TokenText, Text: strings.Repeat(string(n.marker.Byte()), n.excess)}
		if n.excess > 0 && kind != TokenClose {
			out = append(out, excess)
		}
		lengths := []int{n.count}
		if n.count == maxRun {
			lengths = []int{2, 1}
			if kind == TokenClose {
				lengths = []int{1, 2}
			}
		}
		for _, l := range lengths {
			out = append(out, Token{
				Kind:   kind,
				Text:   strings.Repeat(string(n.marker.Byte()), l),
				Marker: n.marker,
				Length: l,
			})
		}
		if n.excess > 0 && kind == TokenClose {
			out = append(out, excess)
		}
	}
	return out
}
