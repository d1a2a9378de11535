package mdspan

import "unicode/utf8"

// unit is one scanned scalar value. Escaped markers arrive as text units
// with the backslash already dropped.
type unit struct {
	r      rune
	text   string
	marker Marker
}

// scanner walks input one unit at a time with a single unit of lookahead.
type scanner struct {
	src    string
	pos    int
	peeked bool
	next   unit
}

func (s *scanner) reset(src string) {
	s.src = src
	s.pos = 0
	s.peeked = false
}

func (s *scanner) peek() (unit, bool) {
	if !s.peeked {
		u, ok := s.scan()
		if !ok {
			return unit{}, false
		}
		s.next = u
		s.peeked = true
	}
	return s.next, true
}

func (s *scanner) advance() (unit, bool) {
	u, ok := s.peek()
	s.peeked = false
	return u, ok
}

func (s *scanner) scan() (unit, bool) {
	if s.pos >= len(s.src) {
		return unit{}, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	start := s.pos
	s.pos += size
	if r == '\\' && s.pos < len(s.src) {
		if esc := s.src[s.pos]; esc == '*' || esc == '_' {
			s.pos++
			return unit{r: rune(esc), text: s.src[s.pos-1 : s.pos]}, true
		}
	}
	// Invalid bytes pass through one at a time.
	return unit{r: r, text: s.src[start:s.pos], marker: markerOf(r)}, true
}
