package mdspan

// Marker identifies the character used for an emphasis delimiter.
type Marker uint8

const (
	// MarkerNone is used by text tokens.
	MarkerNone Marker = iota
	// MarkerAsterisk is `*`.
	MarkerAsterisk
	// MarkerUnderscore is `_`.
	MarkerUnderscore
)

// Byte returns the marker character.
func (m Marker) Byte() byte {
	switch m {
	case MarkerAsterisk:
		return '*'
	case MarkerUnderscore:
		return '_'
	default:
		return 0
	}
}

func markerOf(r rune) Marker {
	switch r {
	case '*':
		return MarkerAsterisk
	case '_':
		return MarkerUnderscore
	default:
		return MarkerNone
	}
}

// Token is a classified unit of inline input.
type Token struct {
	Kind   TokenKind
	Text   string
	Marker Marker
	Length int
}

// TokenKind classifies a Token.
type TokenKind uint8

const (
	// TokenText is literal text, including markers that can never be emphasis.
	TokenText TokenKind = iota
	// TokenOpen is a delimiter that can only open emphasis.
	TokenOpen
	// TokenClose is a delimiter that can only close emphasis.
	TokenClose
	// TokenOpenClose is an interior delimiter that may act as either.
	TokenOpenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenOpenClose:
		return "open-close"
	default:
		return "unknown"
	}
}
