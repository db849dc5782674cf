package token

// NestedKind distinguishes the three bracketed-context shapes the parser
// and writer both recognise, per spec.md §3's Event alphabet. It maps
// one-to-one onto Balanced (Tuple↔Paren, List↔Bracket, Map↔Brace); the two
// types are kept separate because Balanced is a lexical (delimiter) concept
// while NestedKind is a grammar (container) concept, and spec.md names them
// distinctly in the Event and Value sections.
type NestedKind int

const (
	Tuple NestedKind = iota
	List
	Map
)

func (k NestedKind) String() string {
	switch k {
	case Tuple:
		return "Tuple"
	case List:
		return "List"
	case Map:
		return "Map"
	default:
		return "NestedKind(?)"
	}
}

// BalancedOf returns the delimiter kind a NestedKind opens with.
func (k NestedKind) BalancedOf() Balanced {
	switch k {
	case Tuple:
		return Paren
	case List:
		return Bracket
	case Map:
		return Brace
	default:
		return Paren
	}
}

// NestedKindOf is the inverse of BalancedOf.
func NestedKindOf(b Balanced) NestedKind {
	switch b {
	case Paren:
		return Tuple
	case Bracket:
		return List
	case Brace:
		return Map
	default:
		return Tuple
	}
}

// EventKind is the parser's output alphabet, per spec.md §3: "BeginNested
// · EndNested · Primitive(p) · Comment(text, when enabled)".
type EventKind int

const (
	EventBeginNested EventKind = iota
	EventEndNested
	EventPrimitive
	EventComment
)

func (k EventKind) String() string {
	switch k {
	case EventBeginNested:
		return "BeginNested"
	case EventEndNested:
		return "EndNested"
	case EventPrimitive:
		return "Primitive"
	case EventComment:
		return "Comment"
	default:
		return "EventKind(?)"
	}
}

// PrimitiveKind tags which field of a Primitive is meaningful. Byte is not
// named in spec.md §3's primitive union, which only lists "bool, Integer,
// float, char, string, identifier, or bytes" — but SPEC_FULL.md's
// RESOLVED OPEN QUESTIONS implements byte-char literals (b'x') as a
// single-byte-valued event, so it is added here as an eighth kind alongside
// the seven spec.md names.
type PrimitiveKind int

const (
	PrimBool PrimitiveKind = iota
	PrimInteger
	PrimFloat
	PrimChar
	PrimByte
	PrimString
	PrimBytes
	PrimIdentifier
)

// Primitive is a single primitive value carried by an EventPrimitive
// event. Exactly one field is meaningful, selected by Kind.
type Primitive struct {
	Kind  PrimitiveKind
	Bool  bool
	Int   Integer
	Float float64
	Char  rune
	Byte  byte
	Str   Text
	Bytes BytesValue
	Ident Text
}

// Event is the parser's output unit (spec.md §3). For EventBeginNested,
// Name is nil for an anonymous group and non-nil for a named form; NameSpan
// is the identifier's own span, carried so a consumer can apply property P4
// (raw-identifier width) without re-tokenizing. Span covers the whole
// triggering token run (name+open for a named begin, just the open/close
// delimiter otherwise); it is zero-valued for a synthetic implicit-map
// begin/end (see spec.md §4.3).
type Event struct {
	Kind EventKind

	// EventBeginNested / EventEndNested
	Nested   NestedKind
	Name     *Text
	NameSpan Span
	Span     Span

	// EventPrimitive
	Prim Primitive

	// EventComment
	CommentKind CommentKind
	Comment     string
}
