package token

// Balanced enumerates the three paired delimiter kinds the tokenizer and
// parser both recognise.
type Balanced int

const (
	Paren Balanced = iota
	Brace
	Bracket
)

func (b Balanced) String() string {
	switch b {
	case Paren:
		return "Paren"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	default:
		return "Balanced(?)"
	}
}

// Open returns the opening rune for the delimiter kind.
func (b Balanced) Open() rune {
	switch b {
	case Paren:
		return '('
	case Brace:
		return '{'
	case Bracket:
		return '['
	default:
		return 0
	}
}

// Close returns the closing rune for the delimiter kind.
func (b Balanced) Close() rune {
	switch b {
	case Paren:
		return ')'
	case Brace:
		return '}'
	case Bracket:
		return ']'
	default:
		return 0
	}
}

// Kind identifies the lexical category of a Token.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBool
	KindChar
	KindByte
	KindString
	KindBytes
	KindIdentifier
	KindOpen
	KindClose
	KindColon
	KindComma
	KindComment
	KindWhitespace
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindChar:
		return "Char"
	case KindByte:
		return "Byte"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindIdentifier:
		return "Identifier"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	case KindColon:
		return "Colon"
	case KindComma:
		return "Comma"
	case KindComment:
		return "Comment"
	case KindWhitespace:
		return "Whitespace"
	default:
		return "Kind(?)"
	}
}

// CommentKind distinguishes line comments from block comments, per the
// "supplemented feature" resolving spec.md §9's comment-grammar open
// question (SPEC_FULL.md, RESOLVED OPEN QUESTIONS).
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Text holds a decoded text or byte payload. Borrowed is true when the
// value aliases the source text directly (no escape was decoded); when it
// is false, Value is a materialised copy made once an escape forced
// decoding — see
// spec.md invariant "Borrowed text in a Primitive::String exists only
// when no escape was decoded" (P5).
type Text struct {
	Borrowed bool
	Value    string
}

// BytesValue holds a decoded byte-string payload, with the same
// borrowed/owned distinction as Text.
type BytesValue struct {
	Borrowed bool
	Value    []byte
}

// Token is a single lexical unit: a byte-range Span plus a Kind-tagged
// payload. Exactly one of the typed fields below is meaningful, selected
// by Kind.
type Token struct {
	Span Span
	Kind Kind

	Int         Integer
	Float       float64
	Bool        bool
	Char        rune
	Byte        byte
	Str         Text
	Bytes       BytesValue
	Ident       Text
	Delim       Balanced
	CommentKind CommentKind
	Comment     string
}
