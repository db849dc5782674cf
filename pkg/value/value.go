// Package value implements the RSN value model described in spec.md §4.4:
// an annotated literal tree produced by (or fed into) the codec, built by
// feeding parser Events into a Builder that owns a growing stack of
// in-progress containers shaped identically to the parser's own nesting
// stack. It is grounded on original_source/src/value.rs's Value/Literal
// enum and on the teacher's internal/ast package's pattern of a small
// closed set of node kinds with one struct per family.
package value

import "github.com/cwbudde/go-rsn/pkg/token"

// Attribute is a simple (name, contents) pair drawn from the source-level
// attribute syntax spec.md §4.4 places out of scope beyond naming it; this
// implementation does not extract attributes from source (no example in
// the pack shows the syntax), so every Value's Attributes is always empty
// — the field exists for data-model fidelity with spec.md §3/§4.4 and to
// leave room for a future tokenizer extension without a breaking change.
type Attribute struct {
	Name     string
	Contents string
}

// LiteralKind tags which of Value's payload fields is meaningful.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitBool
	LitChar
	LitByte
	LitString
	LitBytes
	// LitIdentifier is a practical extension beyond spec.md §3's literal
	// union (integer/float/bool/char/byte/string/bytes/named-type/tuple/
	// array only): the parser emits a bare Primitive(Identifier) event for
	// map keys like `a` in `Name{a:1}` and for non-lifted bare words like
	// `None`, and the value model needs a literal kind to hold that event's
	// payload. See DESIGN.md for the grounding of this addition.
	LitIdentifier
	LitNamed
	LitTuple
	LitArray
)

func (k LiteralKind) String() string {
	switch k {
	case LitInteger:
		return "Integer"
	case LitFloat:
		return "Float"
	case LitBool:
		return "Bool"
	case LitChar:
		return "Char"
	case LitByte:
		return "Byte"
	case LitString:
		return "String"
	case LitBytes:
		return "Bytes"
	case LitIdentifier:
		return "Identifier"
	case LitNamed:
		return "Named"
	case LitTuple:
		return "Tuple"
	case LitArray:
		return "Array"
	default:
		return "LiteralKind(?)"
	}
}

// NamedPayloadKind distinguishes a named-type's two possible payload
// shapes (spec.md §3: "either a map ... or a tuple").
type NamedPayloadKind int

const (
	NamedMap NamedPayloadKind = iota
	NamedTuple
)

// Pair is one key/value entry of a map. Maps are ordered sequences of
// pairs, not dictionaries: duplicate keys are representable and preserved
// (spec.md §3's Value invariant).
type Pair struct {
	Key Value
	Val Value
}

// Named is the payload of a LitNamed Value: an identifier (nil Name means
// anonymous — a bare `{...}` map or the implicit top-level map) and either
// an ordered Map or an ordered Tuple, never both.
type Named struct {
	Name     *string
	NameSpan token.Span
	// NameRaw is true when Name was written as a raw identifier (`r#Name`)
	// in the source, per spec.md property P4. A raw `r#Some`/`r#None`
	// prefix is an ordinary identifier, never the Option form, so
	// IsSomeWrapper and Unwrap consult this bit before matching on Name.
	NameRaw bool
	Payload NamedPayloadKind
	Map     []Pair
	Tuple   []Value
}

// Value is the annotated literal described in spec.md §3/§4.4: a sequence
// of attributes, a source byte range, and exactly one literal payload
// selected by Kind.
type Value struct {
	Attributes []Attribute
	Span       token.Span
	Kind       LiteralKind

	Bool  bool
	Int   token.Integer
	Float float64
	Char  rune
	Byte  byte
	Str   token.Text
	Bytes token.BytesValue
	Ident token.Text
	// IdentRaw is true when Ident was written as a raw identifier
	// (`r#Name`) in the source, per spec.md property P4. A raw `r#None`
	// is an ordinary identifier and never the absent-Option form.
	IdentRaw bool

	Named *Named
	Tuple []Value
	Array []Value
}

// IsNone reports whether v is the bare, non-raw `None` identifier literal
// — the absent-option form described in spec.md §4.2's invariant and §8's
// concrete scenario 3. A raw `r#None` is an ordinary identifier (spec.md
// property P4) and never reports true here; a consumer that needs to
// reject a raw r#None as an invalid Option should use pkg/rsn's
// DecodeOption, which raises ExpectedOption in that case.
func (v Value) IsNone() bool {
	return v.Kind == LitIdentifier && !v.IdentRaw && v.Ident.Value == "None"
}

// IsSomeWrapper reports whether v is a `Some(...)` named-tuple — the
// present-option form (spec.md §8 scenario 5) — and if so returns its
// single payload value. A raw `r#Some(...)` is an ordinary named tuple,
// never the Option form (spec.md property P4), so ok is false for it.
// Per spec.md's "SomeCanOnlyContainOneValue" consumer error, a Some(...)
// wrapping anything other than exactly one value is not a valid Option
// and ok is false.
func (v Value) IsSomeWrapper() (inner Value, ok bool) {
	if v.Kind != LitNamed || v.Named == nil || v.Named.Name == nil || v.Named.NameRaw {
		return Value{}, false
	}
	if *v.Named.Name != "Some" || v.Named.Payload != NamedTuple {
		return Value{}, false
	}
	if len(v.Named.Tuple) != 1 {
		return Value{}, false
	}
	return v.Named.Tuple[0], true
}
