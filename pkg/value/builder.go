package value

import (
	"io"

	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

// eventSource is the pull interface the Builder drives — satisfied by
// *internal/parser.Parser without this package importing it (internal
// packages cannot be imported from outside their module tree, and
// pkg/value should not need to know about the parser's own Config type).
type eventSource interface {
	Next() (token.Event, error)
}

// pending is one in-progress container, shaped identically to the
// parser's own NestedState stack entry (spec.md §4.4: "a value builder
// that owns a growing stack of in-progress containers, identical in
// shape to the parser's nesting stack").
type pending struct {
	kind       token.NestedKind
	name       *token.Text
	nameSpan   token.Span
	nameRaw    bool
	startSpan  token.Span
	values     []Value
	pairs      []Pair
	pendingKey *Value
}

// isRawIdentifierSpan reports whether span covers a raw identifier
// literal (`r#name`) rather than a plain one, per spec.md property P4: a
// raw identifier's span is exactly two bytes wider than its normalised
// name (the "r#" prefix).
func isRawIdentifierSpan(span token.Span, normalised string) bool {
	return span.Len() == len(normalised)+2
}

// Builder folds a stream of parser Events into a single Value tree.
type Builder struct {
	stack []pending
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Feed consumes one Event. It returns a non-nil Value once the top-level
// value has been fully assembled (mirroring the parser's own
// "stack empty AND top-level value emitted" terminal condition).
func (b *Builder) Feed(ev token.Event) (*Value, error) {
	switch ev.Kind {
	case token.EventComment:
		return nil, nil
	case token.EventBeginNested:
		p := pending{kind: ev.Nested, startSpan: ev.Span}
		if ev.Name != nil {
			name := *ev.Name
			p.name = &name
			p.nameSpan = ev.NameSpan
			p.nameRaw = isRawIdentifierSpan(ev.NameSpan, name.Value)
		}
		b.stack = append(b.stack, p)
		return nil, nil
	case token.EventEndNested:
		if len(b.stack) == 0 {
			return nil, &rsnerr.Error{Layer: rsnerr.LayerConsumer, Kind: rsnerr.Message, Span: ev.Span, Detail: "unmatched EndNested"}
		}
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if top.kind == token.Map && top.pendingKey != nil {
			return nil, &rsnerr.Error{Layer: rsnerr.LayerConsumer, Kind: rsnerr.Message, Span: ev.Span, Detail: "map entry missing value"}
		}
		val := top.finish(ev.Span)
		return b.attach(val)
	case token.EventPrimitive:
		return b.attach(valueFromPrimitive(ev))
	default:
		return nil, nil
	}
}

// attach places a completed value into its parent container, or returns
// it as the finished top-level result when the stack is empty.
func (b *Builder) attach(v Value) (*Value, error) {
	if len(b.stack) == 0 {
		return &v, nil
	}
	top := &b.stack[len(b.stack)-1]
	if top.kind == token.Map {
		if top.pendingKey == nil {
			top.pendingKey = &v
		} else {
			top.pairs = append(top.pairs, Pair{Key: *top.pendingKey, Val: v})
			top.pendingKey = nil
		}
	} else {
		top.values = append(top.values, v)
	}
	return nil, nil
}

func (p pending) finish(closeSpan token.Span) Value {
	span := token.Span{Start: p.startSpan.Start, End: closeSpan.End}
	if p.kind == token.Map {
		named := &Named{Payload: NamedMap, Map: p.pairs}
		if p.name != nil {
			n := p.name.Value
			named.Name = &n
			named.NameSpan = p.nameSpan
			named.NameRaw = p.nameRaw
		}
		return Value{Span: span, Kind: LitNamed, Named: named}
	}
	if p.name != nil {
		n := p.name.Value
		return Value{Span: span, Kind: LitNamed, Named: &Named{
			Name: &n, NameSpan: p.nameSpan, NameRaw: p.nameRaw, Payload: NamedTuple, Tuple: p.values,
		}}
	}
	if p.kind == token.List {
		return Value{Span: span, Kind: LitArray, Array: p.values}
	}
	return Value{Span: span, Kind: LitTuple, Tuple: p.values}
}

func valueFromPrimitive(ev token.Event) Value {
	v := Value{Span: ev.Span}
	switch ev.Prim.Kind {
	case token.PrimBool:
		v.Kind, v.Bool = LitBool, ev.Prim.Bool
	case token.PrimInteger:
		v.Kind, v.Int = LitInteger, ev.Prim.Int
	case token.PrimFloat:
		v.Kind, v.Float = LitFloat, ev.Prim.Float
	case token.PrimChar:
		v.Kind, v.Char = LitChar, ev.Prim.Char
	case token.PrimByte:
		v.Kind, v.Byte = LitByte, ev.Prim.Byte
	case token.PrimString:
		v.Kind, v.Str = LitString, ev.Prim.Str
	case token.PrimBytes:
		v.Kind, v.Bytes = LitBytes, ev.Prim.Bytes
	case token.PrimIdentifier:
		v.Kind, v.Ident = LitIdentifier, ev.Prim.Ident
		v.IdentRaw = isRawIdentifierSpan(ev.Span, ev.Prim.Ident.Value)
	}
	return v
}

// Decode drains src until a complete top-level Value has been built,
// exactly as a typed consumer layer would drive the parser (spec.md §6's
// `parse(text, config) -> sequence of events` surface, folded into a
// value tree rather than handed to a caller event-by-event).
func Decode(src eventSource) (Value, error) {
	b := NewBuilder()
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return Value{}, &rsnerr.Error{Layer: rsnerr.LayerConsumer, Kind: rsnerr.UnexpectedEof, Detail: "no value produced"}
		}
		if err != nil {
			return Value{}, err
		}
		if v, err := b.Feed(ev); err != nil {
			return Value{}, err
		} else if v != nil {
			return *v, nil
		}
	}
}
