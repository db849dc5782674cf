// Package parser implements the RSN event-producing parser described in
// spec.md §4.3: it wraps the tokenizer with a nesting stack and yields a
// lazy sequence of structural Events (begin/end nested, primitives, and
// optionally comments). It is grounded structurally on the teacher's
// original DWScript recursive-descent parser's token-lookahead/peek
// discipline and semantically on original_source/src/parser.rs's
// CEventParser state machine.
package parser

import (
	"io"

	"github.com/cwbudde/go-rsn/internal/lexer"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

// Config mirrors the reader configuration named in spec.md §6.
type Config struct {
	// IncludeComments, when true, surfaces comment tokens as EventComment
	// (the tokenizer runs in Full mode). The reader path normally leaves
	// this false, which runs the tokenizer in Minified mode.
	IncludeComments bool
	// AllowImplicitMap permits a top-level value to be a map without
	// surrounding braces (spec.md §4.3's "Implicit map mode").
	AllowImplicitMap bool
}

// listState is the sub-state of a Tuple or List frame.
type listState int

const (
	lsExpectingValue listState = iota
	lsExpectingComma
)

// mapState is the sub-state of a Map frame.
type mapState int

const (
	msExpectingKey mapState = iota
	msExpectingColon
	msExpectingValue
	msExpectingComma
)

// frame is one entry of the nesting stack described in spec.md §4.3.
type frame struct {
	kind      token.NestedKind
	list      listState
	m         mapState
	implicit  bool // synthetic top-level map with no surrounding braces
}

// Parser is the lazy sequence of Events produced by pulling Next()
// repeatedly, per spec.md §9's "pull the next event" design note.
type Parser struct {
	toks *lexer.Tokenizer
	cfg  Config

	// one-token lookahead buffer, since the parser needs exactly one
	// token of lookahead (spec.md §9) to detect `Name(` / `Name{`.
	peeked    *token.Token
	peekedErr error
	havePeek  bool

	stack      []frame
	topEmitted bool
	done       bool
}

// New builds a Parser over source text.
func New(source string, cfg Config) *Parser {
	var toks *lexer.Tokenizer
	if cfg.IncludeComments {
		toks = lexer.Full(source)
	} else {
		toks = lexer.Minified(source)
	}
	return &Parser{toks: toks, cfg: cfg}
}

// peekToken returns the next non-whitespace token without consuming it.
// Whitespace is never meaningful to the parser's grammar even in Full
// mode; only comments are (and only when IncludeComments is set, which is
// exactly when the tokenizer is in Full mode to begin with).
func (p *Parser) peekToken() (token.Token, error) {
	if p.havePeek {
		if p.peeked == nil {
			return token.Token{}, p.peekedErr
		}
		return *p.peeked, p.peekedErr
	}
	for {
		tok, err := p.toks.Next()
		if err != nil {
			p.peeked, p.peekedErr, p.havePeek = nil, err, true
			return token.Token{}, err
		}
		if tok.Kind == token.KindWhitespace {
			continue
		}
		p.peeked, p.peekedErr, p.havePeek = &tok, nil, true
		return tok, nil
	}
}

func (p *Parser) consumeToken() {
	p.havePeek = false
	p.peeked = nil
}

func wrapTokenizerErr(err error) error {
	if err == io.EOF {
		return err
	}
	if rerr, ok := err.(*rsnerr.Error); ok {
		return rsnerr.WrapParser(rerr.Kind, rerr.Span, rerr.Detail, rerr)
	}
	return err
}

func unexpectedEOF(span token.Span) error {
	return &rsnerr.Error{Layer: rsnerr.LayerParser, Kind: rsnerr.UnexpectedEof, Span: span}
}

func unexpectedToken(tok token.Token) error {
	return &rsnerr.Error{Layer: rsnerr.LayerParser, Kind: rsnerr.Unexpected, Span: tok.Span, Detail: describeToken(tok)}
}

func describeToken(tok token.Token) string {
	switch tok.Kind {
	case token.KindColon:
		return ":"
	case token.KindComma:
		return ","
	case token.KindOpen:
		return string(tok.Delim.Open())
	case token.KindClose:
		return string(tok.Delim.Close())
	case token.KindIdentifier:
		return tok.Ident.Value
	default:
		return tok.Kind.String()
	}
}

// Next returns the next Event, io.EOF once the top-level value (and any
// nested content) has been fully consumed, or a *rsnerr.Error.
func (p *Parser) Next() (token.Event, error) {
	if p.done {
		return token.Event{}, io.EOF
	}

	// Surface a pending comment before anything else, at any nesting
	// depth, without affecting grammar state.
	if p.cfg.IncludeComments {
		if ev, ok, err := p.maybeCommentEvent(); ok || err != nil {
			return ev, err
		}
	}

	if len(p.stack) == 0 {
		return p.atTopLevel()
	}
	return p.atNested()
}

// maybeCommentEvent peeks the next token; if it is a comment, it is
// consumed and returned as an EventComment, bypassing the structural state
// machine entirely.
func (p *Parser) maybeCommentEvent() (token.Event, bool, error) {
	tok, err := p.peekToken()
	if err == io.EOF {
		return token.Event{}, false, nil
	}
	if err != nil {
		return token.Event{}, true, wrapTokenizerErr(err)
	}
	if tok.Kind != token.KindComment {
		return token.Event{}, false, nil
	}
	p.consumeToken()
	return token.Event{Kind: token.EventComment, Span: tok.Span, CommentKind: tok.CommentKind, Comment: tok.Comment}, true, nil
}

func (p *Parser) atTopLevel() (token.Event, error) {
	if p.topEmitted {
		tok, err := p.peekToken()
		if err == io.EOF {
			p.done = true
			return token.Event{}, io.EOF
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		return token.Event{}, &rsnerr.Error{Layer: rsnerr.LayerParser, Kind: rsnerr.TrailingData, Span: tok.Span}
	}

	if p.cfg.AllowImplicitMap {
		p.stack = append(p.stack, frame{kind: token.Map, m: msExpectingKey, implicit: true})
		return token.Event{Kind: token.EventBeginNested, Nested: token.Map}, nil
	}

	return p.beginValue()
}

// beginValue consumes one value at the current position (the "parse one
// value" step referenced throughout spec.md §4.3) and returns its first
// Event: either a primitive, or a BeginNested (pushing a new frame) for a
// nested/named form.
func (p *Parser) beginValue() (token.Event, error) {
	tok, err := p.peekToken()
	if err == io.EOF {
		return token.Event{}, unexpectedEOF(token.Span{})
	}
	if err != nil {
		return token.Event{}, wrapTokenizerErr(err)
	}

	switch tok.Kind {
	case token.KindIdentifier:
		p.consumeToken()
		return p.continueAfterIdentifier(tok)
	case token.KindOpen:
		p.consumeToken()
		kind := token.NestedKindOf(tok.Delim)
		p.stack = append(p.stack, newFrame(kind))
		return token.Event{Kind: token.EventBeginNested, Nested: kind, Span: tok.Span}, nil
	case token.KindInteger:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimInteger, Int: tok.Int}})
	case token.KindFloat:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimFloat, Float: tok.Float}})
	case token.KindBool:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimBool, Bool: tok.Bool}})
	case token.KindChar:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimChar, Char: tok.Char}})
	case token.KindByte:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimByte, Byte: tok.Byte}})
	case token.KindString:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimString, Str: tok.Str}})
	case token.KindBytes:
		p.consumeToken()
		return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: tok.Span, Prim: token.Primitive{Kind: token.PrimBytes, Bytes: tok.Bytes}})
	default:
		return token.Event{}, unexpectedToken(tok)
	}
}

// continueAfterIdentifier handles the "named prefix" rule (spec.md §4.3):
// an identifier immediately followed by '(' or '{' is coalesced into a
// named-tuple/named-map BeginNested; otherwise the identifier itself is an
// Identifier primitive (this also covers the bare `Some`/`None` forms,
// which a consumer-layer resolves to Option semantics per spec.md §4.2's
// invariant, not the core parser).
func (p *Parser) continueAfterIdentifier(ident token.Token) (token.Event, error) {
	next, err := p.peekToken()
	if err == nil && next.Kind == token.KindOpen && (next.Delim == token.Paren || next.Delim == token.Brace) {
		p.consumeToken()
		kind := token.NestedKindOf(next.Delim)
		name := ident.Ident
		p.stack = append(p.stack, newFrame(kind))
		span := token.Span{Start: ident.Span.Start, End: next.Span.End}
		return token.Event{Kind: token.EventBeginNested, Nested: kind, Name: &name, NameSpan: ident.Span, Span: span}, nil
	}
	return p.finishPrimitiveAtRoot(token.Event{Kind: token.EventPrimitive, Span: ident.Span,
		Prim: token.Primitive{Kind: token.PrimIdentifier, Ident: ident.Ident}})
}

// finishPrimitiveAtRoot marks the top-level value emitted when a primitive
// completes at stack depth 0. It is called for every primitive, nested or
// not; at a deeper level it returns the event unchanged, since the parent
// frame's state was already advanced by atSequence/atMap.
func (p *Parser) finishPrimitiveAtRoot(ev token.Event) (token.Event, error) {
	if len(p.stack) == 0 {
		p.topEmitted = true
	}
	return ev, nil
}

func newFrame(kind token.NestedKind) frame {
	return frame{kind: kind}
}

// atNested drives the state machine for the top frame of the nesting
// stack, per spec.md §4.3's in-list/in-tuple/in-map transitions.
func (p *Parser) atNested() (token.Event, error) {
	top := &p.stack[len(p.stack)-1]

	if top.kind == token.Map {
		return p.atMap(top)
	}
	return p.atSequence(top)
}

func (p *Parser) matchingClose(kind token.NestedKind) token.Balanced {
	return kind.BalancedOf()
}

func (p *Parser) atSequence(top *frame) (token.Event, error) {
	closeDelim := p.matchingClose(top.kind)

	switch top.list {
	case lsExpectingValue:
		tok, err := p.peekToken()
		if err == io.EOF {
			return token.Event{}, unexpectedEOF(token.Span{})
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		if tok.Kind == token.KindClose && tok.Delim == closeDelim {
			p.consumeToken()
			return p.popFrame(tok.Span)
		}
		top.list = lsExpectingComma
		return p.beginValue()
	case lsExpectingComma:
		tok, err := p.peekToken()
		if err == io.EOF {
			return token.Event{}, unexpectedEOF(token.Span{})
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		switch {
		case tok.Kind == token.KindComma:
			p.consumeToken()
			top.list = lsExpectingValue
			return p.Next()
		case tok.Kind == token.KindClose && tok.Delim == closeDelim:
			p.consumeToken()
			return p.popFrame(tok.Span)
		default:
			return token.Event{}, unexpectedToken(tok)
		}
	default:
		return token.Event{}, unexpectedToken(token.Token{})
	}
}

func (p *Parser) atMap(top *frame) (token.Event, error) {
	switch top.m {
	case msExpectingKey:
		tok, err := p.peekToken()
		if top.implicit && err == io.EOF {
			return p.popFrame(token.Span{})
		}
		if err == io.EOF {
			return token.Event{}, unexpectedEOF(token.Span{})
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		if !top.implicit && tok.Kind == token.KindClose && tok.Delim == token.Brace {
			p.consumeToken()
			return p.popFrame(tok.Span)
		}
		top.m = msExpectingColon
		return p.beginValue()
	case msExpectingColon:
		tok, err := p.peekToken()
		if err == io.EOF {
			return token.Event{}, unexpectedEOF(token.Span{})
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		if tok.Kind != token.KindColon {
			return token.Event{}, unexpectedToken(tok)
		}
		p.consumeToken()
		top.m = msExpectingValue
		return p.Next()
	case msExpectingValue:
		top.m = msExpectingComma
		return p.beginValue()
	case msExpectingComma:
		tok, err := p.peekToken()
		if top.implicit && err == io.EOF {
			return p.popFrame(token.Span{})
		}
		if err == io.EOF {
			return token.Event{}, unexpectedEOF(token.Span{})
		}
		if err != nil {
			return token.Event{}, wrapTokenizerErr(err)
		}
		switch {
		case tok.Kind == token.KindComma:
			p.consumeToken()
			top.m = msExpectingKey
			return p.Next()
		case !top.implicit && tok.Kind == token.KindClose && tok.Delim == token.Brace:
			p.consumeToken()
			return p.popFrame(tok.Span)
		default:
			return token.Event{}, unexpectedToken(tok)
		}
	default:
		return token.Event{}, unexpectedToken(token.Token{})
	}
}

// popFrame pops the top frame and emits its EndNested. The parent frame's
// sub-state (if any) was already advanced to "expecting comma/colon" at
// the point this child was pushed (see atSequence/atMap), mirroring how a
// completed primitive's parent state is pre-set by the same call sites —
// so nothing further needs to happen to the parent here.
func (p *Parser) popFrame(closeSpan token.Span) (token.Event, error) {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.stack) == 0 {
		p.topEmitted = true
	}

	return token.Event{Kind: token.EventEndNested, Nested: top.kind, Span: closeSpan}, nil
}
