// Package rsn is the facade named in SPEC_FULL.md's revised package
// layout: it composes internal/parser, pkg/value, and pkg/writer behind
// the consumer surface spec.md §6 describes in language-neutral terms
// (parse, tokenize, write), plus typed-decode helpers implementing the
// "swallow through EndNested" newtype behaviour for named-tuple-of-one
// values (the RESOLVED OPEN QUESTIONS section). It mirrors the teacher's
// pkg/dwscript facade's role: a small, stable, plain-struct-configured
// surface sitting on top of the internal lexer/parser machinery.
package rsn

import (
	"io"

	"github.com/cwbudde/go-rsn/internal/lexer"
	"github.com/cwbudde/go-rsn/internal/parser"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
	"github.com/cwbudde/go-rsn/pkg/value"
	"github.com/cwbudde/go-rsn/pkg/writer"
)

// ReaderConfig is the consumer-facing reader configuration named in
// spec.md §6: include_comments and allow_implicit_map.
type ReaderConfig struct {
	IncludeComments  bool
	AllowImplicitMap bool
}

func (c ReaderConfig) toParserConfig() parser.Config {
	return parser.Config{IncludeComments: c.IncludeComments, AllowImplicitMap: c.AllowImplicitMap}
}

// EventReader is the lazy sequence of events spec.md §6 calls
// `parse(text, config) -> sequence of events`.
type EventReader struct {
	p *parser.Parser
}

// Parse returns a reader that lazily yields Events over source text.
func Parse(source string, cfg ReaderConfig) *EventReader {
	return &EventReader{p: parser.New(source, cfg.toParserConfig())}
}

// Next returns the next Event, io.EOF when the top-level value (and any
// trailing data check) has completed, or a *rsnerr.Error.
func (r *EventReader) Next() (token.Event, error) {
	return r.p.Next()
}

// TokenReader is the lazy sequence of tokens spec.md §6 calls
// `tokenize(text, mode) -> sequence of tokens`, for tooling that needs
// spans (syntax highlighting, formatting).
type TokenReader struct {
	t *lexer.Tokenizer
}

// Tokenize returns a reader over source's raw tokens. When
// includeComments is true the tokenizer runs in Full mode (comments and
// whitespace are surfaced); otherwise it runs in Minified mode.
func Tokenize(source string, includeComments bool) *TokenReader {
	if includeComments {
		return &TokenReader{t: lexer.Full(source)}
	}
	return &TokenReader{t: lexer.Minified(source)}
}

// Next returns the next Token, io.EOF at end of input, or a *rsnerr.Error.
func (r *TokenReader) Next() (token.Token, error) {
	return r.t.Next()
}

// Decode parses source and folds its events into a single Value tree
// (spec.md §4.4's value builder driven over the facade's parser).
func Decode(source string, cfg ReaderConfig) (value.Value, error) {
	p := parser.New(source, cfg.toParserConfig())
	v, err := value.Decode(p)
	if err != nil {
		return value.Value{}, err
	}
	if _, err := p.Next(); err != io.EOF {
		if err == nil {
			return value.Value{}, &rsnerr.Error{Layer: rsnerr.LayerParser, Kind: rsnerr.TrailingData}
		}
		return value.Value{}, err
	}
	return v, nil
}

// Write renders v to text using cfg.
func Write(v value.Value, cfg writer.Config) string {
	w := writer.New(cfg)
	writer.EmitValue(w, v)
	return w.Finish()
}

// Unwrap implements the "swallow through EndNested" newtype behaviour
// (RESOLVED OPEN QUESTIONS): if v is a named-tuple-of-one wrapping name,
// returns its single inner value. Used by typed consumer layers decoding
// newtype variants, and directly by Option handling (Some(x) unwraps to
// x under name "Some"). A raw `r#<name>(...)` is an ordinary named tuple,
// never the newtype form (spec.md property P4), so ok is false for it.
func Unwrap(v value.Value, name string) (value.Value, bool) {
	if v.Kind != value.LitNamed || v.Named == nil || v.Named.Name == nil || v.Named.NameRaw {
		return value.Value{}, false
	}
	if *v.Named.Name != name || v.Named.Payload != value.NamedTuple {
		return value.Value{}, false
	}
	if len(v.Named.Tuple) != 1 {
		return value.Value{}, false
	}
	return v.Named.Tuple[0], true
}

// DecodeOption interprets v as an Option: None (bare, non-raw `None`)
// yields (zero Value, false, nil); Some(x) (non-raw) yields (x, true,
// nil). Any other shape — including a raw `r#None`/`r#Some(...)`, which
// spec.md §4.2's invariant treats as an ordinary identifier/named tuple
// rather than an Option — fails with ExpectedOption, per spec.md's "A
// consumer asking for an optional value MUST fail" rule.
func DecodeOption(v value.Value) (value.Value, bool, error) {
	if v.IsNone() {
		return value.Value{}, false, nil
	}
	if inner, ok := v.IsSomeWrapper(); ok {
		return inner, true, nil
	}
	return value.Value{}, false, &rsnerr.Error{Layer: rsnerr.LayerConsumer, Kind: rsnerr.ExpectedOption, Span: v.Span}
}
