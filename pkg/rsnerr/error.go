// Package rsnerr is the shared error taxonomy and span plumbing used by
// the tokenizer, parser, and value-model layers (spec.md §7): every error
// the core produces carries a byte-range token.Span into the original
// source, and each layer wraps the layer below under its own Kind rather
// than discarding it.
package rsnerr

import (
	"fmt"

	"github.com/cwbudde/go-rsn/pkg/token"
)

// Layer identifies which component raised an error, for callers that want
// to branch on it without a type switch on Kind.
type Layer int

const (
	LayerTokenizer Layer = iota
	LayerParser
	LayerConsumer
)

func (l Layer) String() string {
	switch l {
	case LayerTokenizer:
		return "tokenizer"
	case LayerParser:
		return "parser"
	case LayerConsumer:
		return "consumer"
	default:
		return "layer(?)"
	}
}

// Kind enumerates every error condition the core and its consumer-layer
// surface can raise, across all three layers named in spec.md §7.
type Kind int

const (
	// Tokenizer kinds.
	UnexpectedEof Kind = iota
	Unexpected
	ExpectedDigitAfterSign
	InvalidUnicode
	InvalidAscii
	IntegerTooLarge

	// Parser kinds (UnexpectedEof is shared with the tokenizer layer).
	TrailingData

	// Consumer-layer kinds (spec.md §7's typed-value-building taxonomy).
	ExpectedInteger
	ExpectedFloat
	ExpectedBool
	ExpectedUnit
	ExpectedOption
	ExpectedChar
	ExpectedString
	ExpectedBytes
	ExpectedSequence
	ExpectedMap
	ExpectedTupleStruct
	ExpectedMapStruct
	InvalidUtf8
	NameMismatch
	SomeCanOnlyContainOneValue
	Message
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEof:
		return "UnexpectedEof"
	case Unexpected:
		return "Unexpected"
	case ExpectedDigitAfterSign:
		return "ExpectedDigitAfterSign"
	case InvalidUnicode:
		return "InvalidUnicode"
	case InvalidAscii:
		return "InvalidAscii"
	case IntegerTooLarge:
		return "IntegerTooLarge"
	case TrailingData:
		return "TrailingData"
	case ExpectedInteger:
		return "ExpectedInteger"
	case ExpectedFloat:
		return "ExpectedFloat"
	case ExpectedBool:
		return "ExpectedBool"
	case ExpectedUnit:
		return "ExpectedUnit"
	case ExpectedOption:
		return "ExpectedOption"
	case ExpectedChar:
		return "ExpectedChar"
	case ExpectedString:
		return "ExpectedString"
	case ExpectedBytes:
		return "ExpectedBytes"
	case ExpectedSequence:
		return "ExpectedSequence"
	case ExpectedMap:
		return "ExpectedMap"
	case ExpectedTupleStruct:
		return "ExpectedTupleStruct"
	case ExpectedMapStruct:
		return "ExpectedMapStruct"
	case InvalidUtf8:
		return "InvalidUtf8"
	case NameMismatch:
		return "NameMismatch"
	case SomeCanOnlyContainOneValue:
		return "SomeCanOnlyContainOneValue"
	case Message:
		return "Message"
	default:
		return "Kind(?)"
	}
}

// Error is the single error type produced by every layer of the core. It
// always carries the span where the problem was detected; Wrapped holds
// the lower-layer error this one propagates (nil at the tokenizer, the
// innermost layer).
type Error struct {
	Layer   Layer
	Kind    Kind
	Span    token.Span
	Detail  string // e.g. the offending rune, the mismatched name, free text
	Wrapped *Error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s at %s (%s)", e.Layer, e.Kind, e.Span, e.Detail)
	}
	return fmt.Sprintf("%s: %s at %s", e.Layer, e.Kind, e.Span)
}

// Unwrap lets errors.Is/errors.As walk the wrapped chain.
func (e *Error) Unwrap() error {
	if e.Wrapped == nil {
		return nil
	}
	return e.Wrapped
}

// New builds a tokenizer-layer error.
func New(kind Kind, span token.Span, detail string) *Error {
	return &Error{Layer: LayerTokenizer, Kind: kind, Span: span, Detail: detail}
}

// WrapParser wraps a tokenizer error (or builds a fresh parser-layer
// error when tokenizerErr is nil) under the parser layer, preserving the
// original span per spec.md §7's propagation rule.
func WrapParser(kind Kind, span token.Span, detail string, tokenizerErr *Error) *Error {
	return &Error{Layer: LayerParser, Kind: kind, Span: span, Detail: detail, Wrapped: tokenizerErr}
}

// WrapConsumer wraps any lower-layer error under the consumer layer. The
// error carries exactly the span the caller passes in.
func WrapConsumer(kind Kind, span token.Span, detail string, wrapped *Error) *Error {
	return &Error{Layer: LayerConsumer, Kind: kind, Span: span, Detail: detail, Wrapped: wrapped}
}
