// Package token defines the lexical units produced by the RSN tokenizer:
// byte-range spans, token kinds, the tagged Integer representation, and the
// bracket-kind enumeration shared by the tokenizer, parser, and writer.
package token

import "fmt"

// Span is a half-open byte range [Start, End) into a source text. Every
// token and every parser event carries one; it is the only positional
// information the core ever produces (no line/column tracking — that is
// reconstructed on demand by internal/diag for CLI diagnostics).
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// String renders the span as "start..end", matching the Rust Range<usize>
// debug form the reference implementation uses.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Slice returns the substring of source covered by the span. It panics if
// the span is out of bounds, same as a Rust slice index would.
func (s Span) Slice(source string) string {
	return source[s.Start:s.End]
}
