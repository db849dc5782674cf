package lexer

import (
	"unicode/utf8"

	"github.com/cwbudde/go-rsn/pkg/token"
)

// charCursor is the UTF-8-aware positional iterator described in
// spec.md §4.1. It is grounded on original_source/src/tokenizer/
// char_iterator.rs (next_char_and_index/peek/mark_start/marked_range) and
// on the teacher's internal/lexer.Lexer readChar/peekChar pair — but
// unlike the teacher's byte-oriented cursor (DWScript source is
// effectively ASCII-keyword-driven), this one yields full Unicode scalars
// and tracks byte offsets separately from scalar counts, since every span
// the tokenizer produces is a byte range.
type charCursor struct {
	source string

	// lastOffset/lastWidth describe the most recently yielded scalar:
	// it began at lastOffset and was lastWidth bytes wide. Both are zero
	// before the first call to next(), matching spec.md's "Before EOF,
	// last_offset == 0 and last_char_range == 0..0".
	lastOffset int
	lastWidth  int

	// nextOffset is the byte offset of the scalar peek()/next() will
	// read next.
	nextOffset int

	markedStart int
}

func newCharCursor(source string) *charCursor {
	return &charCursor{source: source}
}

// next advances one Unicode scalar, returning it and true, or (0, false)
// at end of input.
func (c *charCursor) next() (rune, bool) {
	if c.nextOffset >= len(c.source) {
		return 0, false
	}
	r, width := utf8.DecodeRuneInString(c.source[c.nextOffset:])
	c.lastOffset = c.nextOffset
	c.lastWidth = width
	c.nextOffset += width
	return r, true
}

// peek returns the next scalar without advancing, or (0, false) at EOF.
func (c *charCursor) peek() (rune, bool) {
	if c.nextOffset >= len(c.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.nextOffset:])
	return r, true
}

// peekAt returns the scalar n positions ahead of the cursor (n==0 is the
// same as peek), used by the r/b prefix dispatch (r", r#, b", b') and by
// number tokenization's "is there a digit after '.'" check, where a
// two-scalar lookahead keeps the dispatch logic simple; spec.md's "single lookahead" design note (§9)
// refers to token-level lookahead, not scalar-level, and the reference
// tokenizer's own CharIterator::peek_full performs the same two-scalar
// peek for byte-string/raw-string prefix detection.
func (c *charCursor) peekAt(n int) (rune, bool) {
	offset := c.nextOffset
	var r rune
	ok := false
	for i := 0; i <= n; i++ {
		if offset >= len(c.source) {
			return 0, false
		}
		var width int
		r, width = utf8.DecodeRuneInString(c.source[offset:])
		offset += width
		ok = true
	}
	return r, ok
}

// markStart records the current offset as the start of a new span.
func (c *charCursor) markStart() {
	c.markedStart = c.nextOffset
}

// markedRange returns the span from the last markStart call to the
// current offset.
func (c *charCursor) markedRange() token.Span {
	return token.Span{Start: c.markedStart, End: c.nextOffset}
}

// markedStr returns the substring covered by markedRange.
func (c *charCursor) markedStr() string {
	return c.source[c.markedStart:c.nextOffset]
}

// lastCharRange returns the byte range of the most recently yielded
// scalar.
func (c *charCursor) lastCharRange() token.Span {
	return token.Span{Start: c.lastOffset, End: c.lastOffset + c.lastWidth}
}

// lastOffsetVal returns the byte offset before the last scalar.
func (c *charCursor) lastOffsetVal() int {
	return c.lastOffset
}

// currentOffset returns the byte offset after the last scalar (i.e. the
// offset the next call to next()/peek() will read from).
func (c *charCursor) currentOffset() int {
	return c.nextOffset
}

// atEOF reports whether there is no further input.
func (c *charCursor) atEOF() bool {
	return c.nextOffset >= len(c.source)
}
