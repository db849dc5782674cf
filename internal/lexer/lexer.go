// Package lexer implements the RSN tokenizer described in spec.md §4.2: a
// lazy sequence of tokens with byte-range spans, owning all literal
// decoding (numbers, escapes, identifiers). It is grounded structurally on
// the teacher's original DWScript Lexer (dispatch-table-driven NextToken,
// readChar/peekChar lookahead) and semantically on
// original_source/src/tokenizer.rs.
package lexer

import (
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/go-rsn/internal/rsnint"
	"github.com/cwbudde/go-rsn/internal/xid"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

// isRSNWhitespace is the whitespace table from spec.md §4.2: ASCII
// whitespace plus a handful of Unicode line/direction separators.
func isRSNWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u0085', '‎', '‏', ' ', ' ':
		return true
	default:
		return false
	}
}

// Tokenizer converts a source text into a lazy sequence of tokens. Use
// Minified for the reader pipeline (whitespace and comments skipped) and
// Full for tooling that needs every byte accounted for (spans partition
// the source, per property P2).
type Tokenizer struct {
	chars      *charCursor
	includeAll bool // Full mode: surface whitespace/comment tokens
}

// Minified returns a Tokenizer that skips whitespace and comments.
func Minified(source string) *Tokenizer {
	return &Tokenizer{chars: newCharCursor(source), includeAll: false}
}

// Full returns a Tokenizer that surfaces whitespace and comment tokens.
func Full(source string) *Tokenizer {
	return &Tokenizer{chars: newCharCursor(source), includeAll: true}
}

// Next returns the next token, io.EOF once the input is exhausted, or a
// *rsnerr.Error on malformed input.
func (t *Tokenizer) Next() (token.Token, error) {
	for {
		r, ok := t.chars.peek()
		if !ok {
			return token.Token{}, io.EOF
		}

		if isRSNWhitespace(r) {
			tok, err := t.readWhitespace()
			if err != nil {
				return token.Token{}, err
			}
			if !t.includeAll {
				continue
			}
			return tok, nil
		}

		switch {
		case r >= '0' && r <= '9', r == '-', r == '+':
			return t.readNumber()
		case r == '"':
			return t.readString()
		case r == '\'':
			return t.readChar()
		case r == 'r':
			return t.readRPrefixed()
		case r == 'b':
			return t.readBPrefixed()
		case r == '(':
			return t.readDelim(token.Paren, true)
		case r == ')':
			return t.readDelim(token.Paren, false)
		case r == '{':
			return t.readDelim(token.Brace, true)
		case r == '}':
			return t.readDelim(token.Brace, false)
		case r == '[':
			return t.readDelim(token.Bracket, true)
		case r == ']':
			return t.readDelim(token.Bracket, false)
		case r == ':':
			return t.readSingle(token.KindColon)
		case r == ',':
			return t.readSingle(token.KindComma)
		case r == '/':
			tok, err := t.readComment()
			if err != nil {
				return token.Token{}, err
			}
			if !t.includeAll {
				continue
			}
			return tok, nil
		default:
			return t.readIdentifier(0, false)
		}
	}
}

func (t *Tokenizer) readWhitespace() (token.Token, error) {
	t.chars.markStart()
	for {
		r, ok := t.chars.peek()
		if !ok || !isRSNWhitespace(r) {
			break
		}
		t.chars.next()
	}
	return token.Token{Span: t.chars.markedRange(), Kind: token.KindWhitespace}, nil
}

func (t *Tokenizer) readSingle(kind token.Kind) (token.Token, error) {
	t.chars.markStart()
	t.chars.next()
	return token.Token{Span: t.chars.markedRange(), Kind: kind}, nil
}

func (t *Tokenizer) readDelim(b token.Balanced, open bool) (token.Token, error) {
	t.chars.markStart()
	t.chars.next()
	kind := token.KindClose
	if open {
		kind = token.KindOpen
	}
	return token.Token{Span: t.chars.markedRange(), Kind: kind, Delim: b}, nil
}

// readComment handles both the line (//...\n) and block (/*...*/) forms;
// see SPEC_FULL.md's resolution of spec.md §9's open comment-grammar
// question. A bare '/' not followed by '/' or '*' is Unexpected, since the
// grammar reserves '/' exclusively for comments.
func (t *Tokenizer) readComment() (token.Token, error) {
	t.chars.markStart()
	t.chars.next() // consume leading '/'

	next, ok := t.chars.peek()
	if !ok {
		return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}

	switch next {
	case '/':
		t.chars.next()
		for {
			r, ok := t.chars.peek()
			if !ok || r == '\n' {
				break
			}
			t.chars.next()
		}
		span := t.chars.markedRange()
		return token.Token{Span: span, Kind: token.KindComment, CommentKind: token.LineComment, Comment: span.Slice(t.chars.source)}, nil
	case '*':
		t.chars.next()
		for {
			r, ok := t.chars.next()
			if !ok {
				return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
			}
			if r == '*' {
				if closeR, ok := t.chars.peek(); ok && closeR == '/' {
					t.chars.next()
					break
				}
			}
		}
		span := t.chars.markedRange()
		return token.Token{Span: span, Kind: token.KindComment, CommentKind: token.BlockComment, Comment: span.Slice(t.chars.source)}, nil
	default:
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(next))
	}
}

// readRPrefixed dispatches the scalar following a leading 'r': raw
// string, raw identifier, or an ordinary identifier starting with 'r'.
func (t *Tokenizer) readRPrefixed() (token.Token, error) {
	second, ok := t.chars.peekAt(1)
	switch {
	case ok && second == '"':
		return t.readRawString()
	case ok && second == '#':
		t.chars.markStart()
		t.chars.next() // 'r'
		t.chars.next() // '#'
		return t.readIdentifier(-1, true)
	default:
		return t.readIdentifier('r', false)
	}
}

// readBPrefixed dispatches the scalar following a leading 'b': byte
// string, byte char, or an ordinary identifier starting with 'b'.
func (t *Tokenizer) readBPrefixed() (token.Token, error) {
	second, ok := t.chars.peekAt(1)
	switch {
	case ok && second == '"':
		t.chars.markStart()
		t.chars.next() // 'b'
		return t.readByteString()
	case ok && second == '\'':
		t.chars.markStart()
		t.chars.next() // 'b'
		return t.readByteChar()
	default:
		return t.readIdentifier('b', false)
	}
}

// readIdentifier tokenizes an identifier. When initialChar is non-zero it
// is treated as the already-peeked first scalar of a non-raw identifier
// (mirroring the reference's `tokenize_identifier(Some(ch))`); the
// dispatch loop has not yet consumed it. When initialChar is -1, the
// cursor is already positioned after a consumed "r#" prefix and this reads
// a raw identifier, exempt from the boolean/None/Some lifting and from the
// XID_Start constraint on its first scalar (spec.md §4.2).
func (t *Tokenizer) readIdentifier(initialChar rune, raw bool) (token.Token, error) {
	if !raw {
		t.chars.markStart()
		if initialChar != 0 {
			t.chars.next()
			if initialChar != '_' && !xid.IsStart(initialChar) {
				return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(initialChar))
			}
		} else {
			r, ok := t.chars.next()
			if !ok {
				return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
			}
			if !xid.IsStart(r) {
				return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
			}
		}
	} else {
		// markStart was already called by the caller before consuming
		// "r#"; the raw identifier's first scalar is exempt from
		// XID_Start (it may be anything XID_Continue accepts).
		r, ok := t.chars.next()
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
		}
		if !xid.IsContinue(r) {
			return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
		}
	}

	for {
		r, ok := t.chars.peek()
		if !ok || !xid.IsContinue(r) {
			break
		}
		t.chars.next()
	}

	span := t.chars.markedRange()
	text := span.Slice(t.chars.source)

	if !raw {
		if b, isBool := xid.IsBooleanLiteral(text); isBool {
			return token.Token{Span: span, Kind: token.KindBool, Bool: b}, nil
		}
	}

	normalised := text
	if raw {
		normalised = text[2:] // strip the "r#" prefix for the normalised name
	}
	return token.Token{Span: span, Kind: token.KindIdentifier, Ident: token.Text{Borrowed: true, Value: normalised}}, nil
}

// readRawString tokenizes a raw string literal (r"..."): every scalar up to
// the next '"' is taken literally, with no escape decoding, so the token is
// always a borrowed slice of the source. The hashed form (r#"..."#) is not
// recognised: "r#" always starts a raw identifier.
func (t *Tokenizer) readRawString() (token.Token, error) {
	t.chars.markStart()
	t.chars.next() // 'r'
	t.chars.next() // opening quote
	for {
		r, ok := t.chars.next()
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
		}
		if r == '"' {
			break
		}
	}
	span := t.chars.markedRange()
	return token.Token{Span: span, Kind: token.KindString, Str: token.Text{Borrowed: true, Value: t.chars.source[span.Start+2 : span.End-1]}}, nil
}

func (t *Tokenizer) readString() (token.Token, error) {
	t.chars.markStart()
	t.chars.next() // opening quote

	var scratch strings.Builder
	owned := false

	for {
		r, ok := t.chars.peek()
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
		}
		if r == '"' {
			t.chars.next()
			break
		}
		if r == '\\' {
			if !owned {
				owned = true
				// Copy everything decoded so far (between the opening
				// quote and this backslash) into the scratch buffer.
				scratch.WriteString(t.chars.markedStr()[1:])
			}
			t.chars.next() // consume '\'
			if err := t.decodeStringEscapeInto(&scratch); err != nil {
				return token.Token{}, err
			}
			continue
		}
		t.chars.next()
		if owned {
			scratch.WriteRune(r)
		}
	}

	span := t.chars.markedRange()
	if owned {
		return token.Token{Span: span, Kind: token.KindString, Str: token.Text{Borrowed: false, Value: scratch.String()}}, nil
	}
	inner := t.chars.source[span.Start+1 : span.End-1]
	return token.Token{Span: span, Kind: token.KindString, Str: token.Text{Borrowed: true, Value: inner}}, nil
}

// decodeStringEscapeInto decodes one escape sequence (the leading
// backslash has already been consumed) appending the resulting scalar(s)
// to scratch.
func (t *Tokenizer) decodeStringEscapeInto(scratch *strings.Builder) error {
	r, present := t.chars.peek()
	if !present {
		return rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}

	switch r {
	case '"', '\'', '\\':
		t.chars.next()
		scratch.WriteRune(r)
		return nil
	case 'r':
		t.chars.next()
		scratch.WriteRune('\r')
		return nil
	case 'n':
		t.chars.next()
		scratch.WriteRune('\n')
		return nil
	case 't':
		t.chars.next()
		scratch.WriteRune('\t')
		return nil
	case '0':
		t.chars.next()
		scratch.WriteRune('\x00')
		return nil
	case 'u':
		t.chars.next()
		ur, err := t.decodeUnicodeEscape()
		if err != nil {
			return err
		}
		scratch.WriteRune(ur)
		return nil
	case 'x':
		t.chars.next()
		b, err := t.decodeAsciiEscape()
		if err != nil {
			return err
		}
		scratch.WriteByte(b)
		return nil
	case '\r', '\n':
		t.chars.next()
		if r == '\r' {
			if next, ok := t.chars.peek(); ok && next == '\n' {
				t.chars.next()
			}
		}
		t.eatStringContinuationWhitespace()
		return nil
	default:
		return rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
	}
}

func (t *Tokenizer) eatStringContinuationWhitespace() {
	for {
		r, ok := t.chars.peek()
		if !ok {
			return
		}
		switch r {
		case ' ', '\t', '\n', '\r':
			t.chars.next()
		default:
			return
		}
	}
}

func (t *Tokenizer) decodeUnicodeEscape() (rune, error) {
	open, ok := t.chars.peek()
	if !ok || open != '{' {
		return 0, rsnerr.New(rsnerr.InvalidUnicode, t.chars.markedRange(), "expected '{'")
	}
	t.chars.next()

	var value uint32
	digits := 0
	for {
		r, ok := t.chars.peek()
		if !ok {
			return 0, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
		}
		if r == '}' {
			t.chars.next()
			break
		}
		if r == '_' {
			t.chars.next()
			continue
		}
		hv, ok := hexDigitValue(r)
		if !ok {
			return 0, rsnerr.New(rsnerr.InvalidUnicode, t.chars.markedRange(), string(r))
		}
		t.chars.next()
		if value > (0x7FFFFFFF-hv)>>4 {
			return 0, rsnerr.New(rsnerr.InvalidUnicode, t.chars.markedRange(), "overflow")
		}
		value = value<<4 | hv
		digits++
	}
	if digits == 0 {
		return 0, rsnerr.New(rsnerr.InvalidUnicode, t.chars.markedRange(), "empty")
	}
	if value > 0x10FFFF || (value >= 0xD800 && value <= 0xDFFF) {
		return 0, rsnerr.New(rsnerr.InvalidUnicode, t.chars.markedRange(), "out of range")
	}
	return rune(value), nil
}

func (t *Tokenizer) decodeAsciiEscape() (byte, error) {
	first, ok := t.chars.peek()
	if !ok {
		return 0, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}
	octal, ok := octalDigitValue(first)
	if !ok {
		return 0, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), string(first))
	}
	t.chars.next()

	second, ok := t.chars.peek()
	if !ok {
		return 0, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}
	hexv, ok := hexDigitValue(second)
	if !ok {
		return 0, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), string(second))
	}
	t.chars.next()

	return byte(octal<<4 | hexv), nil
}

func hexDigitValue(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	default:
		return 0, false
	}
}

func octalDigitValue(r rune) (uint32, bool) {
	if r >= '0' && r <= '7' {
		return uint32(r - '0'), true
	}
	return 0, false
}

func (t *Tokenizer) readChar() (token.Token, error) {
	t.chars.markStart()
	t.chars.next() // opening quote

	r, ok := t.chars.peek()
	if !ok {
		return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}

	var result rune
	if r == '\\' {
		t.chars.next()
		var scratch strings.Builder
		if err := t.decodeStringEscapeInto(&scratch); err != nil {
			return token.Token{}, err
		}
		decoded := []rune(scratch.String())
		if len(decoded) != 1 {
			return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), "escape did not yield one scalar")
		}
		result = decoded[0]
	} else if r == '\n' || r == '\r' || r == '\t' {
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
	} else {
		t.chars.next()
		result = r
	}

	closeR, ok := t.chars.peek()
	if !ok {
		return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}
	if closeR != '\'' {
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(closeR))
	}
	t.chars.next()

	return token.Token{Span: t.chars.markedRange(), Kind: token.KindChar, Char: result}, nil
}

// readByteChar and readByteString implement the byte-string/byte-char
// parity SPEC_FULL.md's RESOLVED OPEN QUESTIONS section calls for: the
// same escape alphabet as string/char, an 8-bit payload. A decoded
// scalar outside the ASCII range cannot be represented as a single byte,
// so it is InvalidAscii rather than silently truncated.
func (t *Tokenizer) readByteChar() (token.Token, error) {
	t.chars.next() // opening quote

	r, ok := t.chars.peek()
	if !ok {
		return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}

	var result byte
	if r == '\\' {
		t.chars.next()
		var scratch strings.Builder
		if err := t.decodeStringEscapeInto(&scratch); err != nil {
			return token.Token{}, err
		}
		decoded := []rune(scratch.String())
		if len(decoded) != 1 || decoded[0] > 0x7F {
			return token.Token{}, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), "byte char escape must be ASCII")
		}
		result = byte(decoded[0])
	} else if r > 0x7F {
		return token.Token{}, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), "non-ASCII byte char")
	} else if r == '\n' || r == '\r' || r == '\t' {
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
	} else {
		t.chars.next()
		result = byte(r)
	}

	closeR, ok := t.chars.peek()
	if !ok {
		return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
	}
	if closeR != '\'' {
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(closeR))
	}
	t.chars.next()

	return token.Token{Span: t.chars.markedRange(), Kind: token.KindByte, Byte: result}, nil
}

func (t *Tokenizer) readByteString() (token.Token, error) {
	t.chars.next() // opening quote

	var scratch []byte
	owned := false

	for {
		r, ok := t.chars.peek()
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.UnexpectedEof, t.chars.markedRange(), "")
		}
		if r == '"' {
			t.chars.next()
			break
		}
		if r == '\\' {
			if !owned {
				owned = true
				scratch = append(scratch, t.chars.markedStr()[2:]...) // skip b"
			}
			t.chars.next()
			var sb strings.Builder
			if err := t.decodeStringEscapeInto(&sb); err != nil {
				return token.Token{}, err
			}
			decoded := []rune(sb.String())
			for _, dr := range decoded {
				if dr > 0x7F {
					return token.Token{}, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), "non-ASCII byte string escape")
				}
				scratch = append(scratch, byte(dr))
			}
			continue
		}
		if r > 0x7F {
			return token.Token{}, rsnerr.New(rsnerr.InvalidAscii, t.chars.markedRange(), "non-ASCII byte string literal")
		}
		t.chars.next()
		if owned {
			scratch = append(scratch, byte(r))
		}
	}

	span := t.chars.markedRange()
	if owned {
		return token.Token{Span: span, Kind: token.KindBytes, Bytes: token.BytesValue{Borrowed: false, Value: scratch}}, nil
	}
	inner := t.chars.source[span.Start+2 : span.End-1]
	return token.Token{Span: span, Kind: token.KindBytes, Bytes: token.BytesValue{Borrowed: true, Value: []byte(inner)}}, nil
}

// readNumber tokenizes an integer or float literal starting at the
// cursor, per spec.md §4.2's "Numbers" section.
func (t *Tokenizer) readNumber() (token.Token, error) {
	t.chars.markStart()

	negative := false
	signed := false
	first, _ := t.chars.peek()
	if first == '+' || first == '-' {
		t.chars.next()
		negative = first == '-'
		signed = true
		d, ok := t.chars.peek()
		if !ok || d < '0' || d > '9' {
			return token.Token{}, rsnerr.New(rsnerr.ExpectedDigitAfterSign, t.chars.markedRange(), "")
		}
	}

	first, _ = t.chars.peek()
	if first == '0' {
		t.chars.next()
		next, ok := t.chars.peek()
		if ok {
			switch next {
			case 'x', 'X':
				t.chars.next()
				return t.readRadixNumber(16, 4, negative, signed)
			case 'b', 'B':
				t.chars.next()
				return t.readRadixNumber(2, 1, negative, signed)
			case 'o', 'O':
				t.chars.next()
				return t.readRadixNumber(8, 3, negative, signed)
			}
		}
		return t.readDecimalNumber(negative, signed)
	}

	return t.readDecimalNumber(negative, signed)
}

func (t *Tokenizer) readRadixNumber(base uint64, bitsPerDigit uint, negative, signed bool) (token.Token, error) {
	var narrow uint64
	var wide rsnint.Large
	overflowed := false
	digits := 0

	for {
		r, ok := t.chars.peek()
		if !ok {
			break
		}
		if r == '_' {
			t.chars.next()
			continue
		}
		v, ok := digitValueForBase(r, base)
		if !ok {
			break
		}
		t.chars.next()
		digits++

		if !overflowed {
			maxForShift := (^uint64(0) - v) >> bitsPerDigit
			if narrow > maxForShift {
				overflowed = true
				wide = rsnint.WidenFromUint64(narrow)
			} else {
				narrow = narrow<<bitsPerDigit | v
				continue
			}
		}
		var of bool
		wide, of = rsnint.MulAddDigit(wide, uint64(1)<<bitsPerDigit, v)
		if of {
			return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, t.chars.markedRange(), "")
		}
	}

	if digits == 0 {
		r, _ := t.chars.peek()
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), string(r))
	}

	span := t.chars.markedRange()
	return buildRadixIntegerToken(span, narrow, wide, overflowed, negative, signed)
}

// buildRadixIntegerToken tags the token Isize/SignedLarge whenever an
// explicit sign was present in the source, even "+", not merely when
// the value itself is negative (spec.md §8 scenario 8).
func buildRadixIntegerToken(span token.Span, narrow uint64, wide rsnint.Large, overflowed, negative, signed bool) (token.Token, error) {
	if !overflowed {
		if negative {
			if narrow > 1<<63 {
				return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, span, "")
			}
			return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewIsize(-int64(narrow))}, nil
		}
		if signed {
			if narrow > 1<<63-1 {
				return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, span, "")
			}
			return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewIsize(int64(narrow))}, nil
		}
		return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewUsize(narrow)}, nil
	}
	if negative {
		s, ok := rsnint.NegateToSigned(wide)
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, span, "")
		}
		return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewSignedLarge(s)}, nil
	}
	if signed {
		s, ok := rsnint.SignedFromLarge(wide)
		if !ok {
			return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, span, "")
		}
		return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewSignedLarge(s)}, nil
	}
	return token.Token{Span: span, Kind: token.KindInteger, Int: token.NewUnsignedLarge(wide)}, nil
}

func digitValueForBase(r rune, base uint64) (uint64, bool) {
	var v uint64
	switch {
	case r >= '0' && r <= '9':
		v = uint64(r - '0')
	case r >= 'a' && r <= 'f':
		v = uint64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		v = uint64(r-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// readDecimalNumber reads the decimal path: integer accumulation with
// overflow widening, switching to the float path on '.' or 'e'/'E'. The
// leading '-'/'+' (if any) has already been consumed by readNumber.
func (t *Tokenizer) readDecimalNumber(negative, signed bool) (token.Token, error) {
	var narrow uint64
	var wide rsnint.Large
	overflowed := false

	for {
		r, ok := t.chars.peek()
		if !ok {
			break
		}
		if r == '_' {
			t.chars.next()
			continue
		}
		if r == '.' {
			if peek2, ok2 := t.chars.peekAt(1); ok2 && peek2 >= '0' && peek2 <= '9' {
				return t.readFloat(negative)
			}
			break
		}
		if r == 'e' || r == 'E' {
			return t.readFloat(negative)
		}
		if r < '0' || r > '9' {
			break
		}
		t.chars.next()
		d := uint64(r - '0')

		if !overflowed {
			if narrow > (^uint64(0)-d)/10 {
				overflowed = true
				wide = rsnint.WidenFromUint64(narrow)
			} else {
				narrow = narrow*10 + d
				continue
			}
		}
		var of bool
		wide, of = rsnint.MulAddDigit(wide, 10, d)
		if of {
			return token.Token{}, rsnerr.New(rsnerr.IntegerTooLarge, t.chars.markedRange(), "")
		}
	}

	span := t.chars.markedRange()
	return buildRadixIntegerToken(span, narrow, wide, overflowed, negative, signed)
}

// readFloat rebuilds the already-scanned numeric text (stripping
// underscores) into the scratch buffer, reads the remaining fractional
// digits and optional exponent, and parses the result as a binary64.
func (t *Tokenizer) readFloat(negative bool) (token.Token, error) {
	var scratch strings.Builder
	alreadyScanned := t.chars.markedStr()
	if negative {
		alreadyScanned = strings.TrimPrefix(alreadyScanned, "-")
		scratch.WriteByte('-')
	} else {
		alreadyScanned = strings.TrimPrefix(alreadyScanned, "+")
	}
	scratch.WriteString(strings.ReplaceAll(alreadyScanned, "_", ""))

	if r, ok := t.chars.peek(); ok && r == '.' {
		t.chars.next()
		scratch.WriteByte('.')
		any := false
		for {
			r, ok := t.chars.peek()
			if !ok {
				break
			}
			if r == '_' {
				t.chars.next()
				continue
			}
			if r < '0' || r > '9' {
				break
			}
			t.chars.next()
			scratch.WriteRune(r)
			any = true
		}
		if !any {
			return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), "expected digit after '.'")
		}
	}

	if r, ok := t.chars.peek(); ok && (r == 'e' || r == 'E') {
		t.chars.next()
		scratch.WriteByte('e')
		if sign, ok := t.chars.peek(); ok && (sign == '+' || sign == '-') {
			t.chars.next()
			scratch.WriteRune(sign)
		}
		digits := 0
		for {
			r, ok := t.chars.peek()
			if !ok {
				break
			}
			if r == '_' {
				t.chars.next()
				continue
			}
			if r < '0' || r > '9' {
				break
			}
			t.chars.next()
			scratch.WriteRune(r)
			digits++
		}
		if digits == 0 {
			return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), "expected exponent digit")
		}
	}

	value, err := strconv.ParseFloat(scratch.String(), 64)
	if err != nil {
		return token.Token{}, rsnerr.New(rsnerr.Unexpected, t.chars.markedRange(), err.Error())
	}

	return token.Token{Span: t.chars.markedRange(), Kind: token.KindFloat, Float: value}, nil
}
