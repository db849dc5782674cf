package lexer

import (
	"io"
	"testing"

	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

func collectMinified(t *testing.T, src string) []token.Token {
	t.Helper()
	toks := Minified(src)
	var out []token.Token
	for {
		tok, err := toks.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		out = append(out, tok)
	}
}

func TestIntegerLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-17", "-17"},
		{"+5", "5"},
		{"1_000_000", "1000000"},
		{"0x1F", "31"},
		{"0b101", "5"},
		{"0o17", "15"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := collectMinified(t, c.src)
			if len(toks) != 1 || toks[0].Kind != token.KindInteger {
				t.Fatalf("got %#v", toks)
			}
			if got := toks[0].Int.String(); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

// scenario 8 from spec.md §8: an explicit '+' tags the literal signed,
// same as a '-' would, even though the value itself is non-negative.
func TestExplicitPlusSignTagsSigned(t *testing.T) {
	cases := []struct {
		src  string
		want token.IntegerKind
	}{
		{"9", token.Usize},
		{"+9", token.Isize},
		{"-9", token.Isize},
		{"+0x1F", token.Isize},
		{"+0b101", token.Isize},
		{"+0o17", token.Isize},
		{"99999999999999999999999999999", token.UnsignedLarge},
		{"+99999999999999999999999999999", token.SignedLarge},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := collectMinified(t, c.src)
			if len(toks) != 1 || toks[0].Kind != token.KindInteger {
				t.Fatalf("got %#v", toks)
			}
			if got := toks[0].Int.Kind; got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestFloatLiterals(t *testing.T) {
	cases := []string{"3.25", "-0.5", "1e10", "2.5e-3", "1_0.5_0"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			toks := collectMinified(t, src)
			if len(toks) != 1 || toks[0].Kind != token.KindFloat {
				t.Fatalf("got %#v", toks)
			}
		})
	}
}

func TestIntegerWideningPreservesValue(t *testing.T) {
	toks := collectMinified(t, "99999999999999999999999999999")
	if len(toks) != 1 || toks[0].Kind != token.KindInteger {
		t.Fatalf("got %#v", toks)
	}
	if toks[0].Int.Kind != token.UnsignedLarge {
		t.Fatalf("expected widening to UnsignedLarge, got %s", toks[0].Int.Kind)
	}
}

func TestBooleanLiftedAsBool(t *testing.T) {
	toks := collectMinified(t, "true")
	if len(toks) != 1 || toks[0].Kind != token.KindBool || !toks[0].Bool {
		t.Fatalf("got %#v", toks)
	}
}

func TestNoneIsIdentifierNotLifted(t *testing.T) {
	toks := collectMinified(t, "None")
	if len(toks) != 1 || toks[0].Kind != token.KindIdentifier || toks[0].Ident.Value != "None" {
		t.Fatalf("None should tokenize as a bare identifier, got %#v", toks)
	}
}

func TestStringBorrowedWithoutEscape(t *testing.T) {
	toks := collectMinified(t, `"hello"`)
	if len(toks) != 1 || toks[0].Kind != token.KindString {
		t.Fatalf("got %#v", toks)
	}
	if !toks[0].Str.Borrowed || toks[0].Str.Value != "hello" {
		t.Fatalf("expected borrowed \"hello\", got %#v", toks[0].Str)
	}
}

func TestStringOwnedWithEscape(t *testing.T) {
	toks := collectMinified(t, `"a\nb"`)
	if len(toks) != 1 || toks[0].Kind != token.KindString {
		t.Fatalf("got %#v", toks)
	}
	if toks[0].Str.Borrowed || toks[0].Str.Value != "a\nb" {
		t.Fatalf("expected owned \"a\\nb\", got %#v", toks[0].Str)
	}
}

func TestStringUnicodeEscape(t *testing.T) {
	toks := collectMinified(t, `"\u{1F980}"`)
	if len(toks) != 1 || toks[0].Str.Value != "🦀" {
		t.Fatalf("got %#v", toks)
	}
}

func TestStringContinuationSwallowsWhitespace(t *testing.T) {
	toks := collectMinified(t, "\"a\\\n   b\"")
	if len(toks) != 1 || toks[0].Str.Value != "ab" {
		t.Fatalf("got %#v", toks)
	}
}

func TestRawIdentifierWidthProperty(t *testing.T) {
	toks := collectMinified(t, "r#None")
	if len(toks) != 1 || toks[0].Kind != token.KindIdentifier {
		t.Fatalf("got %#v", toks)
	}
	tok := toks[0]
	if tok.Ident.Value != "None" {
		t.Fatalf("expected normalised text None, got %q", tok.Ident.Value)
	}
	if tok.Span.Len() != len(tok.Ident.Value)+2 {
		t.Fatalf("P4 violated: span len %d, text len %d", tok.Span.Len(), len(tok.Ident.Value))
	}
}

func TestByteCharLiteral(t *testing.T) {
	toks := collectMinified(t, `b'A'`)
	if len(toks) != 1 || toks[0].Kind != token.KindByte || toks[0].Byte != 'A' {
		t.Fatalf("got %#v", toks)
	}
}

func TestByteCharRejectsNonAscii(t *testing.T) {
	toks := Minified("b'é'")
	_, err := toks.Next()
	rerr, ok := err.(*rsnerr.Error)
	if !ok || rerr.Kind != rsnerr.InvalidAscii {
		t.Fatalf("expected InvalidAscii, got %v", err)
	}
}

func TestByteStringLiteral(t *testing.T) {
	toks := collectMinified(t, `b"hi"`)
	if len(toks) != 1 || toks[0].Kind != token.KindBytes {
		t.Fatalf("got %#v", toks)
	}
	if string(toks[0].Bytes.Value) != "hi" {
		t.Fatalf("got %q", toks[0].Bytes.Value)
	}
}

func TestDelimitersAndPunctuation(t *testing.T) {
	toks := collectMinified(t, "(){}[],:")
	wantKinds := []token.Kind{
		token.KindOpen, token.KindClose,
		token.KindOpen, token.KindClose,
		token.KindOpen, token.KindClose,
		token.KindComma, token.KindColon,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Kind, want)
		}
	}
}

func TestMinifiedSkipsWhitespaceAndComments(t *testing.T) {
	toks := collectMinified(t, "1 // a comment\n  2 /* block */ 3")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %#v", len(toks), toks)
	}
}

func TestFullSurfacesComments(t *testing.T) {
	toks := Full("1 // c\n2")
	var kinds []token.Kind
	for {
		tok, err := toks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}
	var hasComment, hasWhitespace bool
	for _, k := range kinds {
		if k == token.KindComment {
			hasComment = true
		}
		if k == token.KindWhitespace {
			hasWhitespace = true
		}
	}
	if !hasComment || !hasWhitespace {
		t.Fatalf("Full mode should surface whitespace and comments, got %v", kinds)
	}
}

func TestUnterminatedBlockCommentIsEOF(t *testing.T) {
	toks := Minified("/* never closed")
	_, err := toks.Next()
	rerr, ok := err.(*rsnerr.Error)
	if !ok || rerr.Kind != rsnerr.UnexpectedEof {
		t.Fatalf("expected UnexpectedEof, got %v", err)
	}
}

func TestExpectedDigitAfterSign(t *testing.T) {
	toks := Minified("-a")
	_, err := toks.Next()
	rerr, ok := err.(*rsnerr.Error)
	if !ok || rerr.Kind != rsnerr.ExpectedDigitAfterSign {
		t.Fatalf("expected ExpectedDigitAfterSign, got %v", err)
	}
}

// TestSpanPartition exercises property P2: concatenating every Full-mode
// token's covered substring, in order, reproduces the source exactly.
func TestSpanPartition(t *testing.T) {
	src := `Name{a: 1, b: [1, 2, 3]} // trailing comment`
	toks := Full(src)
	var rebuilt string
	for {
		tok, err := toks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rebuilt += tok.Span.Slice(src)
	}
	if rebuilt != src {
		t.Fatalf("P2 violated: got %q, want %q", rebuilt, src)
	}
}
