package rsn

import (
	"io"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-rsn/pkg/writer"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func TestDecodeRoundTripCompact(t *testing.T) {
	cases := []string{
		`42`,
		`-17`,
		`3.25`,
		`true`,
		`"a🦀b"`,
		`[1,2,3]`,
		`(1,2)`,
		`{a:1,b:2}`,
		`Point(1,2)`,
		`Name{a:1,b:-1}`,
		`Some(42)`,
		`None`,
		`r#None`,
		`r#Some(42)`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			v, err := Decode(src, ReaderConfig{})
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", src, err)
			}
			got := Write(v, writer.Config{})
			if got != src {
				t.Fatalf("round trip mismatch: got %q want %q", got, src)
			}
		})
	}
}

func TestDecodeTrailingDataRejected(t *testing.T) {
	_, err := Decode(`1 2`, ReaderConfig{})
	if err == nil {
		t.Fatal("expected TrailingData error")
	}
}

func TestTokenizeMinifiedSkipsComments(t *testing.T) {
	r := Tokenize(`1 /* c */ 2`, false)
	var kinds []string
	for {
		tok, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected tokenizer error: %v", err)
		}
		kinds = append(kinds, tok.Kind.String())
	}
	if len(kinds) != 2 || kinds[0] != "Integer" || kinds[1] != "Integer" {
		t.Fatalf("expected two Integer tokens, got %v", kinds)
	}
}

func TestUnwrapSomeNewtype(t *testing.T) {
	v, err := Decode(`Some(7)`, ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	inner, ok := Unwrap(v, "Some")
	if !ok {
		t.Fatal("expected Some(...) to unwrap")
	}
	if inner.Int.String() != "7" {
		t.Fatalf("got %v", inner.Int)
	}
}

// A raw r#None/r#Some(...) is an ordinary identifier/named tuple, never
// the Option form (spec.md property P4): DecodeOption must fail with
// ExpectedOption rather than silently treating it as None/Some.
func TestDecodeOptionRejectsRawForms(t *testing.T) {
	for _, src := range []string{`r#None`, `r#Some(7)`} {
		t.Run(src, func(t *testing.T) {
			v, err := Decode(src, ReaderConfig{})
			if err != nil {
				t.Fatal(err)
			}
			if _, _, err := DecodeOption(v); err == nil {
				t.Fatalf("expected ExpectedOption for raw %q", src)
			}
		})
	}
}

func TestDecodeOptionAcceptsNonRawForms(t *testing.T) {
	none, err := Decode(`None`, ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, some, err := DecodeOption(none); err != nil || some {
		t.Fatalf("got some=%v err=%v, want none", some, err)
	}

	wrapped, err := Decode(`Some(7)`, ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	inner, some, err := DecodeOption(wrapped)
	if err != nil || !some || inner.Int.String() != "7" {
		t.Fatalf("got inner=%v some=%v err=%v", inner, some, err)
	}
}

func TestUnwrapRejectsRawNamedTuple(t *testing.T) {
	v, err := Decode(`r#Some(7)`, ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Unwrap(v, "Some"); ok {
		t.Fatal("raw r#Some(...) must not unwrap as the Some newtype")
	}
}

func TestPrettyWriteSnapshot(t *testing.T) {
	v, err := Decode(`Name{a:1,b:[1,2,3]}`, ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	got := Write(v, writer.PrettyDefault())
	snaps.MatchSnapshot(t, got)
}
