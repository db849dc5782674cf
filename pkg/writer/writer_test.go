package writer

import (
	"testing"

	"github.com/cwbudde/go-rsn/pkg/token"
	"github.com/cwbudde/go-rsn/pkg/value"
)

// TestStringRendering mirrors original_source/src/writer.rs's
// string_rendering test: every ASCII byte 0..127 followed by a
// non-ASCII scalar, escaped per the default table.
func TestStringRendering(t *testing.T) {
	var sb []rune
	for b := 0; b < 128; b++ {
		sb = append(sb, rune(b))
	}
	sb = append(sb, '\U0001F980') // U+1F980 CRAB
	s := string(sb)

	w := New(Config{})
	w.WriteString(s)
	got := w.Finish()

	want := `"\0\x01\x02\x03\x04\x05\x06\x07\x08\t\n\x0b\x0c\r\x0e\x0f` +
		`\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f` +
		` !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_` +
		"`abcdefghijklmnopqrstuvwxyz{|}~" + `\x7f🦀"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestByteRendering mirrors original_source/src/writer.rs's
// byte_rendering test: every byte 0..254, non-ASCII bytes hex-escaped.
func TestByteRendering(t *testing.T) {
	b := make([]byte, 255)
	for i := range b {
		b[i] = byte(i)
	}
	w := New(Config{})
	w.WriteBytes(b)
	got := w.Finish()
	if got[:2] != `b"` || got[len(got)-1] != '"' {
		t.Fatalf("malformed byte-string rendering: %q", got[:10])
	}
	if got[2:6] != `\0\x` {
		t.Fatalf("expected control-escape prefix, got %q", got[2:10])
	}
}

func TestCompactMapRoundShape(t *testing.T) {
	w := New(Config{})
	w.BeginMap()
	w.WriteRawValue("a")
	w.WriteInteger(token.NewIsize(1))
	w.WriteRawValue("b")
	w.WriteInteger(token.NewIsize(2))
	w.FinishNested()
	got := w.Finish()
	if got != "{a:1,b:2}" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettyNamedTuple(t *testing.T) {
	w := New(PrettyDefault())
	w.BeginNamedTuple("Point")
	w.WriteInteger(token.NewIsize(1))
	w.WriteInteger(token.NewIsize(2))
	w.FinishNested()
	got := w.Finish()
	want := "Point(\n  1,\n  2\n)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// A raw identifier re-emits its "r#" prefix instead of silently becoming
// a plain identifier (spec.md property P7).
func TestEmitValueRawIdentifier(t *testing.T) {
	v := value.Value{Kind: value.LitIdentifier, Ident: token.Text{Value: "None"}, IdentRaw: true}
	w := New(Config{})
	EmitValue(w, v)
	if got := w.Finish(); got != "r#None" {
		t.Fatalf("got %q, want %q", got, "r#None")
	}
}

// Same raw-prefix round trip for a named tuple's prefix.
func TestEmitValueRawNamedTuple(t *testing.T) {
	name := "Some"
	v := value.Value{
		Kind: value.LitNamed,
		Named: &value.Named{
			Name:    &name,
			NameRaw: true,
			Payload: value.NamedTuple,
			Tuple:   []value.Value{{Kind: value.LitInteger, Int: token.NewIsize(7)}},
		},
	}
	w := New(Config{})
	EmitValue(w, v)
	if got := w.Finish(); got != "r#Some(7)" {
		t.Fatalf("got %q, want %q", got, "r#Some(7)")
	}
}

func TestEmitValueNamedMap(t *testing.T) {
	name := "Point"
	v := value.Value{
		Kind: value.LitNamed,
		Named: &value.Named{
			Name:    &name,
			Payload: value.NamedMap,
			Map: []value.Pair{
				{
					Key: value.Value{Kind: value.LitIdentifier, Ident: token.Text{Value: "x"}},
					Val: value.Value{Kind: value.LitInteger, Int: token.NewIsize(1)},
				},
			},
		},
	}
	w := New(Config{})
	EmitValue(w, v)
	got := w.Finish()
	if got != "Point{x:1}" {
		t.Fatalf("got %q", got)
	}
}
