package value

import (
	"testing"

	"github.com/cwbudde/go-rsn/internal/parser"
)

func decode(t *testing.T, src string) Value {
	t.Helper()
	p := parser.New(src, parser.Config{})
	v, err := Decode(p)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", src, err)
	}
	return v
}

func TestDecodeInteger(t *testing.T) {
	v := decode(t, "42")
	if v.Kind != LitInteger || v.Int.String() != "42" {
		t.Fatalf("got %#v", v)
	}
}

func TestDecodeNamedMap(t *testing.T) {
	v := decode(t, "Point{x:1,y:2}")
	if v.Kind != LitNamed || v.Named == nil || v.Named.Name == nil || *v.Named.Name != "Point" {
		t.Fatalf("got %#v", v)
	}
	if v.Named.Payload != NamedMap || len(v.Named.Map) != 2 {
		t.Fatalf("got %#v", v.Named)
	}
	if v.Named.Map[0].Key.Ident.Value != "x" {
		t.Fatalf("got %#v", v.Named.Map[0].Key)
	}
}

func TestDecodeSomeWrapper(t *testing.T) {
	v := decode(t, "Some(42)")
	inner, ok := v.IsSomeWrapper()
	if !ok {
		t.Fatalf("expected Some(...) to unwrap, got %#v", v)
	}
	if inner.Kind != LitInteger || inner.Int.String() != "42" {
		t.Fatalf("got %#v", inner)
	}
}

func TestDecodeNoneIsIdentifier(t *testing.T) {
	v := decode(t, "None")
	if !v.IsNone() {
		t.Fatalf("expected IsNone, got %#v", v)
	}
}

func TestDecodeNestedArrayInsideTuple(t *testing.T) {
	v := decode(t, "([1,2],3)")
	if v.Kind != LitTuple || len(v.Tuple) != 2 {
		t.Fatalf("got %#v", v)
	}
	if v.Tuple[0].Kind != LitArray || len(v.Tuple[0].Array) != 2 {
		t.Fatalf("got %#v", v.Tuple[0])
	}
}

func TestDecodeAnonymousMap(t *testing.T) {
	v := decode(t, "{a:1}")
	if v.Kind != LitNamed || v.Named.Name != nil {
		t.Fatalf("anonymous map should have nil Name, got %#v", v.Named)
	}
}

func TestDecodeRawNoneIsNotOption(t *testing.T) {
	v := decode(t, "r#None")
	if v.IsNone() {
		t.Fatalf("raw r#None must not report IsNone, got %#v", v)
	}
	if v.Kind != LitIdentifier || !v.IdentRaw || v.Ident.Value != "None" {
		t.Fatalf("got %#v", v)
	}
}

func TestDecodeRawSomeIsNotOptionWrapper(t *testing.T) {
	v := decode(t, "r#Some(7)")
	if _, ok := v.IsSomeWrapper(); ok {
		t.Fatalf("raw r#Some(...) must not unwrap via IsSomeWrapper, got %#v", v)
	}
	if v.Kind != LitNamed || v.Named == nil || !v.Named.NameRaw || *v.Named.Name != "Some" {
		t.Fatalf("got %#v", v.Named)
	}
}

func TestDecodeDuplicateKeysPreserved(t *testing.T) {
	v := decode(t, "{a:1,a:2}")
	if len(v.Named.Map) != 2 {
		t.Fatalf("duplicate keys must be preserved, got %#v", v.Named.Map)
	}
}
