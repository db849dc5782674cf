package parser

import (
	"io"
	"testing"

	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

func collect(t *testing.T, p *Parser) []token.Event {
	t.Helper()
	var out []token.Event
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		out = append(out, ev)
	}
}

func TestBarePrimitive(t *testing.T) {
	p := New("42", Config{})
	evs := collect(t, p)
	if len(evs) != 1 || evs[0].Kind != token.EventPrimitive || evs[0].Prim.Kind != token.PrimInteger {
		t.Fatalf("got %#v", evs)
	}
}

// scenario 2 from spec.md §8: Name{a:1,b:-1}.
func TestNamedMap(t *testing.T) {
	p := New("Name{a:1,b:-1}", Config{})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.Map || evs[0].Name == nil || evs[0].Name.Value != "Name" {
		t.Fatalf("unexpected first event: %#v", evs[0])
	}
	last := evs[len(evs)-1]
	if last.Kind != token.EventEndNested || last.Nested != token.Map {
		t.Fatalf("unexpected last event: %#v", last)
	}
	// keys a,b as Identifier primitives, values as Integer primitives.
	var idents, ints int
	for _, ev := range evs {
		if ev.Kind != token.EventPrimitive {
			continue
		}
		switch ev.Prim.Kind {
		case token.PrimIdentifier:
			idents++
		case token.PrimInteger:
			ints++
		}
	}
	if idents != 2 || ints != 2 {
		t.Fatalf("expected 2 identifier keys and 2 integer values, got idents=%d ints=%d", idents, ints)
	}
}

// scenario 5 from spec.md §8: Some(42).
func TestNamedTupleSome(t *testing.T) {
	p := New("Some(42)", Config{})
	evs := collect(t, p)
	if len(evs) != 3 {
		t.Fatalf("got %d events, want 3: %#v", len(evs), evs)
	}
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.Tuple || evs[0].Name == nil || evs[0].Name.Value != "Some" {
		t.Fatalf("got %#v", evs[0])
	}
	if evs[1].Kind != token.EventPrimitive || evs[1].Prim.Kind != token.PrimInteger {
		t.Fatalf("got %#v", evs[1])
	}
	if evs[2].Kind != token.EventEndNested {
		t.Fatalf("got %#v", evs[2])
	}
}

func TestBareNoneIsIdentifierPrimitive(t *testing.T) {
	p := New("None", Config{})
	evs := collect(t, p)
	if len(evs) != 1 || evs[0].Kind != token.EventPrimitive || evs[0].Prim.Kind != token.PrimIdentifier || evs[0].Prim.Ident.Value != "None" {
		t.Fatalf("got %#v", evs)
	}
}

func TestListWithMultipleElements(t *testing.T) {
	p := New("[1,2,3]", Config{})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.List {
		t.Fatalf("got %#v", evs[0])
	}
	count := 0
	for _, ev := range evs {
		if ev.Kind == token.EventPrimitive {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("expected 3 primitives in list, got %d: %#v", count, evs)
	}
}

func TestListTrailingCommaTolerated(t *testing.T) {
	p := New("[1,2,]", Config{})
	evs := collect(t, p)
	last := evs[len(evs)-1]
	if last.Kind != token.EventEndNested {
		t.Fatalf("trailing comma should still close cleanly, got %#v", last)
	}
}

func TestAnonymousTuple(t *testing.T) {
	p := New("(1,2)", Config{})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.Tuple || evs[0].Name != nil {
		t.Fatalf("got %#v", evs[0])
	}
}

func TestAnonymousMap(t *testing.T) {
	p := New("{a:1}", Config{})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.Map || evs[0].Name != nil {
		t.Fatalf("got %#v", evs[0])
	}
}

func TestImplicitTopLevelMap(t *testing.T) {
	p := New("a:1,b:2", Config{AllowImplicitMap: true})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Nested != token.Map {
		t.Fatalf("got %#v", evs[0])
	}
	last := evs[len(evs)-1]
	if last.Kind != token.EventEndNested {
		t.Fatalf("got %#v", last)
	}
}

func TestTrailingDataRejected(t *testing.T) {
	p := New("1 2", Config{})
	_, err := collectUntilError(p)
	rerr, ok := err.(*rsnerr.Error)
	if !ok || rerr.Kind != rsnerr.TrailingData {
		t.Fatalf("expected TrailingData, got %v", err)
	}
}

func collectUntilError(p *Parser) ([]token.Event, error) {
	var out []token.Event
	for {
		ev, err := p.Next()
		if err != nil {
			return out, err
		}
		out = append(out, ev)
	}
}

func TestNestedListInsideMap(t *testing.T) {
	p := New("Name{a:[1,2],b:(3,4)}", Config{})
	evs := collect(t, p)

	var begins, ends int
	for _, ev := range evs {
		switch ev.Kind {
		case token.EventBeginNested:
			begins++
		case token.EventEndNested:
			ends++
		}
	}
	// P3: #Begin == #End (Map, List, Tuple).
	if begins != 3 || ends != 3 {
		t.Fatalf("P3 violated: begins=%d ends=%d", begins, ends)
	}
}

func TestCommentsSurfacedWhenRequested(t *testing.T) {
	p := New("1 // trailing\n", Config{IncludeComments: true})
	evs := collect(t, p)
	var hasComment bool
	for _, ev := range evs {
		if ev.Kind == token.EventComment {
			hasComment = true
		}
	}
	if !hasComment {
		t.Fatalf("expected a Comment event, got %#v", evs)
	}
}

func TestUnexpectedEOFInsideTuple(t *testing.T) {
	p := New("(1,2", Config{})
	_, err := collectUntilError(p)
	rerr, ok := err.(*rsnerr.Error)
	if !ok || rerr.Kind != rsnerr.UnexpectedEof {
		t.Fatalf("expected UnexpectedEof, got %v", err)
	}
}

func TestRawIdentifierNoneIsOrdinaryIdentifier(t *testing.T) {
	p := New("r#None(1)", Config{})
	evs := collect(t, p)
	if evs[0].Kind != token.EventBeginNested || evs[0].Name == nil || evs[0].Name.Value != "None" {
		t.Fatalf("raw r#None should still coalesce as a named tuple, got %#v", evs[0])
	}
}
