package cmd

import (
	"testing"

	"github.com/cwbudde/go-rsn/pkg/rsn"
)

func TestSortMapKeys(t *testing.T) {
	v, err := rsn.Decode(`{c:3,a:1,b:2}`, rsn.ReaderConfig{})
	if err != nil {
		t.Fatal(err)
	}
	sortMapKeys(&v)
	if v.Named == nil || len(v.Named.Map) != 3 {
		t.Fatalf("expected 3 pairs, got %#v", v.Named)
	}
	order := []string{
		keyText(v.Named.Map[0].Key),
		keyText(v.Named.Map[1].Key),
		keyText(v.Named.Map[2].Key),
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got order %v, want %v", order, want)
		}
	}
}

func TestSourceFromArgsRequiresInput(t *testing.T) {
	if _, _, err := sourceFromArgs("", nil); err == nil {
		t.Fatal("expected error when neither -e nor a file path is given")
	}
}
