// Package writer implements the RSN text emitter described in spec.md
// §4.5: a stateful writer that mirrors the parser's own nesting stack in
// reverse, driven by begin/write/finish calls rather than by pulling
// events. It is grounded on original_source/src/writer.rs, whose
// NestedState/SequenceState/MapState machine and escape table are
// reproduced here with the same names translated into Go idiom.
package writer

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-rsn/pkg/token"
)

// sequenceState tracks whether a List/Tuple has emitted its first element.
type sequenceState int

const (
	seqEmpty sequenceState = iota
	seqNotEmpty
)

// mapState tracks where a Map sits within one key/value entry.
type mapState int

const (
	mapEmpty mapState = iota
	mapAfterKey
	mapAfterEntry
)

type nested struct {
	kind token.NestedKind
	seq  sequenceState
	m    mapState
}

// Config selects the writer's whitespace behaviour. The zero value is
// Compact. Use Pretty for an indenting variant.
type Config struct {
	Pretty bool

	// Indentation and Newline are only consulted when Pretty is true.
	Indentation string
	Newline     string

	// NormalizeStrings NFC-normalizes string-literal payloads before
	// escaping, using golang.org/x/text/unicode/norm. Off by default:
	// spec.md's round-trip property P7 requires the writer reproduce the
	// decoded text exactly, and normalizing would break that property for
	// any caller relying on byte-exact round-trips. Opt-in for callers (the
	// `rsn fmt` CLI) that want canonicalized output instead.
	NormalizeStrings bool
}

// PrettyDefault returns the conventional two-space pretty configuration.
func PrettyDefault() Config {
	return Config{Pretty: true, Indentation: "  ", Newline: "\n"}
}

// Writer builds RSN text by a sequence of begin/write/finish calls, one
// output buffer per Writer instance (spec.md §5: "the writer's output
// text is exclusive to one writer").
type Writer struct {
	out    strings.Builder
	nested []nested
	cfg    Config
}

// New returns a Writer using cfg.
func New(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

// Finish returns the accumulated text. Calling it while a container is
// still open is a programming error (mirrors original_source's
// `assert!(self.nested.is_empty())`).
func (w *Writer) Finish() string {
	if len(w.nested) != 0 {
		panic("writer: Finish called with an open container")
	}
	return w.out.String()
}

func (w *Writer) insertNewline() {
	if !w.cfg.Pretty {
		return
	}
	w.out.WriteString(w.cfg.Newline)
	for i := 0; i < len(w.nested); i++ {
		w.out.WriteString(w.cfg.Indentation)
	}
}

// prepareToWriteValue applies spec.md §4.5's value-emission prelude
// against the current top-of-stack state, before any value (primitive,
// nested-begin, or raw) is written.
func (w *Writer) prepareToWriteValue() {
	if len(w.nested) == 0 {
		return
	}
	top := &w.nested[len(w.nested)-1]
	switch top.kind {
	case token.Tuple, token.List:
		if top.seq == seqEmpty {
			top.seq = seqNotEmpty
			w.insertNewline()
		} else {
			w.out.WriteByte(',')
			w.insertNewline()
		}
	case token.Map:
		switch top.m {
		case mapEmpty:
			top.m = mapAfterKey
			w.insertNewline()
		case mapAfterEntry:
			top.m = mapAfterKey
			w.out.WriteByte(',')
			w.insertNewline()
		case mapAfterKey:
			top.m = mapAfterEntry
			if w.cfg.Pretty {
				w.out.WriteString(": ")
			} else {
				w.out.WriteByte(':')
			}
		}
	}
}

// BeginMap opens an anonymous `{...}` map.
func (w *Writer) BeginMap() {
	w.prepareToWriteValue()
	w.out.WriteByte('{')
	w.nested = append(w.nested, nested{kind: token.Map})
}

// BeginNamedMap opens a `Name {...}` map. Pretty mode inserts a space
// before the brace; Compact does not (spec.md §4.5).
func (w *Writer) BeginNamedMap(name string) {
	w.prepareToWriteValue()
	w.out.WriteString(name)
	if w.cfg.Pretty {
		w.out.WriteByte(' ')
	}
	w.out.WriteByte('{')
	w.nested = append(w.nested, nested{kind: token.Map})
}

// BeginTuple opens an anonymous `(...)` tuple.
func (w *Writer) BeginTuple() {
	w.prepareToWriteValue()
	w.out.WriteByte('(')
	w.nested = append(w.nested, nested{kind: token.Tuple})
}

// BeginNamedTuple opens a `Name(...)` tuple.
func (w *Writer) BeginNamedTuple(name string) {
	w.prepareToWriteValue()
	w.out.WriteString(name)
	w.out.WriteByte('(')
	w.nested = append(w.nested, nested{kind: token.Tuple})
}

// BeginList opens a `[...]` list.
func (w *Writer) BeginList() {
	w.prepareToWriteValue()
	w.out.WriteByte('[')
	w.nested = append(w.nested, nested{kind: token.List})
}

// FinishNested closes the innermost open container, emitting its closing
// delimiter (preceded by a newline+indent in pretty mode if non-empty).
func (w *Writer) FinishNested() {
	if len(w.nested) == 0 {
		panic("writer: FinishNested called with no open container")
	}
	top := w.nested[len(w.nested)-1]
	w.nested = w.nested[:len(w.nested)-1]
	switch top.kind {
	case token.Tuple:
		if top.seq == seqNotEmpty {
			w.insertNewline()
		}
		w.out.WriteByte(')')
	case token.List:
		if top.seq == seqNotEmpty {
			w.insertNewline()
		}
		w.out.WriteByte(']')
	case token.Map:
		switch top.m {
		case mapAfterEntry:
			w.insertNewline()
			w.out.WriteByte('}')
		case mapEmpty:
			w.out.WriteByte('}')
		default:
			panic("writer: FinishNested on a map with a dangling key")
		}
	}
}

// WriteRawValue writes text verbatim as a value position — used for
// identifier literals (bare words, unlifted None) that are not escaped.
func (w *Writer) WriteRawValue(text string) {
	w.prepareToWriteValue()
	w.out.WriteString(text)
}

// WriteBool writes a boolean primitive.
func (w *Writer) WriteBool(b bool) {
	w.prepareToWriteValue()
	if b {
		w.out.WriteString("true")
	} else {
		w.out.WriteString("false")
	}
}

// WriteInteger writes an integer primitive in plain base-10.
func (w *Writer) WriteInteger(v token.Integer) {
	w.prepareToWriteValue()
	w.out.WriteString(v.String())
}

// WriteFloat writes a float primitive in its shortest round-trip decimal
// form (spec.md §4.5). An integral value gets a ".0" suffix so that it
// reads back as a float rather than an integer.
func (w *Writer) WriteFloat(v float64) {
	w.prepareToWriteValue()
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	w.out.WriteString(s)
}

// WriteString writes a string primitive, double-quoted and escaped per
// the default escape table.
func (w *Writer) WriteString(s string) {
	w.prepareToWriteValue()
	if w.cfg.NormalizeStrings {
		s = norm.NFC.String(s)
	}
	w.out.WriteByte('"')
	escapeStringInto(&w.out, s)
	w.out.WriteByte('"')
}

// WriteChar writes a char primitive, single-quoted and escaped.
func (w *Writer) WriteChar(r rune) {
	w.prepareToWriteValue()
	w.out.WriteByte('\'')
	escapeRuneInto(&w.out, r)
	w.out.WriteByte('\'')
}

// WriteByteChar writes a byte-char primitive (b'x').
func (w *Writer) WriteByteChar(b byte) {
	w.prepareToWriteValue()
	w.out.WriteString("b'")
	escapeByteInto(&w.out, b)
	w.out.WriteByte('\'')
}

// WriteBytes writes a byte-string primitive (b"..."), hex-escaping every
// non-ASCII byte.
func (w *Writer) WriteBytes(b []byte) {
	w.prepareToWriteValue()
	w.out.WriteString(`b"`)
	for _, by := range b {
		escapeByteInto(&w.out, by)
	}
	w.out.WriteByte('"')
}

func escapeStringInto(out *strings.Builder, s string) {
	for _, r := range s {
		escapeRuneInto(out, r)
	}
}

func escapeRuneInto(out *strings.Builder, r rune) {
	if r >= 0 && r < 128 {
		if esc, ok := hasEscape(byte(r)); ok {
			out.WriteString(esc)
			return
		}
	}
	out.WriteRune(r)
}

func escapeByteInto(out *strings.Builder, b byte) {
	if esc, ok := hasEscape(b); ok {
		out.WriteString(esc)
		return
	}
	if b < 0x80 {
		out.WriteByte(b)
		return
	}
	out.WriteString("\\x")
	const hexDigits = "0123456789abcdef"
	out.WriteByte(hexDigits[b>>4])
	out.WriteByte(hexDigits[b&0xf])
}
