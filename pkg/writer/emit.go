package writer

import "github.com/cwbudde/go-rsn/pkg/value"

// EmitValue drives w through the begin/write/finish calls needed to
// render v, the inverse of pkg/value.Decode folding parser events into a
// tree (spec.md §4.5's writer is, by design, symmetric with the parser:
// "the writer maintains a stack of container states parallel to the
// parser's").
func EmitValue(w *Writer, v value.Value) {
	switch v.Kind {
	case value.LitBool:
		w.WriteBool(v.Bool)
	case value.LitInteger:
		w.WriteInteger(v.Int)
	case value.LitFloat:
		w.WriteFloat(v.Float)
	case value.LitChar:
		w.WriteChar(v.Char)
	case value.LitByte:
		w.WriteByteChar(v.Byte)
	case value.LitString:
		w.WriteString(v.Str.Value)
	case value.LitBytes:
		w.WriteBytes(v.Bytes.Value)
	case value.LitIdentifier:
		w.WriteRawValue(identifierText(v.Ident.Value, v.IdentRaw))
	case value.LitTuple:
		w.BeginTuple()
		for _, elem := range v.Tuple {
			EmitValue(w, elem)
		}
		w.FinishNested()
	case value.LitArray:
		w.BeginList()
		for _, elem := range v.Array {
			EmitValue(w, elem)
		}
		w.FinishNested()
	case value.LitNamed:
		emitNamed(w, v.Named)
	}
}

func emitNamed(w *Writer, n *value.Named) {
	if n == nil {
		return
	}
	switch n.Payload {
	case value.NamedMap:
		if n.Name != nil {
			w.BeginNamedMap(identifierText(*n.Name, n.NameRaw))
		} else {
			w.BeginMap()
		}
		for _, pair := range n.Map {
			EmitValue(w, pair.Key)
			EmitValue(w, pair.Val)
		}
		w.FinishNested()
	case value.NamedTuple:
		if n.Name != nil {
			w.BeginNamedTuple(identifierText(*n.Name, n.NameRaw))
		} else {
			w.BeginTuple()
		}
		for _, elem := range n.Tuple {
			EmitValue(w, elem)
		}
		w.FinishNested()
	}
}

// identifierText re-adds the "r#" raw-identifier prefix stripped at
// decode time, so a raw identifier or named prefix round-trips back to
// its original spelling instead of silently becoming a plain one
// (spec.md property P7).
func identifierText(name string, raw bool) string {
	if raw {
		return "r#" + name
	}
	return name
}
