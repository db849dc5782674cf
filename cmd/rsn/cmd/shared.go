package cmd

import (
	"fmt"

	"github.com/cwbudde/go-rsn/pkg/token"
)

// sourceFromArgs resolves input text from either an -e/--eval flag or a
// single file argument, mirroring the teacher's lex.go input-resolution
// pattern.
func sourceFromArgs(eval string, args []string) (source, name string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		text, err := readSource(args[0])
		if err != nil {
			return "", "", err
		}
		return text, args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline text")
}

// describeTokenPayload renders a token's payload for display, the tokenize
// subcommand's equivalent of the teacher's printToken literal formatting.
func describeTokenPayload(tok token.Token) string {
	switch tok.Kind {
	case token.KindInteger:
		return tok.Int.String()
	case token.KindFloat:
		return fmt.Sprintf("%g", tok.Float)
	case token.KindBool:
		return fmt.Sprintf("%t", tok.Bool)
	case token.KindChar:
		return fmt.Sprintf("%q", tok.Char)
	case token.KindByte:
		return fmt.Sprintf("b'%02x'", tok.Byte)
	case token.KindString:
		return fmt.Sprintf("%q", tok.Str.Value)
	case token.KindBytes:
		return fmt.Sprintf("%q", tok.Bytes.Value)
	case token.KindIdentifier:
		return tok.Ident.Value
	case token.KindOpen:
		return string(tok.Delim.Open())
	case token.KindClose:
		return string(tok.Delim.Close())
	case token.KindColon:
		return ":"
	case token.KindComma:
		return ","
	case token.KindComment:
		return tok.Comment
	default:
		return ""
	}
}
