package cmd

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readSource reads path and strips a UTF-8/UTF-16 byte-order-mark,
// adapted from the teacher's internal/interp/encoding.go technique:
// unicode.BOMOverride applied with transform.Bytes handles all three
// BOM forms uniformly (rather than hand-checking the UTF-8 BOM only, as
// the teacher's lexer.New does for its own bare-UTF-8 case).
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	e := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(e, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return string(decoded), nil
}
