// Package diag converts byte-range spans into human-facing line/column
// diagnostics for the CLI, adapted from the teacher's internal/errors
// package. The core error types (pkg/rsnerr) carry only a token.Span per
// spec.md §7 — this package exists purely so cmd/rsn can print a
// FILE:LINE:COL header, the offending source line, and a caret, the way
// the teacher's CompilerError.Format does.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

// Position is a 1-indexed line/column pair derived from a byte offset.
type Position struct {
	Line   int
	Column int
}

// Locate scans source up to offset, counting newlines, and returns the
// 1-indexed line/column of that byte. Offsets past the end of source
// clamp to the final position.
func Locate(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}

func sourceLine(source string, lineNum int) string {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Format renders err against source, producing a FILE:LINE:COL header
// (File may be empty for inline input), the offending source line, and a
// caret pointing at the span's start column. color wraps the caret in ANSI
// codes when true, mirroring the teacher's Format(bool).
func Format(err *rsnerr.Error, source, file string, color bool) string {
	pos := Locate(source, err.Span.Start)

	var sb strings.Builder
	if file != "" {
		sb.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", file, pos.Line, pos.Column, err.Error()))
	} else {
		sb.WriteString(fmt.Sprintf("%d:%d: %s\n", pos.Line, pos.Column, err.Error()))
	}

	line := sourceLine(source, pos.Line)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

// Span describes a located byte range for callers that want both ends.
func Span(source string, span token.Span) (start, end Position) {
	return Locate(source, span.Start), Locate(source, span.End)
}
