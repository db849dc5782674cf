package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-rsn/internal/diag"
	"github.com/cwbudde/go-rsn/pkg/rsn"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/token"
)

var (
	parseEval         string
	parseImplicitMap  bool
	parseShowComments bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an RSN document and print the resulting event stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline text instead of reading from file")
	parseCmd.Flags().BoolVar(&parseImplicitMap, "implicit-map", false, "allow a top-level unbraced map")
	parseCmd.Flags().BoolVar(&parseShowComments, "comments", false, "include Comment events")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, name, err := sourceFromArgs(parseEval, args)
	if err != nil {
		return err
	}

	r := rsn.Parse(source, rsn.ReaderConfig{
		IncludeComments:  parseShowComments,
		AllowImplicitMap: parseImplicitMap,
	})

	depth := 0
	for {
		ev, perr := r.Next()
		if perr == io.EOF {
			break
		}
		if perr != nil {
			if rerr, ok := perr.(*rsnerr.Error); ok {
				fmt.Fprint(os.Stderr, diag.Format(rerr, source, name, false))
				fmt.Fprintln(os.Stderr)
			}
			return fmt.Errorf("parse failed: %w", perr)
		}

		indent := strings.Repeat("  ", depth)
		switch ev.Kind {
		case token.EventBeginNested:
			if ev.Name != nil {
				fmt.Printf("%sBeginNested(%s, %s)\n", indent, ev.Name.Value, ev.Nested)
			} else {
				fmt.Printf("%sBeginNested(%s)\n", indent, ev.Nested)
			}
			depth++
		case token.EventEndNested:
			depth--
			fmt.Printf("%sEndNested(%s)\n", strings.Repeat("  ", depth), ev.Nested)
		case token.EventPrimitive:
			fmt.Printf("%sPrimitive(%s)\n", indent, describePrimitive(ev.Prim))
		case token.EventComment:
			fmt.Printf("%sComment(%q)\n", indent, ev.Comment)
		}
	}
	return nil
}

func describePrimitive(p token.Primitive) string {
	switch p.Kind {
	case token.PrimBool:
		return fmt.Sprintf("%t", p.Bool)
	case token.PrimInteger:
		return p.Int.String()
	case token.PrimFloat:
		return fmt.Sprintf("%g", p.Float)
	case token.PrimChar:
		return fmt.Sprintf("%q", p.Char)
	case token.PrimByte:
		return fmt.Sprintf("b'%02x'", p.Byte)
	case token.PrimString:
		return fmt.Sprintf("%q", p.Str.Value)
	case token.PrimBytes:
		return fmt.Sprintf("%q", p.Bytes.Value)
	case token.PrimIdentifier:
		return p.Ident.Value
	default:
		return "?"
	}
}
