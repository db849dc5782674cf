package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/go-rsn/internal/diag"
	"github.com/cwbudde/go-rsn/pkg/rsn"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
	"github.com/cwbudde/go-rsn/pkg/value"
	"github.com/cwbudde/go-rsn/pkg/writer"
)

var (
	fmtEval      string
	fmtCompact   bool
	fmtSortKeys  bool
	fmtIndent    string
	fmtNormalize bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parse and re-render an RSN document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().StringVarP(&fmtEval, "eval", "e", "", "format inline text instead of reading from file")
	fmtCmd.Flags().BoolVar(&fmtCompact, "compact", false, "emit compact output instead of the pretty default")
	fmtCmd.Flags().BoolVar(&fmtSortKeys, "sort-keys", false, "order each map's pairs by locale-stable collation key before writing")
	fmtCmd.Flags().StringVar(&fmtIndent, "indent", "  ", "pretty-mode indentation string")
	fmtCmd.Flags().BoolVar(&fmtNormalize, "normalize-strings", false, "NFC-normalize string literal content before rendering")
}

func runFmt(cmd *cobra.Command, args []string) error {
	source, name, err := sourceFromArgs(fmtEval, args)
	if err != nil {
		return err
	}

	v, derr := rsn.Decode(source, rsn.ReaderConfig{})
	if derr != nil {
		if rerr, ok := derr.(*rsnerr.Error); ok {
			fmt.Fprint(os.Stderr, diag.Format(rerr, source, name, false))
			fmt.Fprintln(os.Stderr)
		}
		return fmt.Errorf("parse failed")
	}

	if fmtSortKeys {
		sortMapKeys(&v)
	}

	cfg := writer.Config{NormalizeStrings: fmtNormalize}
	if !fmtCompact {
		cfg.Pretty = true
		cfg.Indentation = fmtIndent
		cfg.Newline = "\n"
	}

	fmt.Println(rsn.Write(v, cfg))
	return nil
}

// sortMapKeys reorders every map's pairs (anonymous, implicit-top-level,
// or named) in place, ordering by a locale-stable collation key over each
// pair's rendered key text. This is purely a `fmt` CLI convenience per
// SPEC_FULL.md's DOMAIN STACK section — the core writer and value model
// remain ordered-pairs-with-duplicates, unaffected by this reordering.
func sortMapKeys(v *value.Value) {
	col := collate.New(language.English)

	switch v.Kind {
	case value.LitTuple, value.LitArray:
		elems := v.Tuple
		if v.Kind == value.LitArray {
			elems = v.Array
		}
		for i := range elems {
			sortMapKeys(&elems[i])
		}
	case value.LitNamed:
		if v.Named == nil {
			return
		}
		switch v.Named.Payload {
		case value.NamedMap:
			for i := range v.Named.Map {
				sortMapKeys(&v.Named.Map[i].Key)
				sortMapKeys(&v.Named.Map[i].Val)
			}
			sort.SliceStable(v.Named.Map, func(i, j int) bool {
				return col.CompareString(keyText(v.Named.Map[i].Key), keyText(v.Named.Map[j].Key)) < 0
			})
		case value.NamedTuple:
			for i := range v.Named.Tuple {
				sortMapKeys(&v.Named.Tuple[i])
			}
		}
	}
}

// keyText renders a map key's text for collation purposes: identifiers
// and strings compare by their literal value, everything else falls back
// to its writer rendering.
func keyText(v value.Value) string {
	switch v.Kind {
	case value.LitIdentifier:
		return v.Ident.Value
	case value.LitString:
		return v.Str.Value
	default:
		return rsn.Write(v, writer.Config{})
	}
}
