package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-rsn/internal/diag"
	"github.com/cwbudde/go-rsn/pkg/rsn"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
)

var (
	validateEval        string
	validateImplicitMap bool
)

// validateCmd parses a file and reports success or the first error only,
// a thin convenience wrapping the parser — grounded on the teacher's
// lex.go's --only-errors mode, applied to the parse layer instead of the
// lex layer.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse an RSN document and report success or the first error",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateEval, "eval", "e", "", "validate inline text instead of reading from file")
	validateCmd.Flags().BoolVar(&validateImplicitMap, "implicit-map", false, "allow a top-level unbraced map")
}

func runValidate(cmd *cobra.Command, args []string) error {
	source, name, err := sourceFromArgs(validateEval, args)
	if err != nil {
		return err
	}

	_, derr := rsn.Decode(source, rsn.ReaderConfig{AllowImplicitMap: validateImplicitMap})
	if derr != nil {
		if rerr, ok := derr.(*rsnerr.Error); ok {
			fmt.Fprint(os.Stderr, diag.Format(rerr, source, name, false))
			fmt.Fprintln(os.Stderr)
		}
		return fmt.Errorf("validation failed")
	}

	fmt.Printf("%s: OK\n", name)
	return nil
}
