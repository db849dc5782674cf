package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-rsn/internal/diag"
	"github.com/cwbudde/go-rsn/pkg/rsn"
	"github.com/cwbudde/go-rsn/pkg/rsnerr"
)

var (
	tokEval     string
	tokShowSpan bool
	tokComments bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize an RSN document and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokEval, "eval", "e", "", "tokenize inline text instead of reading from file")
	tokenizeCmd.Flags().BoolVar(&tokShowSpan, "show-span", false, "show each token's byte span")
	tokenizeCmd.Flags().BoolVar(&tokComments, "comments", false, "include comment tokens (Full mode)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, name, err := sourceFromArgs(tokEval, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", name)
		fmt.Printf("Input length: %d bytes\n", len(source))
		fmt.Println("---")
	}

	r := rsn.Tokenize(source, tokComments)
	count := 0
	for {
		tok, terr := r.Next()
		if terr == io.EOF {
			break
		}
		if terr != nil {
			if rerr, ok := terr.(*rsnerr.Error); ok {
				fmt.Fprint(os.Stderr, diag.Format(rerr, source, name, false))
				fmt.Fprintln(os.Stderr)
			}
			return fmt.Errorf("tokenize failed: %w", terr)
		}
		count++
		if tokShowSpan {
			fmt.Printf("[%-10s] %s @%s\n", tok.Kind, describeTokenPayload(tok), tok.Span)
		} else {
			fmt.Printf("[%-10s] %s\n", tok.Kind, describeTokenPayload(tok))
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
	}
	return nil
}
