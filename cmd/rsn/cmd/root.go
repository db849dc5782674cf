// Package cmd implements the rsn CLI's cobra commands, modeled directly
// on the teacher's cmd/dwscript/cmd package: a package-level rootCmd,
// subcommands registered from init(), RunE-style handlers, a persistent
// -v/--verbose flag, and an exitWithError stderr helper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "rsn",
	Short:   "RSN data-interchange text format codec",
	Version: Version,
	Long: `rsn tokenizes, parses, validates, and formats RSN ("Rust Simple
Notation"-style) data-interchange text: a compact literal syntax for
primitives, named/unnamed tuples, lists, and maps.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
