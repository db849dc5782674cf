package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-rsn/cmd/rsn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
