// Package main provides the entry point for the lhci CLI.
package main

import (
	"fmt"
	"os"

	"github.com/lhci/lhci/cmd/lhci/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
