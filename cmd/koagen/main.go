// Package main is the entry point for the koagen CLI.
package main

import (
	"os"

	"github.com/thoreinstein/koagen/cmd/koagen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ReportError(os.Stderr, err))
	}
}
