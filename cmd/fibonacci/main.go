// Package main is the entry point for the fibonacci CLI application.
package main

import (
	"os"

	"github.com/twardoch/pyfs-utils/cmd/fibonacci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
