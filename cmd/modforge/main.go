// Package main is the entry point for the modforge CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/modforge/cli/internal/choose"
	"github.com/modforge/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// A user abort is not an error worth printing.
		if errors.Is(err, choose.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(cmd.ExitCodeFromError(err))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
