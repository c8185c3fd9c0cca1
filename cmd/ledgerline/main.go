package main

import (
	"fmt"
	"os"

	"github.com/ledgerline/ledgerline/internal/cmd"
	"github.com/ledgerline/ledgerline/internal/exitcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
