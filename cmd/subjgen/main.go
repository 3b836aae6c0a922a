// Command subjgen is a demonstration CLI over the subjunctive learning
// engine. It exercises the library end to end for manual smoke-testing;
// it is not part of the pure-library contract described by the engine's
// package doc.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "subjgen",
	Short: "Spanish subjunctive learning engine demo CLI",
	Long: `subjgen drives the subjunctive learning engine from the command line:
conjugating verbs, dumping full conjugation tables, generating practice
exercises, and listing cards due for review.

This binary exists to smoke-test the engine interactively; it holds no
persistent state across invocations.`,
}

func init() {
	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dueCmd)
}
