// Package main provides the tally CLI: a word-index tool built on the
// cowl libraries. Indexing folds words through clone-on-write cells and
// counts them in an equivalence-keyed map, probing with borrowed views
// of the scanner's buffer instead of allocating a key per word.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
