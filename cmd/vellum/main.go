// Command vellum is a CLI for building and rendering constructed-language
// lexicons from a directory of tree, etymology, and phonetics files, per
// spec.md §6, grounded on nihei9-vartan/cmd/vartan's init()-registered
// subcommand layout and the Rust original's cli.rs command set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
