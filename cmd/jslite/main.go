// Command jslite is the CLI front-end over pkg/jslite: lex, parse and
// semantically analyze a source file or an inline expression and print the
// report an embedding IDE would display.
package main

import (
	"fmt"
	"os"

	"github.com/openclassroom/jslite/cmd/jslite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
