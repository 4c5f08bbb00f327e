/*
PURPOSE:
  Entry point for append-results.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Any failure exits non-zero with a human-readable message.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o append-results ./cmd/append-results
  ./append-results bench.tsv gpt-4o
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/append-results/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
