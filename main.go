// package main provides the entry point for the command-center binary, which serves the
// IT operations dashboard over REST and GraphQL, prints reports and renders a terminal view.
package main

import (
	"fmt"
	"os"

	"github.com/ortelius/command-center/cli"
)

func main() {
	if err := cli.NewCommand("command-center").Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
