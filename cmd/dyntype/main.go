// Command dyntype runs the dynamic-type controls in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/dyntype/cmd/dyntype/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
