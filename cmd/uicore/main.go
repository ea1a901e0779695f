// Command uicore runs UI scenes headlessly and prints their draw commands.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/uicore/cmd/uicore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
