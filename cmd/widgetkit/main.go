// Command widgetkit runs the widget demo and manages theme files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/widgetkit/cmd/widgetkit/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
