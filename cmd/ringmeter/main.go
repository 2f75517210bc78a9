// Command ringmeter renders and plays animated ring graphs.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ringmeter/cmd/ringmeter/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
