package main

import (
	"fmt"
	"os"

	"github.com/lamchakchan/envcheck/internal/cli"
	"github.com/lamchakchan/envcheck/internal/platform"
)

// version is set via -ldflags at build time
var version = "dev"

func main() {
	platform.InitColor()

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
