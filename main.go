// Package main is the entry point of lucky, a small collection of everyday command-line helpers.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/lucky/internal/cli"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
