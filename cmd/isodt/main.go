// Package main provides the isodt command, which parses and formats ISO
// 8601-style datetime strings.
package main

import (
	"os"

	"github.com/theory/isodatetime/cmd/isodt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
