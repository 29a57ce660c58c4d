// Package main is the entry point for the hela-notan server.
package main

import (
	"os"

	"github.com/donaldgifford/hela-notan/cmd/hela-notan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
