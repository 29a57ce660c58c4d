// Package main is the entry point for the hn CLI client.
package main

import (
	"github.com/donaldgifford/hela-notan/cmd/hn/cmd"
)

func main() {
	cmd.Execute()
}
