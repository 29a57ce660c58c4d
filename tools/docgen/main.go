// Command docgen writes the hn CLI reference, as markdown for the docs site
// or as man pages for packaging.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/hela-notan/cmd/hn/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	var err error
	switch *format {
	case "markdown":
		err = doc.GenMarkdownTree(root, *output)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "HN",
			Section: "1",
			Source:  "hela-notan",
			Manual:  "Hela Notan CLI",
		}, *output)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("generating %s docs: %v", *format, err)
	}

	fmt.Printf("hn %s docs generated in %s/\n", *format, *output)
}
