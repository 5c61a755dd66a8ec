// Command gen-doc renders a synthetic training-overview document to stdout or
// a file. Useful for feeding the text source adapter during development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/testdocs"
)

func main() {
	cfg := testdocs.DefaultConfig()
	flag.IntVar(&cfg.People, "people", cfg.People, "number of persons in the document")
	flag.IntVar(&cfg.ModulesPerTier, "modules", cfg.ModulesPerTier, "number of modules per tier")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	doc := testdocs.Render(testdocs.Generate(cfg))

	if *out == "" {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write document:", err)
		os.Exit(1)
	}
}
