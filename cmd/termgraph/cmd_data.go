package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/agenthands/termgraph/internal/artifact"
	"github.com/agenthands/termgraph/internal/core"
	"github.com/agenthands/termgraph/internal/core/links"
	"github.com/agenthands/termgraph/internal/glossary"
)

func runValidate(cmd *cobra.Command, args []string) {
	path := resolve(args[0])
	g, err := glossary.Load(path)
	if err != nil {
		var malformed *glossary.MalformedGlossaryError
		if errors.As(err, &malformed) {
			for _, v := range malformed.Violations {
				fmt.Printf("entry %d: invalid %s\n", v.Index, v.Field)
			}
			log.Fatalf("Glossary %s is malformed: %d violation(s)", path, len(malformed.Violations))
		}
		log.Fatalf("Error loading glossary: %v", err)
	}
	log.Printf("Glossary %s is valid: %d terms", path, g.Len())
}

func runConvert(cmd *cobra.Command, args []string) {
	mdPath := resolve(args[0])
	jsonPath := resolve(args[1])

	entries, err := glossary.ConvertMarkdown(mdPath, jsonPath, sourceFile)
	if err != nil {
		log.Fatalf("Error converting glossary: %v", err)
	}
	log.Printf("Converted %d entries to %s", len(entries), jsonPath)
}

func runReport(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])

	dict := links.NewExtractor(cfg.Synonyms).Extract(g)
	coverage := core.Coverage(g.Len(), dict)

	fmt.Printf("total terms:    %d\n", coverage.TotalTerms)
	fmt.Printf("linked terms:   %d\n", coverage.CoveredTerms)
	fmt.Printf("coverage:       %.2f%%\n", coverage.CoveragePercent)
	for _, term := range dict.UncoveredTerms() {
		fmt.Printf("unlinked:       %s\n", term)
	}
}

func runEnrich(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])
	out := resolve(args[1])

	dict := links.NewExtractor(cfg.Synonyms).Extract(g)
	entries := glossary.Enrich(g, dict)

	// A .md destination gets the rendered glossary; anything else gets the
	// JSON entry list.
	if strings.EqualFold(filepath.Ext(out), ".md") {
		if err := os.WriteFile(out, []byte(glossary.RenderMarkdown(entries)), 0o644); err != nil {
			log.Fatalf("Error writing enriched glossary: %v", err)
		}
	} else if err := glossary.WriteEntries(out, entries); err != nil {
		log.Fatalf("Error writing enriched glossary: %v", err)
	}
	log.Printf("Wrote %d enriched entries to %s", len(entries), out)
}

func runPublish(cmd *cobra.Command, args []string) {
	outDir := resolve("output:")
	dest := resolve(docsDir)

	if err := os.MkdirAll(dest, 0o755); err != nil {
		log.Fatalf("Error creating docs directory: %v", err)
	}

	copied, err := artifact.PublishDir(outDir, dest)
	if err != nil {
		log.Fatalf("Error publishing artifacts: %v", err)
	}
	for _, path := range copied {
		log.Printf("Published %s", path)
	}
	log.Printf("Published %d artifact(s) to %s", len(copied), dest)
}
