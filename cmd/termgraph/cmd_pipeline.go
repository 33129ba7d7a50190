package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/agenthands/termgraph/internal/artifact"
	"github.com/agenthands/termgraph/internal/core"
	"github.com/agenthands/termgraph/internal/core/cluster"
	"github.com/agenthands/termgraph/internal/core/evaluate"
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/links"
	"github.com/agenthands/termgraph/internal/core/semantic"
	"github.com/agenthands/termgraph/internal/driver"
	"github.com/agenthands/termgraph/internal/glossary"
	"github.com/agenthands/termgraph/internal/tracking"
)

func resolver() artifact.Resolver {
	return artifact.Resolver{Root: rootDir}
}

// resolve maps a URI argument onto the workspace root, bypassing the
// resolver for paths that already exist as given.
func resolve(uri string) string {
	if _, err := os.Stat(uri); err == nil {
		return uri
	}
	path, err := resolver().Resolve(uri)
	if err != nil {
		log.Fatalf("Error resolving %q: %v", uri, err)
	}
	return path
}

func loadGlossary(uri string) *glossary.Glossary {
	g, err := glossary.Load(resolve(uri))
	if err != nil {
		log.Fatalf("Error loading glossary: %v", err)
	}
	return g
}

func buildPipeline(tracker tracking.Tracker) *core.Pipeline {
	alg := algorithm
	if alg == "" {
		alg = cfg.Pipeline.Algorithm
	}
	detector, err := cluster.NewDetector(alg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	k := clusterK
	if k == 0 {
		k = cfg.Pipeline.K
	}
	s := seed
	if s == 0 {
		s = cfg.Pipeline.Seed
	}
	if s == 0 {
		s = semantic.DefaultSeed
	}

	return core.NewPipeline(
		links.NewExtractor(cfg.Synonyms),
		detector,
		semantic.NewClusterer(k, s),
		tracker,
	)
}

func runLinks(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])

	dict := links.NewExtractor(cfg.Synonyms).Extract(g)

	out := resolve(outputURI)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}
	if err := artifact.WriteLinkDictionary(out, dict); err != nil {
		log.Fatalf("Error writing link dictionary: %v", err)
	}

	coverage := core.Coverage(g.Len(), dict)
	log.Printf("Wrote %s: %d/%d terms linked (%.2f%%)",
		out, coverage.CoveredTerms, coverage.TotalTerms, coverage.CoveragePercent)
}

func runCluster(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])

	pipeline := buildPipeline(nil)
	result, err := pipeline.Run(g)
	if err != nil {
		log.Fatalf("Error clustering glossary: %v", err)
	}

	outDir := resolve("output:")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	structuralPath := filepath.Join(outDir, "structural_clusters.csv")
	if err := artifact.WriteAssignmentCSV(structuralPath, result.Structural); err != nil {
		log.Fatalf("Error writing structural clusters: %v", err)
	}
	semanticPath := filepath.Join(outDir, "semantic_clusters.csv")
	if err := artifact.WriteAssignmentCSV(semanticPath, result.Semantic); err != nil {
		log.Fatalf("Error writing semantic clusters: %v", err)
	}

	log.Printf("Structural: %d clusters over %d nodes, %d edges",
		result.Structural.ClusterCount(), result.NodeCount, result.EdgeCount)
	log.Printf("Semantic: k=%d over %d terms", result.SemanticK, g.Len())
}

func runEvaluate(cmd *cobra.Command, args []string) {
	a, err := artifact.ReadAssignmentCSV(resolve(args[0]))
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[0], err)
	}
	b, err := artifact.ReadAssignmentCSV(resolve(args[1]))
	if err != nil {
		log.Fatalf("Error reading %s: %v", args[1], err)
	}

	result := evaluate.Compare(a, b)
	if result.NoOverlap {
		log.Println("Warning: assignments share no terms")
	}
	fmt.Printf("compared_terms=%d raw_agreement=%.4f adjusted_rand_index=%.4f\n",
		result.ComparedTerms, result.RawAgreement, result.AdjustedRandIndex)
}

func runPipeline(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])

	tracker := tracking.Tracker(tracking.NewNopTracker())
	trackPath := cfg.Tracking.Path
	if trackPath == "" {
		trackPath = "output:runs.jsonl"
	}
	name := runName
	if name == "" {
		name = cfg.Tracking.RunName
	}
	jsonl, err := tracking.NewJSONLTracker(resolve(trackPath), name)
	if err != nil {
		log.Printf("Warning: tracking disabled: %v", err)
	} else {
		tracker = jsonl
		defer jsonl.Close()
	}

	pipeline := buildPipeline(tracker)
	result, err := pipeline.Run(g)
	if err != nil {
		log.Fatalf("Error running pipeline: %v", err)
	}

	outDir := resolve("output:")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	writes := []struct {
		name string
		fn   func(string) error
	}{
		{"links.json", func(p string) error { return artifact.WriteLinkDictionary(p, result.Links) }},
		{"structural_clusters.csv", func(p string) error { return artifact.WriteAssignmentCSV(p, result.Structural) }},
		{"semantic_clusters.csv", func(p string) error { return artifact.WriteAssignmentCSV(p, result.Semantic) }},
		{"agreement.json", func(p string) error { return artifact.WriteAgreement(p, result.Agreement) }},
		{"coverage.json", func(p string) error { return artifact.WriteCoverage(p, result.Coverage) }},
		{"result.json", func(p string) error { return artifact.WriteResult(p, result) }},
	}
	for _, w := range writes {
		if err := w.fn(filepath.Join(outDir, w.name)); err != nil {
			log.Fatalf("Error writing %s: %v", w.name, err)
		}
	}

	tg := graph.Build(g.Terms(), result.Links)
	if err := artifact.WriteGML(filepath.Join(outDir, "term_graph.gml"), tg); err != nil {
		log.Fatalf("Error writing term graph: %v", err)
	}

	log.Printf("Pipeline complete: %d terms, %d edges, ARI %.4f",
		g.Len(), result.EdgeCount, result.Agreement.AdjustedRandIndex)
}

func runPush(cmd *cobra.Command, args []string) {
	g := loadGlossary(args[0])

	pipeline := buildPipeline(nil)
	result, err := pipeline.Run(g)
	if err != nil {
		log.Fatalf("Error running pipeline: %v", err)
	}

	uri := cfg.Memgraph.URI
	if env := os.Getenv("MEMGRAPH_URI"); env != "" {
		uri = env
	}
	if uri == "" {
		uri = "bolt://localhost:7687"
	}

	d, err := driver.NewMemgraphDriver(uri, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Error connecting to Memgraph: %v", err)
	}
	ctx := context.Background()
	defer d.Close(ctx)

	if err := d.BuildIndices(ctx); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	tg := graph.Build(g.Terms(), result.Links)
	runID, err := core.PublishGraph(ctx, d, g, tg, result.Structural, result.Semantic)
	if err != nil {
		log.Fatalf("Error publishing graph: %v", err)
	}
	log.Printf("Published run %s: %d terms, %d edges", runID, tg.NodeCount(), tg.EdgeCount())
}
