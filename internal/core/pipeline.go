package core

import (
	"log"

	"github.com/agenthands/termgraph/internal/core/cluster"
	"github.com/agenthands/termgraph/internal/core/evaluate"
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/links"
	"github.com/agenthands/termgraph/internal/core/model"
	"github.com/agenthands/termgraph/internal/core/semantic"
	"github.com/agenthands/termgraph/internal/glossary"
	"github.com/agenthands/termgraph/internal/tracking"
)

// Pipeline runs the full batch transform: link extraction, graph building,
// structural and semantic clustering, and agreement scoring. Each stage
// consumes an immutable snapshot of its predecessor's output; the tracker is
// notified after every stage.
type Pipeline struct {
	Extractor *links.Extractor
	Detector  cluster.Detector
	Clusterer *semantic.Clusterer
	Tracker   tracking.Tracker
}

func NewPipeline(extractor *links.Extractor, detector cluster.Detector, clusterer *semantic.Clusterer, tracker tracking.Tracker) *Pipeline {
	if tracker == nil {
		tracker = tracking.NewNopTracker()
	}
	return &Pipeline{
		Extractor: extractor,
		Detector:  detector,
		Clusterer: clusterer,
		Tracker:   tracker,
	}
}

// Run executes the pipeline on a validated glossary.
func (p *Pipeline) Run(g *glossary.Glossary) (*model.PipelineResult, error) {
	dict := p.Extractor.Extract(g)
	p.record("link_extraction", map[string]any{"terms": g.Len()}, map[string]float64{
		"covered_terms": float64(dict.CoveredTerms()),
	})
	return p.RunWithLinks(g, dict)
}

// RunWithLinks executes the pipeline using a pre-existing link dictionary,
// skipping extraction. This is how a stored link dictionary is replayed.
func (p *Pipeline) RunWithLinks(g *glossary.Glossary, dict model.LinkDictionary) (*model.PipelineResult, error) {
	terms := g.Terms()

	tg := graph.Build(terms, dict)
	p.record("graph_build", nil, map[string]float64{
		"nodes": float64(tg.NodeCount()),
		"edges": float64(tg.EdgeCount()),
	})

	structural, err := p.Detector.Detect(tg)
	if err != nil {
		return nil, err
	}
	p.record("structural_clustering", nil, map[string]float64{
		"clusters": float64(structural.ClusterCount()),
	})

	sem := p.Clusterer.Cluster(g.Definitions())
	if sem.Degenerate {
		log.Printf("Semantic clustering skipped: %d term(s) is below the minimum of 2", g.Len())
	}
	p.record("semantic_clustering", map[string]any{"k": sem.K, "seed": p.Clusterer.Seed}, map[string]float64{
		"clusters": float64(sem.Assignment.ClusterCount()),
		"inertia":  sem.Inertia,
	})

	agreement := evaluate.Compare(structural, sem.Assignment)
	if agreement.NoOverlap {
		log.Println("Cluster comparison has no overlapping terms; agreement scores are zero by construction")
	}
	p.record("evaluation", nil, map[string]float64{
		"compared_terms":      float64(agreement.ComparedTerms),
		"raw_agreement":       agreement.RawAgreement,
		"adjusted_rand_index": agreement.AdjustedRandIndex,
	})

	return &model.PipelineResult{
		Links:      dict,
		Structural: structural,
		Semantic:   sem.Assignment,
		Agreement:  agreement,
		Coverage:   Coverage(g.Len(), dict),
		NodeCount:  tg.NodeCount(),
		EdgeCount:  tg.EdgeCount(),
		SemanticK:  sem.K,
	}, nil
}

// Coverage reports how many terms have at least one extracted link.
func Coverage(totalTerms int, dict model.LinkDictionary) model.CoverageReport {
	covered := dict.CoveredTerms()
	var percent float64
	if totalTerms > 0 {
		percent = float64(covered) / float64(totalTerms) * 100
	}
	return model.CoverageReport{
		TotalTerms:      totalTerms,
		CoveredTerms:    covered,
		CoveragePercent: roundTwo(percent),
	}
}

func roundTwo(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func (p *Pipeline) record(stage string, params map[string]any, metrics map[string]float64) {
	err := p.Tracker.Record(tracking.StageRecord{Stage: stage, Params: params, Metrics: metrics})
	if err != nil {
		log.Printf("Warning: failed to record stage %s: %v", stage, err)
	}
}
