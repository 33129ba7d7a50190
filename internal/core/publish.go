package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/model"
	"github.com/agenthands/termgraph/internal/driver"
	"github.com/agenthands/termgraph/internal/glossary"
)

// PublishGraph writes the relationship graph and both cluster labelings to
// the graph store as :Term nodes and :REFERENCES edges, then removes nodes
// from earlier runs. Publishing is an artifact step; pipeline correctness
// never depends on it.
func PublishGraph(
	ctx context.Context,
	d driver.GraphDriver,
	g *glossary.Glossary,
	tg *graph.TermGraph,
	structural, semantic model.Assignment,
) (string, error) {
	runID := uuid.New().String()
	now := time.Now().UTC()

	for _, term := range tg.Nodes() {
		entry, _ := g.Entry(term)
		params := map[string]interface{}{
			"name":               term,
			"definition":         entry.Definition,
			"structural_cluster": clusterOf(structural, term),
			"semantic_cluster":   clusterOf(semantic, term),
			"run_id":             runID,
			"updated_at":         now,
		}
		if _, err := d.ExecuteQuery(ctx, driver.SaveTermNodeQuery, params); err != nil {
			return "", fmt.Errorf("failed to publish term %q: %w", term, err)
		}
	}

	for _, e := range tg.Edges() {
		params := map[string]interface{}{
			"source": e.A,
			"target": e.B,
			"run_id": runID,
		}
		if _, err := d.ExecuteQuery(ctx, driver.SaveReferenceEdgeQuery, params); err != nil {
			return "", fmt.Errorf("failed to publish edge %s-%s: %w", e.A, e.B, err)
		}
	}

	if _, err := d.ExecuteQuery(ctx, driver.ClearRunQuery, map[string]interface{}{"run_id": runID}); err != nil {
		return "", fmt.Errorf("failed to clear previous runs: %w", err)
	}

	return runID, nil
}

func clusterOf(a model.Assignment, term string) interface{} {
	if c, ok := a[term]; ok {
		return c
	}
	return nil
}
