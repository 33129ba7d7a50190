package semantic

import (
	"math"
	"sort"

	"github.com/agenthands/termgraph/internal/core/model"
)

// Defaults for cluster count derivation and seeding.
const (
	DefaultSeed = 42
	minClusters = 2
	maxClusters = 8
)

// Clusterer groups terms by vectorizing their definitions with TF-IDF and
// running seeded k-means. K <= 0 derives the cluster count heuristically.
type Clusterer struct {
	K    int
	Seed int64
}

func NewClusterer(k int, seed int64) *Clusterer {
	return &Clusterer{K: k, Seed: seed}
}

// Result carries the assignment together with the parameters that produced
// it, for experiment tracking.
type Result struct {
	Assignment model.Assignment
	K          int
	Inertia    float64
	// Degenerate is set when clustering was skipped because fewer than two
	// terms were available.
	Degenerate bool
}

// Cluster partitions terms by definition similarity. With fewer than two
// terms clustering is skipped and every term gets cluster id 0. Cluster ids
// in the result are exactly 0..k-1 with no gaps.
func (c *Clusterer) Cluster(definitions map[string]string) Result {
	terms := make([]string, 0, len(definitions))
	for t := range definitions {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	if len(terms) < 2 {
		out := make(model.Assignment, len(terms))
		for _, t := range terms {
			out[t] = 0
		}
		return Result{Assignment: out, K: 1, Degenerate: true}
	}

	docs := make([]string, len(terms))
	for i, t := range terms {
		docs[i] = definitions[t]
	}
	vectors, _ := Vectorize(docs)

	k := c.K
	if k <= 0 {
		k = deriveK(len(terms))
	}
	if k > len(terms) {
		k = len(terms)
	}

	labels, inertia := KMeans(vectors, k, c.Seed)

	// Compact labels so the ids in use are exactly 0..k-1. Remapping follows
	// sorted term order, keeping the assignment deterministic.
	remap := make(map[int]int)
	out := make(model.Assignment, len(terms))
	for i, t := range terms {
		id, ok := remap[labels[i]]
		if !ok {
			id = len(remap)
			remap[labels[i]] = id
		}
		out[t] = id
	}

	return Result{Assignment: out, K: len(remap), Inertia: inertia}
}

// deriveK is the default cluster-count heuristic: round(sqrt(n)) clamped
// into [2, 8].
func deriveK(termCount int) int {
	k := int(math.Round(math.Sqrt(float64(termCount))))
	if k < minClusters {
		k = minClusters
	}
	if k > maxClusters {
		k = maxClusters
	}
	return k
}
