package cluster

import (
	"fmt"
	"sort"

	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/model"
)

// Detector partitions a term graph into clusters. Every node is assigned
// exactly one cluster id and ids form a contiguous range starting at 0.
type Detector interface {
	Detect(g *graph.TermGraph) (model.Assignment, error)
}

// Algorithm names accepted by NewDetector.
const (
	AlgorithmModularity = "modularity"
	AlgorithmComponents = "components"
)

// NewDetector returns the detector for a configured algorithm name. The
// empty string selects greedy modularity, the default.
func NewDetector(algorithm string) (Detector, error) {
	switch algorithm {
	case "", AlgorithmModularity:
		return NewModularityDetector(), nil
	case AlgorithmComponents:
		return NewComponentsDetector(), nil
	default:
		return nil, fmt.Errorf("unknown clustering algorithm %q", algorithm)
	}
}

// assign relabels groups of terms with contiguous cluster ids. Groups are
// ordered by their lexicographically smallest member so repeated runs on the
// same graph produce identical assignments.
func assign(groups [][]string) model.Assignment {
	for _, group := range groups {
		sort.Strings(group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})

	out := make(model.Assignment)
	for id, group := range groups {
		for _, term := range group {
			out[term] = id
		}
	}
	return out
}
