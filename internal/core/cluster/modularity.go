package cluster

import (
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/model"
)

// ModularityDetector implements greedy modularity maximization (CNM):
// starting from singleton communities, repeatedly merge the pair of
// communities with the largest modularity gain until no merge improves
// modularity. Ties break on the smallest community id pair, which is fixed
// by sorted node order, so detection is fully deterministic.
type ModularityDetector struct{}

func NewModularityDetector() *ModularityDetector {
	return &ModularityDetector{}
}

func (d *ModularityDetector) Detect(g *graph.TermGraph) (model.Assignment, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return model.Assignment{}, nil
	}

	m := float64(g.EdgeCount())
	if m == 0 {
		// No edges: every node is its own community.
		groups := make([][]string, len(nodes))
		for i, n := range nodes {
			groups[i] = []string{n}
		}
		return assign(groups), nil
	}

	// Community state. Ids start as sorted node indices; a merge keeps the
	// smaller id alive.
	nodeComm := make(map[string]int, len(nodes))
	members := make(map[int][]string, len(nodes))
	degreeSum := make(map[int]float64, len(nodes))
	for i, n := range nodes {
		nodeComm[n] = i
		members[i] = []string{n}
		degreeSum[i] = float64(g.Degree(n))
	}

	// between[i][j] counts edges between communities i and j (i < j).
	between := make(map[int]map[int]float64)
	addBetween := func(i, j int, w float64) {
		if i > j {
			i, j = j, i
		}
		if between[i] == nil {
			between[i] = make(map[int]float64)
		}
		between[i][j] += w
	}
	for _, e := range g.Edges() {
		addBetween(nodeComm[e.A], nodeComm[e.B], 1)
	}

	for {
		// Find the connected pair with the largest modularity gain:
		// deltaQ = L_ij/m - d_i*d_j/(2m^2). Disconnected pairs always have
		// negative gain, so only pairs with between-edges are considered.
		bestI, bestJ := -1, -1
		bestDelta := 0.0
		for i, row := range between {
			for j, edges := range row {
				if edges == 0 {
					continue
				}
				delta := edges/m - degreeSum[i]*degreeSum[j]/(2*m*m)
				if delta > bestDelta ||
					(delta == bestDelta && bestI >= 0 && (i < bestI || (i == bestI && j < bestJ))) {
					bestDelta = delta
					bestI, bestJ = i, j
				}
			}
		}
		if bestI < 0 || bestDelta <= 0 {
			break
		}
		d.merge(bestI, bestJ, members, degreeSum, between)
	}

	groups := make([][]string, 0, len(members))
	for _, group := range members {
		groups = append(groups, group)
	}
	return assign(groups), nil
}

// merge folds community j into community i and rewires the between-edge
// counts so j disappears from the state.
func (d *ModularityDetector) merge(
	i, j int,
	members map[int][]string,
	degreeSum map[int]float64,
	between map[int]map[int]float64,
) {
	members[i] = append(members[i], members[j]...)
	delete(members, j)
	degreeSum[i] += degreeSum[j]
	delete(degreeSum, j)

	// Move every edge count touching j onto i.
	get := func(a, b int) float64 {
		if a > b {
			a, b = b, a
		}
		if row, ok := between[a]; ok {
			return row[b]
		}
		return 0
	}
	remove := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		if row, ok := between[a]; ok {
			delete(row, b)
			if len(row) == 0 {
				delete(between, a)
			}
		}
	}
	set := func(a, b int, w float64) {
		if a > b {
			a, b = b, a
		}
		if between[a] == nil {
			between[a] = make(map[int]float64)
		}
		between[a][b] = w
	}

	remove(i, j)
	for k := range degreeSum {
		if k == i {
			continue
		}
		w := get(j, k)
		if w == 0 {
			continue
		}
		remove(j, k)
		set(i, k, get(i, k)+w)
	}
	delete(between, j)
}
