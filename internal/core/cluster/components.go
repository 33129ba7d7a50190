package cluster

import (
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/model"
)

// ComponentsDetector is the fallback partitioner: each connected component
// becomes one cluster and isolated nodes become singleton clusters.
type ComponentsDetector struct{}

func NewComponentsDetector() *ComponentsDetector {
	return &ComponentsDetector{}
}

func (d *ComponentsDetector) Detect(g *graph.TermGraph) (model.Assignment, error) {
	visited := make(map[string]bool, g.NodeCount())
	var groups [][]string

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		var component []string
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)
			for _, neighbor := range g.Neighbors(current) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
		groups = append(groups, component)
	}

	return assign(groups), nil
}
