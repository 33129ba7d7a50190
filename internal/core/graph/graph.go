package graph

import (
	"sort"

	"github.com/agenthands/termgraph/internal/core/model"
)

// Edge is an unordered term pair, stored with A < B.
type Edge struct {
	A string
	B string
}

// TermGraph is the undirected relationship graph: one node per known term,
// one edge per referenced pair. Immutable after Build.
type TermGraph struct {
	nodes    []string
	nodeSet  map[string]struct{}
	edges    []Edge
	adjacent map[string][]string
}

// Build constructs the graph from a link dictionary. Every known term gets a
// node, isolated or not. An edge is added when either side references the
// other and both sides are known terms; references to unknown terms are
// silently dropped. Edges are deduplicated regardless of direction.
func Build(terms []string, dict model.LinkDictionary) *TermGraph {
	g := &TermGraph{
		nodeSet:  make(map[string]struct{}, len(terms)),
		adjacent: make(map[string][]string, len(terms)),
	}
	for _, t := range terms {
		if _, ok := g.nodeSet[t]; ok {
			continue
		}
		g.nodeSet[t] = struct{}{}
		g.nodes = append(g.nodes, t)
	}
	sort.Strings(g.nodes)

	seen := make(map[Edge]struct{})
	for term, related := range dict {
		if _, ok := g.nodeSet[term]; !ok {
			continue
		}
		for _, other := range related {
			if _, ok := g.nodeSet[other]; !ok {
				continue
			}
			if term == other {
				continue
			}
			e := normalize(term, other)
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			g.edges = append(g.edges, e)
			g.adjacent[e.A] = append(g.adjacent[e.A], e.B)
			g.adjacent[e.B] = append(g.adjacent[e.B], e.A)
		}
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].A != g.edges[j].A {
			return g.edges[i].A < g.edges[j].A
		}
		return g.edges[i].B < g.edges[j].B
	})
	for _, neighbors := range g.adjacent {
		sort.Strings(neighbors)
	}
	return g
}

func normalize(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Nodes returns all terms in sorted order.
func (g *TermGraph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in sorted order.
func (g *TermGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the sorted adjacency list of a term.
func (g *TermGraph) Neighbors(term string) []string {
	neighbors := g.adjacent[term]
	out := make([]string, len(neighbors))
	copy(out, neighbors)
	return out
}

// Degree returns the number of edges incident to a term.
func (g *TermGraph) Degree(term string) int {
	return len(g.adjacent[term])
}

// HasNode reports whether a term is a node in the graph.
func (g *TermGraph) HasNode(term string) bool {
	_, ok := g.nodeSet[term]
	return ok
}

// NodeCount returns the number of nodes.
func (g *TermGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct undirected edges.
func (g *TermGraph) EdgeCount() int { return len(g.edges) }
