package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agenthands/termgraph/internal/core/graph"
)

// WriteGML exports the relationship graph in GML for external graph tools.
// Node ids are sorted-term indices, so the export is deterministic.
func WriteGML(path string, g *graph.TermGraph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	nodes := g.Nodes()
	index := make(map[string]int, len(nodes))

	var b strings.Builder
	b.WriteString("graph [\n")
	for i, term := range nodes {
		index[term] = i
		fmt.Fprintf(&b, "  node [\n    id %d\n    label %q\n  ]\n", i, term)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  edge [\n    source %d\n    target %d\n  ]\n", index[e.A], index[e.B])
	}
	b.WriteString("]\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
