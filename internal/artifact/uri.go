package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolver maps logical URIs like "data:glossary.json" onto a workspace
// root, keeping artifact paths reproducible across environments.
type Resolver struct {
	Root string
}

var uriPrefixes = map[string]string{
	"data":   "data",
	"output": "output",
	"docs":   "docs",
}

// Resolve turns a logical URI into a filesystem path. Strings without a
// known prefix are treated as paths relative to the root.
func (r Resolver) Resolve(uri string) (string, error) {
	prefix, name, ok := strings.Cut(uri, ":")
	if !ok {
		return filepath.Join(r.Root, uri), nil
	}
	dir, known := uriPrefixes[prefix]
	if !known {
		return "", fmt.Errorf("unknown URI prefix %q", prefix)
	}
	return filepath.Join(r.Root, dir, name), nil
}
