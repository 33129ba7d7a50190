package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/agenthands/termgraph/internal/core/model"
)

// WriteAssignmentCSV writes a cluster assignment table with a "term,cluster"
// header, rows in sorted term order. The write-then-read round trip
// reproduces the exact same assignment.
func WriteAssignmentCSV(path string, a model.Assignment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"term", "cluster"}); err != nil {
		return err
	}
	for _, term := range a.Terms() {
		if err := w.Write([]string{term, strconv.Itoa(a[term])}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadAssignmentCSV reads an assignment table written by WriteAssignmentCSV.
func ReadAssignmentCSV(path string) (model.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assignment table not found: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse assignment table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("assignment table %s is empty", path)
	}

	out := make(model.Assignment, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) != 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+2, len(row))
		}
		id, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad cluster id %q: %w", i+2, row[1], err)
		}
		out[row[0]] = id
	}
	return out, nil
}
