package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agenthands/termgraph/internal/core/model"
)

// WriteLinkDictionary persists the link dictionary as indented JSON.
func WriteLinkDictionary(path string, dict model.LinkDictionary) error {
	return writeJSON(path, dict)
}

// ReadLinkDictionary loads a previously written link dictionary.
func ReadLinkDictionary(path string) (model.LinkDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("link dictionary not found: %w", err)
	}
	var dict model.LinkDictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse link dictionary: %w", err)
	}
	return dict, nil
}

// WriteAgreement persists the agreement metrics.
func WriteAgreement(path string, result model.AgreementResult) error {
	return writeJSON(path, result)
}

// WriteCoverage persists the link coverage report.
func WriteCoverage(path string, report model.CoverageReport) error {
	return writeJSON(path, report)
}

// WriteResult persists the full pipeline result.
func WriteResult(path string, result *model.PipelineResult) error {
	return writeJSON(path, result)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
