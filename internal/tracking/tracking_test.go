package tracking

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, path string) []runRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []runRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec runRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestJSONLTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	tracker, err := NewJSONLTracker(path, "test-run")
	require.NoError(t, err)

	require.NoError(t, tracker.Record(StageRecord{
		Stage:   "link_extraction",
		Metrics: map[string]float64{"covered_terms": 3},
	}))
	require.NoError(t, tracker.Record(StageRecord{
		Stage:  "evaluation",
		Params: map[string]any{"algorithm": "modularity"},
	}))
	require.NoError(t, tracker.Close())

	records := readRecords(t, path)
	require.Len(t, records, 2)

	assert.Equal(t, "link_extraction", records[0].Stage)
	assert.Equal(t, "test-run", records[0].RunName)
	assert.Equal(t, 1, records[0].Seq)
	assert.Equal(t, 2, records[1].Seq)
	assert.NotEmpty(t, records[0].At)
	assert.Equal(t, records[0].RunID, records[1].RunID)
	assert.Equal(t, 3.0, records[0].Metrics["covered_terms"])
}

func TestJSONLTracker_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.jsonl")

	first, err := NewJSONLTracker(path, "")
	require.NoError(t, err)
	require.NoError(t, first.Record(StageRecord{Stage: "a"}))
	require.NoError(t, first.Close())

	second, err := NewJSONLTracker(path, "")
	require.NoError(t, err)
	require.NoError(t, second.Record(StageRecord{Stage: "b"}))
	require.NoError(t, second.Close())

	records := readRecords(t, path)
	require.Len(t, records, 2)
	// Each tracker gets its own run id; records stay distinguishable.
	assert.NotEqual(t, records[0].RunID, records[1].RunID)
}

func TestNopTracker(t *testing.T) {
	tracker := NewNopTracker()
	assert.NoError(t, tracker.Record(StageRecord{Stage: "anything"}))
	assert.NoError(t, tracker.Close())
}
