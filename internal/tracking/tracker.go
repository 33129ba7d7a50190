// Package tracking records pipeline runs: one record per completed stage
// with its parameters, metrics, and produced artifacts. The tracker is an
// explicitly passed collaborator, never process-global state.
package tracking

// StageRecord is one completed pipeline stage.
type StageRecord struct {
	Stage     string             `json:"stage"`
	Params    map[string]any     `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
	Artifacts []string           `json:"artifacts,omitempty"`
}

// Tracker receives a record after each pipeline stage completes.
type Tracker interface {
	Record(rec StageRecord) error
	Close() error
}

// NopTracker discards everything. Used when tracking is not configured.
type NopTracker struct{}

func NewNopTracker() *NopTracker { return &NopTracker{} }

func (*NopTracker) Record(StageRecord) error { return nil }
func (*NopTracker) Close() error             { return nil }
