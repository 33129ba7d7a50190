package tracking

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// runRecord is the on-disk shape: the stage record plus run identity.
type runRecord struct {
	RunID   string `json:"run_id"`
	RunName string `json:"run_name,omitempty"`
	Seq     int    `json:"seq"`
	At      string `json:"at"`
	StageRecord
}

// JSONLTracker appends one JSON line per stage to a run log file. Every
// tracker instance gets a fresh run id, so records from repeated runs stay
// distinguishable in the same file.
type JSONLTracker struct {
	RunID   string
	RunName string

	mu   sync.Mutex
	file *os.File
	seq  int
}

func NewJSONLTracker(path, runName string) (*JSONLTracker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	return &JSONLTracker{
		RunID:   uuid.New().String(),
		RunName: runName,
		file:    f,
	}, nil
}

func (t *JSONLTracker) Record(rec StageRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	line, err := json.Marshal(runRecord{
		RunID:       t.RunID,
		RunName:     t.RunName,
		Seq:         t.seq,
		At:          time.Now().UTC().Format(time.RFC3339),
		StageRecord: rec,
	})
	if err != nil {
		return err
	}
	_, err = t.file.Write(append(line, '\n'))
	return err
}

func (t *JSONLTracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.file.Close()
}
