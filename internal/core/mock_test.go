package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/termgraph/internal/tracking"
)

type MockTracker struct {
	Records []tracking.StageRecord
	Err     error
	Closed  bool
}

func (m *MockTracker) Record(rec tracking.StageRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockTracker) Close() error {
	m.Closed = true
	return nil
}

func (m *MockTracker) Stages() []string {
	stages := make([]string, len(m.Records))
	for i, rec := range m.Records {
		stages[i] = rec.Stage
	}
	return stages
}

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

type MockDriver struct {
	Executed []executedQuery
	Err      error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	return neo4j.EagerResult{}, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}
