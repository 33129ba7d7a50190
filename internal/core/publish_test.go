package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/model"
	"github.com/agenthands/termgraph/internal/driver"
	"github.com/agenthands/termgraph/internal/glossary"
)

func TestPublishGraph(t *testing.T) {
	g := glossary.New([]glossary.Entry{
		{Term: "Graph", Definition: "Nodes joined by edges."},
		{Term: "Edge", Definition: "A connection in a graph."},
	})
	tg := graph.Build([]string{"Edge", "Graph"}, model.LinkDictionary{"Edge": {"Graph"}})
	structural := model.Assignment{"Edge": 0, "Graph": 0}
	semantic := model.Assignment{"Edge": 1, "Graph": 0}

	mock := &MockDriver{}
	runID, err := PublishGraph(context.Background(), mock, g, tg, structural, semantic)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	// Two node writes, one edge write, one cleanup.
	require.Len(t, mock.Executed, 4)

	node := mock.Executed[0]
	assert.Equal(t, driver.SaveTermNodeQuery, node.Query)
	assert.Equal(t, "Edge", node.Params["name"])
	assert.Equal(t, "A connection in a graph.", node.Params["definition"])
	assert.Equal(t, 0, node.Params["structural_cluster"])
	assert.Equal(t, 1, node.Params["semantic_cluster"])
	assert.Equal(t, runID, node.Params["run_id"])

	edge := mock.Executed[2]
	assert.Equal(t, driver.SaveReferenceEdgeQuery, edge.Query)
	assert.Equal(t, "Edge", edge.Params["source"])
	assert.Equal(t, "Graph", edge.Params["target"])

	cleanup := mock.Executed[3]
	assert.Equal(t, driver.ClearRunQuery, cleanup.Query)
	assert.Equal(t, runID, cleanup.Params["run_id"])
}

func TestPublishGraph_UnassignedTermGetsNilCluster(t *testing.T) {
	g := glossary.New([]glossary.Entry{
		{Term: "Orphan", Definition: "Not clustered."},
	})
	tg := graph.Build([]string{"Orphan"}, nil)

	mock := &MockDriver{}
	_, err := PublishGraph(context.Background(), mock, g, tg, model.Assignment{}, model.Assignment{})
	require.NoError(t, err)

	require.NotEmpty(t, mock.Executed)
	assert.Nil(t, mock.Executed[0].Params["structural_cluster"])
	assert.Nil(t, mock.Executed[0].Params["semantic_cluster"])
}

func TestPublishGraph_DriverFailure(t *testing.T) {
	g := glossary.New([]glossary.Entry{{Term: "A", Definition: "def"}})
	tg := graph.Build([]string{"A"}, nil)

	mock := &MockDriver{Err: assert.AnError}
	_, err := PublishGraph(context.Background(), mock, g, tg, nil, nil)
	assert.ErrorContains(t, err, "failed to publish term")
}
