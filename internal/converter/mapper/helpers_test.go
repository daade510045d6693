package mapper

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	ID   string       `json:"id"`
	Data testNodeData `json:"data"`
}

type testNodeData struct {
	Name   string         `json:"name"`
	Label  string         `json:"label,omitempty"`
	Inputs map[string]any `json:"inputs,omitempty"`
}

type testEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type testFlow struct {
	Nodes []testNode `json:"nodes"`
	Edges []testEdge `json:"edges"`
}

func (f *testFlow) node(id, kind string, inputs map[string]any) *testFlow {
	f.Nodes = append(f.Nodes, testNode{ID: id, Data: testNodeData{Name: kind, Inputs: inputs}})
	return f
}

func (f *testFlow) edge(source, target string) *testFlow {
	f.Edges = append(f.Edges, testEdge{Source: source, Target: target})
	return f
}

func (f *testFlow) bytes(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(f)
	require.NoError(t, err)
	return data
}
