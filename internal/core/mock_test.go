package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// MockDriver serves canned results keyed by query text.
type MockDriver struct {
	Responses map[string]neo4j.EagerResult
	Err       error
	Queries   []string
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.Responses[query], nil
}

func (m *MockDriver) SetupSchema(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type MockLLM struct {
	Response string
	Err      error
	Calls    int
}

func (m *MockLLM) Chat(ctx context.Context, system, user string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func nodeResult(nodes ...neo4j.Node) neo4j.EagerResult {
	records := make([]*neo4j.Record, 0, len(nodes))
	for _, n := range nodes {
		labels := make([]interface{}, 0, len(n.Labels))
		for _, l := range n.Labels {
			labels = append(labels, l)
		}
		records = append(records, &neo4j.Record{
			Keys:   []string{"n", "labels"},
			Values: []interface{}{n, labels},
		})
	}
	return neo4j.EagerResult{Records: records}
}

func graphNode(name, label string, props map[string]interface{}) neo4j.Node {
	if props == nil {
		props = map[string]interface{}{}
	}
	props["name"] = name
	return neo4j.Node{Labels: []string{label}, Props: props}
}
