package driver

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/praline/internal/core/model"
)

// Decoding of heterogeneous query records into typed model values.
// Conversion happens here, at the store boundary; missing or oddly
// shaped fields decode to zero values rather than errors.

// NodeFromValue converts a node value plus a labels value (as returned
// by `RETURN n, labels(n)`) into a GraphNode.
func NodeFromValue(nodeVal, labelsVal interface{}) (model.GraphNode, bool) {
	node, ok := nodeVal.(neo4j.Node)
	if !ok {
		return model.GraphNode{}, false
	}

	name := "Unknown"
	if v, ok := node.Props["name"].(string); ok && v != "" {
		name = v
	} else if v, ok := node.Props["product"].(string); ok && v != "" {
		// Nutrition nodes key on the product they describe.
		name = v
	}

	nodeType := "Unknown"
	if labels := stringList(labelsVal); len(labels) > 0 {
		nodeType = labels[0]
	} else if len(node.Labels) > 0 {
		nodeType = node.Labels[0]
	}

	return model.GraphNode{
		Name:       name,
		Type:       nodeType,
		Properties: node.Props,
	}, true
}

// CollectNodes decodes every record of a `RETURN n, labels(n) AS labels`
// style result.
func CollectNodes(result neo4j.EagerResult, nodeKey, labelsKey string) []model.GraphNode {
	var nodes []model.GraphNode
	for _, record := range result.Records {
		if record == nil {
			continue
		}
		nodeVal, ok := record.Get(nodeKey)
		if !ok {
			continue
		}
		labelsVal, _ := record.Get(labelsKey)
		if n, ok := NodeFromValue(nodeVal, labelsVal); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Neighbor is one row of a neighbor-expansion query: the connecting
// relationship and the node on its far side.
type Neighbor struct {
	Relationship model.Relationship
	Target       model.GraphNode
}

// CollectNeighbors decodes rows of EntityNeighborsQuery. sourceName is
// the canonical name of the node the expansion started from.
func CollectNeighbors(result neo4j.EagerResult, sourceName string) []Neighbor {
	var out []Neighbor
	for _, record := range result.Records {
		if record == nil {
			continue
		}
		relVal, ok := record.Get("r")
		if !ok {
			continue
		}
		rel, ok := relVal.(neo4j.Relationship)
		if !ok {
			continue
		}
		targetVal, ok := record.Get("m")
		if !ok {
			continue
		}
		labelsVal, _ := record.Get("target_labels")
		target, ok := NodeFromValue(targetVal, labelsVal)
		if !ok {
			continue
		}

		out = append(out, Neighbor{
			Relationship: model.Relationship{
				From:       sourceName,
				To:         target.Name,
				Type:       rel.Type,
				Properties: rel.Props,
			},
			Target: target,
		})
	}
	return out
}

// CollectPaths decodes `RETURN path` results into start/end/length plus
// the sequence of relationship types traversed.
func CollectPaths(result neo4j.EagerResult, start, end string) []model.Path {
	var paths []model.Path
	for _, record := range result.Records {
		if record == nil {
			continue
		}
		pathVal, ok := record.Get("path")
		if !ok {
			continue
		}
		path, ok := pathVal.(neo4j.Path)
		if !ok {
			continue
		}

		relTypes := make([]string, 0, len(path.Relationships))
		for _, rel := range path.Relationships {
			relTypes = append(relTypes, rel.Type)
		}

		paths = append(paths, model.Path{
			Start:             start,
			End:               end,
			Length:            len(path.Relationships),
			RelationshipTypes: relTypes,
		})
	}
	return paths
}

// CollectCounts decodes two-column count results (label/type + count).
func CollectCounts(result neo4j.EagerResult, keyAlias, countAlias string) map[string]int64 {
	counts := make(map[string]int64)
	for _, record := range result.Records {
		if record == nil {
			continue
		}
		keyVal, ok := record.Get(keyAlias)
		if !ok {
			continue
		}
		key, ok := keyVal.(string)
		if !ok {
			continue
		}
		if countVal, ok := record.Get(countAlias); ok {
			if count, ok := countVal.(int64); ok {
				counts[key] = count
			}
		}
	}
	return counts
}

func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
