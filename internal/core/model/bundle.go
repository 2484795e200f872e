package model

import "time"

// DynamicRecord is one loosely structured fact from a dynamic source
// (a news item, a retailer listing, a sustainability update).
type DynamicRecord map[string]interface{}

// DynamicInfo groups dynamic records by category.
type DynamicInfo map[string][]DynamicRecord

// ContextBundle is everything gathered from the graph (and optionally
// from dynamic sources) for a single query. Built fresh per request.
type ContextBundle struct {
	Nodes         []GraphNode    `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
	Paths         []Path         `json:"paths"`
	Summary       string         `json:"summary"`
	DynamicInfo   DynamicInfo    `json:"dynamic_info,omitempty"`
}

func (b *ContextBundle) Empty() bool {
	return len(b.Nodes) == 0 && len(b.Relationships) == 0 && len(b.DynamicInfo) == 0
}

// DirectMatches returns the nodes found by exact entity lookup,
// preserving order.
func (b *ContextBundle) DirectMatches() []GraphNode {
	var out []GraphNode
	for _, n := range b.Nodes {
		if n.Relevance == RelevanceDirectMatch {
			out = append(out, n)
		}
	}
	return out
}

// RelatedNodes returns every node that is not a direct match.
func (b *ContextBundle) RelatedNodes() []GraphNode {
	var out []GraphNode
	for _, n := range b.Nodes {
		if n.Relevance != RelevanceDirectMatch {
			out = append(out, n)
		}
	}
	return out
}

// Answer is the envelope returned to the caller.
type Answer struct {
	Answer   string                 `json:"answer"`
	Sources  []string               `json:"sources"`
	Metadata map[string]interface{} `json:"metadata"`
}

// Timestamp is the metadata time format used throughout responses.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
