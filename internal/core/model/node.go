package model

import (
	"fmt"
	"strings"
)

// Relevance records which retrieval strategy surfaced a node.
type Relevance string

const (
	RelevanceDirectMatch Relevance = "direct_match"
	RelevanceConnected   Relevance = "connected_to_entity"
)

func IntentRelevance(intent string) Relevance {
	return Relevance("intent_" + intent)
}

func KeywordRelevance(keyword string) Relevance {
	return Relevance("keyword_" + keyword)
}

// GraphNode is a per-request snapshot of a node in the knowledge graph.
// The graph store owns the data; the core only reads it.
type GraphNode struct {
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Relevance  Relevance              `json:"relevance,omitempty"`
}

// Key is the deduplication identity of a node.
func (n GraphNode) Key() string {
	return strings.ToLower(n.Name) + "|" + n.Type
}

// StringProp returns a property rendered as a string, or "" when absent.
func (n GraphNode) StringProp(key string) string {
	v, ok := n.Properties[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ListProp returns a list-valued property, tolerating scalar values.
func (n GraphNode) ListProp(key string) []string {
	v, ok := n.Properties[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case []string:
		return t
	default:
		return []string{fmt.Sprintf("%v", t)}
	}
}

type Relationship struct {
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

func (r Relationship) Key() string {
	return strings.ToLower(r.From) + "|" + strings.ToLower(r.To) + "|" + r.Type
}

type Path struct {
	Start             string   `json:"start"`
	End               string   `json:"end"`
	Length            int      `json:"length"`
	RelationshipTypes []string `json:"relationships"`
}
