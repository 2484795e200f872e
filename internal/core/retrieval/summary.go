package retrieval

import (
	"fmt"
	"strings"

	"github.com/agenthands/praline/internal/core/model"
)

// summarize renders the bundle as a compact one-line description,
// grouping node names by type. Used as the fallback context
// representation when no generation model is configured.
func summarize(bundle *model.ContextBundle) string {
	if len(bundle.Nodes) == 0 {
		return "No relevant information found in knowledge graph."
	}

	var parts []string

	var typeOrder []string
	namesByType := make(map[string][]string)
	for _, n := range bundle.Nodes {
		if _, ok := namesByType[n.Type]; !ok {
			typeOrder = append(typeOrder, n.Type)
		}
		namesByType[n.Type] = append(namesByType[n.Type], n.Name)
	}

	for _, t := range typeOrder {
		names := namesByType[t]
		if len(names) == 1 {
			parts = append(parts, fmt.Sprintf("%s: %s", t, names[0]))
		} else {
			if len(names) > 3 {
				names = names[:3]
			}
			parts = append(parts, fmt.Sprintf("%ss: %s", t, strings.Join(names, ", ")))
		}
	}

	if len(bundle.Relationships) > 0 {
		var relTypes []string
		seen := make(map[string]bool)
		for _, rel := range bundle.Relationships {
			if !seen[rel.Type] {
				seen[rel.Type] = true
				relTypes = append(relTypes, rel.Type)
			}
			if len(relTypes) == 3 {
				break
			}
		}
		parts = append(parts, "Related through: "+strings.Join(relTypes, ", "))
	}

	return strings.Join(parts, "; ")
}
