package compose

import (
	"fmt"
	"strings"

	"github.com/agenthands/praline/internal/core/model"
)

// Bounds keeping the rendered context inside a reasonable prompt size.
const (
	maxDirectMatches  = 3
	maxRelatedNodes   = 3
	maxRelationships  = 5
	maxNodeInfoLength = 300
)

// FormatContext renders the bundle as readable text: direct matches
// first, then related nodes, then relationship descriptions.
func FormatContext(bundle *model.ContextBundle) string {
	if len(bundle.Nodes) == 0 {
		return ""
	}

	var parts []string

	direct := bundle.DirectMatches()
	if len(direct) > maxDirectMatches {
		direct = direct[:maxDirectMatches]
	}
	for _, node := range direct {
		if info := formatNodeInfo(node); info != "" {
			parts = append(parts, fmt.Sprintf("**%s**: %s", node.Name, info))
		}
	}

	related := bundle.RelatedNodes()
	if len(related) > maxRelatedNodes {
		related = related[:maxRelatedNodes]
	}
	for _, node := range related {
		if info := formatNodeInfo(node); info != "" {
			parts = append(parts, fmt.Sprintf("Related - **%s**: %s", node.Name, info))
		}
	}

	rels := bundle.Relationships
	if len(rels) > maxRelationships {
		rels = rels[:maxRelationships]
	}
	if len(rels) > 0 {
		parts = append(parts, "Connections: "+formatRelationships(rels))
	}

	return strings.Join(parts, "\n")
}

func formatNodeInfo(node model.GraphNode) string {
	var info []string

	if desc := node.StringProp("description"); desc != "" {
		info = append(info, desc)
	}

	switch node.Type {
	case "Product":
		p := node.Product()
		if p.Tagline != "" {
			info = append(info, "Tagline: "+p.Tagline)
		}
		if p.Launched != "" {
			info = append(info, "Launched: "+p.Launched)
		}
		if len(p.Varieties) > 0 {
			v := p.Varieties
			if len(v) > 3 {
				v = v[:3]
			}
			info = append(info, "Varieties: "+strings.Join(v, ", "))
		}
	case "Company":
		c := node.Company()
		if c.Founded != "" {
			info = append(info, "Founded: "+c.Founded)
		}
		if c.Headquarters != "" {
			info = append(info, "Headquarters: "+c.Headquarters)
		}
		if c.Mission != "" {
			info = append(info, "Mission: "+c.Mission)
		}
		if c.CEO != "" {
			info = append(info, "CEO: "+c.CEO)
		}
	case "Topic":
		t := node.Topic()
		if len(t.Goals) > 0 {
			g := t.Goals
			if len(g) > 3 {
				g = g[:3]
			}
			info = append(info, "Goals: "+strings.Join(g, ", "))
		}
		if len(t.FocusAreas) > 0 {
			fa := t.FocusAreas
			if len(fa) > 3 {
				fa = fa[:3]
			}
			info = append(info, "Focus areas: "+strings.Join(fa, ", "))
		}
		if t.Commitment != "" {
			info = append(info, "Commitment: "+t.Commitment)
		}
	case "Person":
		p := node.Person()
		if p.Role != "" {
			info = append(info, "Role: "+p.Role)
		}
		if p.Company != "" {
			info = append(info, "Company: "+p.Company)
		}
	}

	if len(info) > 3 {
		info = info[:3]
	}
	result := strings.Join(info, ". ")
	if len(result) > maxNodeInfoLength {
		result = result[:maxNodeInfoLength-3] + "..."
	}
	return result
}

var relationshipPhrases = map[string]string{
	"BELONGS_TO":    "%s belongs to %s",
	"PRODUCED_BY":   "%s is produced by %s",
	"SUPPORTS":      "%s supports %s",
	"USED_FOR":      "%s is used for %s",
	"CEO_OF":        "%s is CEO of %s",
	"COMMITTED_TO":  "%s is committed to %s",
	"SUBSIDIARY_OF": "%s is a subsidiary of %s",
	"HAS_NUTRITION": "%s has nutrition facts for %s",
	"AVAILABLE_AT":  "%s is available at %s",
}

func formatRelationships(rels []model.Relationship) string {
	var descriptions []string
	for _, rel := range rels {
		phrase, ok := relationshipPhrases[rel.Type]
		if !ok {
			phrase = "%s is related to %s"
		}
		descriptions = append(descriptions, fmt.Sprintf(phrase, rel.From, rel.To))
	}
	return strings.Join(descriptions, "; ")
}
