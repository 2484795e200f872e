package intent

import (
	"regexp"
	"sort"
	"strings"
)

// surfaceForm maps one spelling variant of a known entity to its
// canonical display name, which is also the graph lookup key.
type surfaceForm struct {
	pattern   *regexp.Regexp
	canonical string
}

func form(pattern, canonical string) surfaceForm {
	return surfaceForm{
		pattern:   regexp.MustCompile(pattern),
		canonical: canonical,
	}
}

var surfaceForms = []surfaceForm{
	// Products
	form(`kitkat`, "KitKat"),
	form(`kit kat`, "KitKat"),
	form(`smarties`, "Smarties"),
	form(`\baero\b`, "Aero"),
	form(`coffee.?mate`, "Coffee-mate"),
	form(`quality street`, "Quality Street"),
	form(`nespresso`, "Nespresso"),
	form(`carnation`, "Carnation"),
	form(`gerber`, "Gerber"),
	form(`butterfinger`, "Butterfinger"),
	form(`\bmilo\b`, "MILO"),
	form(`\bnido\b`, "NIDO"),
	form(`garden gourmet`, "Garden Gourmet"),

	// People
	form(`mark schneider`, "Mark Schneider"),
	form(`paul bulcke`, "Paul Bulcke"),
	form(`henri nestlé`, "Henri Nestlé"),
	form(`henri nestle`, "Henri Nestlé"),

	// Locations
	form(`canada`, "Canada"),
	form(`toronto`, "Toronto"),
	form(`switzerland`, "Switzerland"),
	form(`vevey`, "Vevey"),

	// Concepts
	form(`nestlé cocoa plan`, "Nestlé Cocoa Plan"),
	form(`nestle cocoa plan`, "Nestlé Cocoa Plan"),
	form(`cocoa plan`, "Cocoa Plan"),
	form(`good food good life`, "Good Food Good Life"),
	form(`sustainability`, "Sustainability"),
}

// Extract returns the canonical names of every known entity whose
// surface form appears in the query. Matching is case-insensitive and
// presence is binary; the result is deduplicated and sorted so output
// is reproducible.
func Extract(query string) []string {
	lower := strings.ToLower(strings.TrimSpace(query))

	seen := make(map[string]bool)
	var found []string
	for _, sf := range surfaceForms {
		if sf.pattern.MatchString(lower) && !seen[sf.canonical] {
			seen[sf.canonical] = true
			found = append(found, sf.canonical)
		}
	}

	sort.Strings(found)
	return found
}
