// Package sources selects the canonical web links that accompany an
// answer, driven by the entities and vocabulary of the query.
package sources

import "strings"

const (
	MainSite       = "https://www.madewithnestle.ca"
	Corporate      = "https://corporate.nestle.ca"
	Sustainability = "https://www.madewithnestle.ca/sustainability"
	Recipes        = "https://www.madewithnestle.ca/recipes"
	Brands         = "https://www.madewithnestle.ca/brands"
)

const maxSources = 4

var productURLs = map[string]string{
	"kitkat":         "https://www.madewithnestle.ca/brands/kitkat",
	"smarties":       "https://www.madewithnestle.ca/brands/smarties",
	"aero":           "https://www.madewithnestle.ca/brands/aero",
	"coffee-mate":    "https://www.madewithnestle.ca/brands/coffee-mate",
	"quality street": "https://www.madewithnestle.ca/brands/quality-street",
}

// Relevant returns up to four source URLs for the query, preserving
// priority order: entity pages first, then topic pages, then the main
// site as a last resort.
func Relevant(query string, entities []string) []string {
	lower := strings.ToLower(query)

	var urls []string
	seen := make(map[string]bool)
	add := func(url string) {
		if !seen[url] {
			seen[url] = true
			urls = append(urls, url)
		}
	}

	for _, entity := range entities {
		if url, ok := productURLs[strings.ToLower(entity)]; ok {
			add(url)
		}
	}

	if containsAny(lower, "sustainability", "environment", "green", "cocoa") {
		add(Sustainability)
	}
	if containsAny(lower, "recipe", "cooking", "baking") {
		add(Recipes)
	}
	if containsAny(lower, "company", "corporate", "ceo", "leadership") {
		add(Corporate)
	}
	if containsAny(lower, "brand", "product") {
		add(Brands)
	}

	if len(urls) == 0 {
		add(MainSite)
	}

	if len(urls) > maxSources {
		urls = urls[:maxSources]
	}
	return urls
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
