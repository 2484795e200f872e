package retrieval

import (
	"regexp"
	"strings"
)

var stopWords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true,
	"from": true, "about": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true,
	"below": true, "between": true, "among": true, "are": true,
	"was": true, "were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "can": true,
	"what": true, "when": true, "where": true, "why": true, "how": true,
	"tell": true, "please": true, "who": true,
}

var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

// Keywords extracts up to max salient tokens from the query: words of
// at least three characters that are not stop words, in query order.
func Keywords(query string, max int) []string {
	words := wordPattern.FindAllString(strings.ToLower(query), -1)

	seen := make(map[string]bool)
	var keywords []string
	for _, w := range words {
		if stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}
