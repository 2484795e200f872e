package intent

import (
	"regexp"
	"strings"
)

// Intent categories. One canonical table; declaration order breaks
// scoring ties.
const (
	CategoryNutrition      = "nutrition"
	CategoryIngredients    = "ingredients"
	CategoryAvailability   = "availability"
	CategoryCEO            = "ceo"
	CategoryProductInfo    = "product_info"
	CategoryCompany        = "company"
	CategorySustainability = "sustainability"
	CategoryComparison     = "comparison"
	CategoryRecipe         = "recipe"
	CategorySeasonal       = "seasonal"
	CategoryGeneral        = "general"
)

// Result of classifying one query. Always well-formed: an unmatched
// query classifies as the general category with base confidence.
type Result struct {
	Category        string  `json:"category"`
	Confidence      float64 `json:"confidence"`
	SpecificRequest string  `json:"specific_request,omitempty"`
}

type category struct {
	name             string
	patterns         []*regexp.Regexp
	keywords         []string
	specificRequests []string
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

const (
	patternWeight = 3
	keywordWeight = 1
)

var categories = []category{
	{
		name: CategoryNutrition,
		patterns: patterns(
			`\b(calories?|nutrition|nutritional|nutrients?)\b`,
			`\b(protein|fat|carbs?|carbohydrates?|sugar|sodium)\b`,
			`\b(healthy|health|diet|dietary)\b`,
			`\bhow many (calories?|carbs?)\b`,
			`\bhow much (protein|fat|sugar)\b`,
		),
		keywords:         []string{"nutrition", "health", "calories", "ingredients", "healthy"},
		specificRequests: []string{"calories", "protein", "fat", "carbohydrates", "sugar", "sodium", "nutrition"},
	},
	{
		name: CategoryIngredients,
		patterns: patterns(
			`\b(ingredients?|made of|contains?|composition)\b`,
			`\bwhat.*made\b`,
			`\blist.*ingredients?\b`,
		),
		keywords:         []string{"ingredients", "made of", "contains"},
		specificRequests: []string{"ingredients list", "composition", "what contains"},
	},
	{
		name: CategoryAvailability,
		patterns: patterns(
			`\b(where|how|can i)\b.*\b(buy|find|purchase|get|order)\b`,
			`\b(store|shop|retail|location|available|sell)\b`,
			`\bwhere to (buy|find|get)\b`,
		),
		keywords:         []string{"where to buy", "find", "purchase", "store", "available", "location"},
		specificRequests: []string{"store locations", "where to buy", "availability", "retailers"},
	},
	{
		name: CategoryCEO,
		patterns: patterns(
			`\b(ceo|chief executive|president|boss)\b`,
			`\bwho (runs?|leads?|manages?|is in charge)\b`,
			`\bmark schneider\b`,
			`\bleadership\b`,
		),
		keywords:         []string{"ceo", "chief", "leader", "boss", "runs", "leads"},
		specificRequests: []string{"ceo name", "leadership", "company head"},
	},
	{
		name: CategoryProductInfo,
		patterns: patterns(
			`\b(tell me about|describe|what is|information about)\b`,
			`\b(details?|info|facts?)\b`,
			`\b(launched|history)\b`,
		),
		keywords:         []string{"product", "brand", "what is", "tell me about", "information", "describe"},
		specificRequests: []string{"product description", "history", "general info"},
	},
	{
		name: CategoryCompany,
		patterns: patterns(
			`\b(company|business|about nestlé|nestlé canada|nestle canada)\b`,
			`\b(founded|history|mission)\b`,
			`\b(headquarters|office)\b`,
		),
		keywords:         []string{"company", "nestlé", "nestle", "founded", "headquarters", "mission"},
		specificRequests: []string{"company info", "history", "mission"},
	},
	{
		name: CategorySustainability,
		patterns: patterns(
			`\b(sustainability|sustainable|environment|eco|green|carbon|cocoa plan|water)\b`,
			`\b(climate|footprint|emissions|renewable|recycling|responsible)\b`,
		),
		keywords:         []string{"sustainability", "sustainable", "environment", "eco", "green", "carbon", "cocoa plan"},
		specificRequests: []string{"sustainability practices", "environmental impact"},
	},
	{
		name: CategoryComparison,
		patterns: patterns(
			`\b(compare|comparison|difference|versus|vs|better|best|prefer)\b`,
			`\b(which is|how do they differ)\b`,
		),
		keywords:         []string{"compare", "difference", "versus", "vs", "better", "which"},
		specificRequests: []string{"comparison", "difference"},
	},
	{
		name: CategoryRecipe,
		patterns: patterns(
			`\b(recipes?|cooking|baking|cook|bake|preparation)\b`,
			`\b(how to make|how do i make)\b`,
			`\b(cake|cookies?|dessert|treat)\b`,
		),
		keywords:         []string{"recipe", "cooking", "baking", "how to make"},
		specificRequests: []string{"recipe instructions", "cooking method", "ingredients"},
	},
	{
		name: CategorySeasonal,
		patterns: patterns(
			`\b(christmas|holiday|gifts?|presents?)\b`,
			`\b(seasonal|festive|celebration|party)\b`,
			`\b(advent|valentine|easter)\b`,
		),
		keywords:         []string{"christmas", "holiday", "gift", "seasonal"},
		specificRequests: []string{"gift suggestions", "holiday products", "seasonal items"},
	},
}

var interrogatives = []string{"what", "how", "why", "who", "where", "when"}

// Classify scores every category against the query and returns the
// highest-scoring one, falling back to the general category when
// nothing matches. entities feeds the confidence estimate only.
func Classify(query string, entities []string) Result {
	lower := strings.ToLower(strings.TrimSpace(query))

	best := CategoryGeneral
	bestScore := 0
	bestPatternHits := 0
	specificRequest := ""

	for _, cat := range categories {
		score := 0
		patternHits := 0

		for _, p := range cat.patterns {
			if p.MatchString(lower) {
				score += patternWeight
				patternHits++
			}
		}
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				score += keywordWeight
			}
		}

		// Strictly-greater keeps earlier declarations on ties.
		if score > bestScore {
			bestScore = score
			best = cat.name
			bestPatternHits = patternHits
			specificRequest = matchSpecificRequest(lower, cat.specificRequests)
		}
	}

	return Result{
		Category:        best,
		Confidence:      confidence(lower, bestPatternHits, len(entities)),
		SpecificRequest: specificRequest,
	}
}

func matchSpecificRequest(lower string, requests []string) string {
	for _, request := range requests {
		for _, word := range strings.Fields(request) {
			if strings.Contains(lower, word) {
				return request
			}
		}
	}
	return ""
}

func confidence(lower string, patternHits, entityCount int) float64 {
	c := 0.5
	c += 0.2 * float64(patternHits)

	entityBoost := 0.1 * float64(entityCount)
	if entityBoost > 0.3 {
		entityBoost = 0.3
	}
	c += entityBoost

	for _, w := range interrogatives {
		if strings.Contains(lower, w) {
			c += 0.1
			break
		}
	}

	if c > 1.0 {
		c = 1.0
	}
	return c
}
