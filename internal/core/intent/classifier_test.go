package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"What calories are in KitKat?", CategoryNutrition},
		{"How much protein does Aero have?", CategoryNutrition},
		{"What is KitKat made of?", CategoryIngredients},
		{"Where can I buy Smarties?", CategoryAvailability},
		{"Who is the CEO of Nestlé?", CategoryCEO},
		{"Who runs the company?", CategoryCEO},
		{"Tell me about Aero", CategoryProductInfo},
		{"When was Nestlé Canada founded?", CategoryCompany},
		{"Is the cocoa plan sustainable?", CategorySustainability},
		{"Which is better, KitKat or Aero?", CategoryComparison},
		{"How do I make a KitKat cake?", CategoryRecipe},
		{"Christmas gift ideas?", CategorySeasonal},
	}

	for _, tc := range cases {
		res := Classify(tc.query, Extract(tc.query))
		assert.Equal(t, tc.want, res.Category, "query: %s", tc.query)
	}
}

func TestClassifyUnmatchedFallsBackToGeneral(t *testing.T) {
	res := Classify("xyzzy plugh", nil)
	assert.Equal(t, CategoryGeneral, res.Category)
	assert.InDelta(t, 0.5, res.Confidence, 0.001)
	assert.Empty(t, res.SpecificRequest)
}

func TestClassifyConfidenceBounds(t *testing.T) {
	queries := []string{
		"",
		"What calories are in KitKat?",
		"where can i buy kitkat smarties aero coffee mate in canada right now",
		"sustainability sustainable environment eco green carbon cocoa plan climate",
	}
	for _, q := range queries {
		res := Classify(q, Extract(q))
		assert.GreaterOrEqual(t, res.Confidence, 0.0, "query: %s", q)
		assert.LessOrEqual(t, res.Confidence, 1.0, "query: %s", q)
	}
}

func TestClassifyConfidenceComponents(t *testing.T) {
	// One pattern hit plus an interrogative, no entities.
	res := Classify("Who is the CEO?", nil)
	assert.Equal(t, CategoryCEO, res.Category)
	assert.InDelta(t, 0.8, res.Confidence, 0.001)

	// Entities raise confidence.
	withEntity := Classify("Who is the CEO?", []string{"Mark Schneider"})
	assert.Greater(t, withEntity.Confidence, res.Confidence)
}

func TestClassifySpecificRequest(t *testing.T) {
	res := Classify("How many calories in a KitKat bar?", []string{"KitKat"})
	assert.Equal(t, CategoryNutrition, res.Category)
	assert.Equal(t, "calories", res.SpecificRequest)
}
