package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
)

type mockLLM struct {
	Response   string
	Err        error
	LastSystem string
	LastUser   string
}

func (m *mockLLM) Chat(ctx context.Context, system, user string) (string, error) {
	m.LastSystem = system
	m.LastUser = user
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func productBundle() *model.ContextBundle {
	return &model.ContextBundle{
		Nodes: []model.GraphNode{
			{
				Name:      "KitKat",
				Type:      "Product",
				Relevance: model.RelevanceDirectMatch,
				Properties: map[string]interface{}{
					"description": "Chocolate wafer bar",
					"tagline":     "Have a break, have a KitKat",
					"launched":    int64(1935),
				},
			},
		},
	}
}

func TestComposeGenerative(t *testing.T) {
	llm := &mockLLM{Response: "  KitKat launched in 1935.  "}
	c := New(llm)

	res := intent.Result{Category: intent.CategoryProductInfo}
	answer, generated := c.Compose(context.Background(), "Tell me about KitKat", res, []string{"KitKat"}, productBundle(), []string{"https://www.madewithnestle.ca"})

	assert.True(t, generated)
	assert.Equal(t, "KitKat launched in 1935.", answer)
	assert.Contains(t, llm.LastUser, "Tell me about KitKat")
	assert.Contains(t, llm.LastUser, "Chocolate wafer bar")
	assert.Contains(t, llm.LastUser, "https://www.madewithnestle.ca")
}

func TestComposeFallsBackOnGenerationError(t *testing.T) {
	c := New(&mockLLM{Err: errors.New("rate limited")})

	res := intent.Result{Category: intent.CategoryProductInfo}
	answer, generated := c.Compose(context.Background(), "Tell me about KitKat", res, []string{"KitKat"}, productBundle(), nil)

	assert.False(t, generated)
	assert.Contains(t, answer, "KitKat")
	assert.Contains(t, answer, "Chocolate wafer bar")
}

func TestComposeSkipsModelOnEmptyContext(t *testing.T) {
	llm := &mockLLM{Response: "should not be used"}
	c := New(llm)

	res := intent.Result{Category: intent.CategoryGeneral}
	answer, generated := c.Compose(context.Background(), "hello", res, nil, &model.ContextBundle{}, nil)

	assert.False(t, generated)
	assert.Contains(t, answer, "Welcome to Nestlé Canada")
	assert.Empty(t, llm.LastUser)
}

func TestComposeWithoutModel(t *testing.T) {
	c := New(nil)

	res := intent.Result{Category: intent.CategoryProductInfo}
	answer, generated := c.Compose(context.Background(), "Tell me about KitKat", res, []string{"KitKat"}, productBundle(), nil)

	assert.False(t, generated)
	assert.Contains(t, answer, "KitKat")
}

func TestCEOSystemPromptCarriesLeadershipContext(t *testing.T) {
	llm := &mockLLM{Response: "Mark Schneider is the CEO."}
	c := New(llm)

	bundle := &model.ContextBundle{Nodes: []model.GraphNode{
		{Name: "Mark Schneider", Type: "Person", Properties: map[string]interface{}{"role": "CEO"}},
	}}

	res := intent.Result{Category: intent.CategoryCEO}
	_, generated := c.Compose(context.Background(), "Who runs Nestlé?", res, nil, bundle, nil)

	assert.True(t, generated)
	assert.Contains(t, llm.LastSystem, "Mark Schneider")
}

func TestDeterministicCEOFromGraph(t *testing.T) {
	c := New(nil)
	bundle := &model.ContextBundle{Nodes: []model.GraphNode{
		{Name: "Jane Doe", Type: "Person", Properties: map[string]interface{}{"role": "CEO"}},
	}}

	res := intent.Result{Category: intent.CategoryCEO}
	answer, _ := c.Compose(context.Background(), "who is in charge", res, nil, bundle, nil)

	assert.Contains(t, answer, "Jane Doe")
}

func TestDeterministicCEODefault(t *testing.T) {
	c := New(nil)

	res := intent.Result{Category: intent.CategoryCEO}
	answer, _ := c.Compose(context.Background(), "who is in charge", res, nil, &model.ContextBundle{}, nil)

	assert.Contains(t, answer, "Mark Schneider")
}

func TestDeterministicAvailabilityUsesDynamicStores(t *testing.T) {
	c := New(nil)
	bundle := &model.ContextBundle{
		DynamicInfo: model.DynamicInfo{
			"store_locations": {
				{"retailer": "Walmart Canada", "locations": "Nationwide", "website": "walmart.ca"},
			},
		},
	}

	res := intent.Result{Category: intent.CategoryAvailability}
	answer, _ := c.Compose(context.Background(), "where can i buy smarties", res, []string{"Smarties"}, bundle, nil)

	assert.Contains(t, answer, "Where to buy Smarties")
	assert.Contains(t, answer, "Walmart Canada")
	assert.Contains(t, answer, "walmart.ca")
}

func TestDeterministicAvailabilityFallbackRetailers(t *testing.T) {
	c := New(nil)

	res := intent.Result{Category: intent.CategoryAvailability}
	answer, _ := c.Compose(context.Background(), "where can i buy smarties", res, []string{"Smarties"}, &model.ContextBundle{}, nil)

	assert.Contains(t, answer, "Walmart")
	assert.Contains(t, answer, "Loblaws")
	assert.Contains(t, answer, "Sobeys")
}

func TestDeterministicNutritionSpecificCalories(t *testing.T) {
	c := New(nil)
	bundle := &model.ContextBundle{Nodes: []model.GraphNode{
		{
			Name: "KitKat 4-finger bar",
			Type: "Nutrition",
			Properties: map[string]interface{}{
				"calories":     int64(210),
				"serving_size": "41.5g",
			},
		},
	}}

	res := intent.Result{Category: intent.CategoryNutrition, SpecificRequest: "calories"}
	answer, _ := c.Compose(context.Background(), "how many calories in kitkat", res, []string{"KitKat"}, bundle, nil)

	assert.Contains(t, answer, "210 calories")
	assert.Contains(t, answer, "41.5g")
}

func TestDeterministicNutritionMissing(t *testing.T) {
	c := New(nil)

	res := intent.Result{Category: intent.CategoryNutrition}
	answer, _ := c.Compose(context.Background(), "butterfinger nutrition", res, []string{"Butterfinger"}, &model.ContextBundle{}, nil)

	assert.Contains(t, answer, "Butterfinger")
	assert.Contains(t, answer, "don't have specific nutrition information")
}

func TestDeterministicAlwaysInvitesFollowUp(t *testing.T) {
	c := New(nil)

	for _, category := range []string{
		intent.CategoryGeneral, intent.CategoryRecipe, intent.CategorySeasonal, intent.CategoryCompany,
	} {
		res := intent.Result{Category: category}
		answer, _ := c.Compose(context.Background(), "hmm", res, nil, &model.ContextBundle{}, nil)
		assert.Contains(t, answer, "anything specific you'd like to know more about", "category: %s", category)
	}
}
