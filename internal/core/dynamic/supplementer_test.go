package dynamic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
)

// countingFetcher returns one record per category and counts calls.
type countingFetcher struct {
	storeCalls          int
	availabilityCalls   int
	newsCalls           int
	productUpdateCalls  int
	sustainabilityCalls int
	productInfoCalls    int
}

func (f *countingFetcher) StoreLocations(ctx context.Context, entities []string) []model.DynamicRecord {
	f.storeCalls++
	return []model.DynamicRecord{{"retailer": "Walmart Canada"}}
}

func (f *countingFetcher) ProductAvailability(ctx context.Context, entities []string) []model.DynamicRecord {
	f.availabilityCalls++
	return []model.DynamicRecord{{"product": "KitKat", "status": "In Stock"}}
}

func (f *countingFetcher) CompanyNews(ctx context.Context) []model.DynamicRecord {
	f.newsCalls++
	return []model.DynamicRecord{{"title": "Quarterly update"}}
}

func (f *countingFetcher) ProductUpdates(ctx context.Context) []model.DynamicRecord {
	f.productUpdateCalls++
	return nil
}

func (f *countingFetcher) SustainabilityUpdates(ctx context.Context) []model.DynamicRecord {
	f.sustainabilityCalls++
	return []model.DynamicRecord{{"topic": "Cocoa Plan"}}
}

func (f *countingFetcher) ProductInfo(ctx context.Context, entities []string) []model.DynamicRecord {
	f.productInfoCalls++
	return []model.DynamicRecord{{"product": "KitKat"}}
}

func newTestSupplementer(f *countingFetcher) *Supplementer {
	return NewSupplementer(f, NewCache(2*time.Hour))
}

func TestNeededTriggerPhrases(t *testing.T) {
	s := newTestSupplementer(&countingFetcher{})

	assert.True(t, s.Needed("Where can I buy KitKat?", intent.CategoryNutrition))
	assert.True(t, s.Needed("What's the latest news?", intent.CategoryNutrition))
	assert.True(t, s.Needed("how much does it cost", intent.CategoryNutrition))
	assert.False(t, s.Needed("What calories are in KitKat?", intent.CategoryNutrition))
}

func TestNeededTriggerIntents(t *testing.T) {
	s := newTestSupplementer(&countingFetcher{})

	assert.True(t, s.Needed("kitkat", intent.CategoryAvailability))
	assert.True(t, s.Needed("nestle", intent.CategoryCompany))
	assert.True(t, s.Needed("who leads", intent.CategoryCEO))
	assert.True(t, s.Needed("hi", intent.CategoryGeneral))
	assert.False(t, s.Needed("kitkat calories", intent.CategoryNutrition))
}

func TestSupplementAvailabilityCategories(t *testing.T) {
	f := &countingFetcher{}
	s := newTestSupplementer(f)

	info := s.Supplement(context.Background(), "where can i buy kitkat", intent.CategoryAvailability, []string{"KitKat"})

	assert.Contains(t, info, CategoryStoreLocations)
	assert.Contains(t, info, CategoryAvailability)
	assert.Equal(t, 1, f.storeCalls)
	assert.Equal(t, 1, f.availabilityCalls)
	assert.Zero(t, f.newsCalls)
}

func TestSupplementCachesResults(t *testing.T) {
	f := &countingFetcher{}
	s := newTestSupplementer(f)

	first := s.Supplement(context.Background(), "where can i buy kitkat", intent.CategoryAvailability, []string{"KitKat"})
	second := s.Supplement(context.Background(), "where can i buy kitkat", intent.CategoryAvailability, []string{"KitKat"})

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.storeCalls, "second call should come from cache")
}

func TestSupplementRecencyAlwaysFetchesNews(t *testing.T) {
	f := &countingFetcher{}
	s := newTestSupplementer(f)

	info := s.Supplement(context.Background(), "any recent sustainability progress?", intent.CategorySustainability, nil)

	assert.Contains(t, info, CategorySustainabilityUpdates)
	assert.Contains(t, info, CategoryNews)
	assert.Equal(t, 1, f.newsCalls)
}

func TestSupplementDropsEmptyCategories(t *testing.T) {
	f := &countingFetcher{}
	s := newTestSupplementer(f)

	// ProductUpdates returns nothing; news returns one record.
	info := s.Supplement(context.Background(), "nestle", intent.CategoryCompany, nil)

	assert.Contains(t, info, CategoryNews)
	assert.NotContains(t, info, CategoryProductUpdates)
	assert.Equal(t, 1, f.productUpdateCalls)
}
