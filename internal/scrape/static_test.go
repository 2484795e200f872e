package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaticStoreLocations(t *testing.T) {
	f := NewStaticFetcher()
	f.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	records := f.StoreLocations(context.Background(), []string{"KitKat"})

	assert.NotEmpty(t, records)
	assert.Equal(t, "Walmart Canada", records[0]["retailer"])
	assert.Equal(t, []string{"KitKat"}, records[0]["carries_products"])
	assert.Equal(t, "2025-06-01T12:00:00Z", records[0]["last_updated"])
}

func TestStaticProductAvailabilityPerEntity(t *testing.T) {
	f := NewStaticFetcher()

	records := f.ProductAvailability(context.Background(), []string{"KitKat", "Aero"})
	assert.Len(t, records, 2)
	assert.Equal(t, "KitKat", records[0]["product"])
	assert.Equal(t, "In Stock", records[0]["status"])

	assert.Empty(t, f.ProductAvailability(context.Background(), nil))
}

func TestStaticNewsAlwaysAvailable(t *testing.T) {
	f := NewStaticFetcher()

	news := f.CompanyNews(context.Background())
	assert.NotEmpty(t, news)
	for _, item := range news {
		assert.NotEmpty(t, item["title"])
		assert.NotEmpty(t, item["summary"])
	}
}
