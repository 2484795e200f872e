package scrape

import (
	"context"

	"github.com/agenthands/praline/internal/core/model"
)

// Fetcher is the dynamic-information capability: best-effort, loosely
// structured, possibly stale records per category. Implementations
// never return errors; an unreachable source degrades to whatever
// content the implementation can still provide.
type Fetcher interface {
	StoreLocations(ctx context.Context, entities []string) []model.DynamicRecord
	ProductAvailability(ctx context.Context, entities []string) []model.DynamicRecord
	CompanyNews(ctx context.Context) []model.DynamicRecord
	ProductUpdates(ctx context.Context) []model.DynamicRecord
	SustainabilityUpdates(ctx context.Context) []model.DynamicRecord
	ProductInfo(ctx context.Context, entities []string) []model.DynamicRecord
}

// Scrape targets.
const (
	MainSiteURL       = "https://www.madewithnestle.ca"
	CorporateURL      = "https://www.nestle.com"
	NewsURL           = "https://www.nestle.com/media/pressreleases"
	SustainabilityURL = "https://www.nestle.com/sustainability"
	ProductsURL       = "https://www.madewithnestle.ca/brands"
)
