package dynamic

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
	"github.com/agenthands/praline/internal/scrape"
)

// Dynamic info categories.
const (
	CategoryNews                  = "news"
	CategoryProductUpdates        = "product_updates"
	CategoryAvailability          = "availability"
	CategoryStoreLocations        = "store_locations"
	CategorySustainabilityUpdates = "sustainability_updates"
)

// Phrases that signal the caller wants time-sensitive information.
var dynamicTriggers = []string{
	// Availability questions
	"where can i buy", "where to buy", "where do i find", "store locations",
	"available at", "find in stores", "purchase", "buy online",

	// Current/recent information
	"what's new", "latest", "recent", "current", "today", "now",
	"updates", "news", "announcement", "recently",

	// Pricing and promotions
	"price", "cost", "how much", "promotion", "sale", "discount",

	// Real-time availability
	"in stock", "available now", "can i get", "do you have",
}

var intentTriggers = map[string]bool{
	intent.CategoryAvailability: true,
	intent.CategoryCompany:      true,
	intent.CategoryCEO:          true,
	intent.CategoryGeneral:      true,
}

// Supplementer decides when a query needs dynamic information, fetches
// it per category, and caches results for the configured TTL.
type Supplementer struct {
	fetcher scrape.Fetcher
	cache   *Cache
}

func NewSupplementer(fetcher scrape.Fetcher, cache *Cache) *Supplementer {
	return &Supplementer{fetcher: fetcher, cache: cache}
}

// Needed reports whether dynamic information should be fetched at all.
func (s *Supplementer) Needed(query, intentCategory string) bool {
	lower := strings.ToLower(query)
	for _, trigger := range dynamicTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return intentTriggers[intentCategory]
}

// Supplement returns dynamic information for the query, from cache when
// a live entry exists. A total failure yields a single error record
// rather than propagating.
func (s *Supplementer) Supplement(ctx context.Context, query, intentCategory string, entities []string) (info model.DynamicInfo) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("dynamic information retrieval failed")
			info = model.DynamicInfo{
				"error": {{"error": fmt.Sprintf("Dynamic information unavailable: %v", r)}},
			}
		}
	}()

	key := Key(intentCategory, query)
	if cached, ok := s.cache.Get(key); ok {
		log.Debug().Str("key", key).Msg("using cached dynamic info")
		return cached
	}

	lower := strings.ToLower(query)
	info = model.DynamicInfo{}

	switch {
	case intentCategory == intent.CategoryAvailability || strings.Contains(lower, "where"):
		info[CategoryStoreLocations] = s.fetcher.StoreLocations(ctx, entities)
		info[CategoryAvailability] = s.fetcher.ProductAvailability(ctx, entities)

	case intentCategory == intent.CategoryCompany || intentCategory == intent.CategoryCEO || strings.Contains(lower, "new"):
		info[CategoryNews] = s.fetcher.CompanyNews(ctx)
		info[CategoryProductUpdates] = s.fetcher.ProductUpdates(ctx)

	case intentCategory == intent.CategorySustainability:
		info[CategorySustainabilityUpdates] = s.fetcher.SustainabilityUpdates(ctx)

	case intentCategory == intent.CategoryProductInfo:
		info[CategoryProductUpdates] = s.fetcher.ProductInfo(ctx, entities)
	}

	// Recency language always warrants a news check.
	for _, word := range []string{"new", "latest", "recent", "update"} {
		if strings.Contains(lower, word) {
			info[CategoryNews] = s.fetcher.CompanyNews(ctx)
			break
		}
	}

	// Drop empty categories so callers can treat presence as signal.
	for category, records := range info {
		if len(records) == 0 {
			delete(info, category)
		}
	}

	s.cache.Put(key, info)
	return info
}
