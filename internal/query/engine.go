// Package query filters, sorts, and aggregates catalog products for the
// listing surfaces. Like the pricing engine it is pure: every call derives
// its ordering keys through pricing.Compute and never mutates the catalog.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/pricing"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortBestPrice SortKey = "bestPrice"
	SortSavings   SortKey = "savings"
	SortTrending  SortKey = "trending"
	// SortNewest is the reverse of catalog insertion order. The catalog has
	// no recency field; this is a stand-in policy, not a chronological sort.
	SortNewest SortKey = "newest"
	// SortRating orders trend-down products before trend-up, preserving
	// relative order within each group. A proxy: there is no product-level
	// rating field.
	SortRating SortKey = "rating"
)

// Price range bucket identifiers. Bounds follow the deals screen:
// under50 is exclusive, 50-200 inclusive on both ends, the remaining
// buckets exclusive on the lower bound and inclusive on the upper.
const (
	RangeUnder50   = "under50"
	Range50To200   = "50-200"
	Range200To1000 = "200-1000"
	Range1000To10K = "1000-10000"
	RangeAbove10K  = "above10000"
	filterSentinel = "All"
)

// Filters is the conjunction of active listing constraints. Zero values and
// the "All" sentinel deactivate the respective filter; unrecognized values
// deactivate it too, since filters are advisory UI state rather than
// validated trust-boundary input.
type Filters struct {
	Category   string
	PriceRange string
	Platforms  []string
	Search     string
}

// Stats aggregates the result list.
type Stats struct {
	Count int `json:"count"`
	// TotalSavings sums derived total savings over priceable products.
	TotalSavings int `json:"totalSavings"`
	// PriceDropCount counts products trending down.
	PriceDropCount int `json:"priceDropCount"`
}

// Result is a derived listing: the catalog is never mutated.
type Result struct {
	Items []models.Product `json:"items"`
	Stats Stats            `json:"stats"`
}

// Products applies filters then the sort order to the catalog slice and
// computes aggregates over the survivors. Filters are conjunctive: a product
// failing any one active filter is excluded. An unrecognized sort key keeps
// catalog insertion order.
func Products(catalog []models.Product, f Filters, sortBy SortKey) Result {
	categoryActive := f.Category != "" && f.Category != filterSentinel && categoryExists(catalog, f.Category)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if categoryActive && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(f.Platforms) > 0 && !offersAnyPlatform(p, f.Platforms) {
			continue
		}
		if !matchesPriceRange(p, f.PriceRange) {
			continue
		}
		filtered = append(filtered, p)
	}

	applySort(filtered, sortBy)

	stats := Stats{Count: len(filtered)}
	for i := range filtered {
		if res, err := pricing.Compute(&filtered[i]); err == nil {
			stats.TotalSavings += res.TotalSavings
		}
		if filtered[i].Trend == models.TrendDown {
			stats.PriceDropCount++
		}
	}

	return Result{Items: filtered, Stats: stats}
}

func categoryExists(catalog []models.Product, category string) bool {
	for i := range catalog {
		if catalog[i].Category == category {
			return true
		}
	}
	return false
}

// offersAnyPlatform matches when any price row's platform is in the set,
// regardless of availability: the listing shows unavailable rows grayed out.
func offersAnyPlatform(p models.Product, platforms []string) bool {
	for _, pr := range p.Prices {
		for _, want := range platforms {
			if pr.Platform == want {
				return true
			}
		}
	}
	return false
}

// matchesPriceRange buckets on the derived best price. A product with no
// available platform fails every active price bucket but passes when the
// filter is off.
func matchesPriceRange(p models.Product, bucket string) bool {
	if bucket == "" || bucket == filterSentinel {
		return true
	}
	res, err := pricing.Compute(&p)
	if err != nil {
		return !isKnownRange(bucket)
	}
	best := res.BestPrice
	switch bucket {
	case RangeUnder50:
		return best < 50
	case Range50To200:
		return best >= 50 && best <= 200
	case Range200To1000:
		return best > 200 && best <= 1000
	case Range1000To10K:
		return best > 1000 && best <= 10000
	case RangeAbove10K:
		return best > 10000
	default:
		// Unrecognized bucket behaves as "All".
		return true
	}
}

func isKnownRange(bucket string) bool {
	switch bucket {
	case RangeUnder50, Range50To200, Range200To1000, Range1000To10K, RangeAbove10K:
		return true
	}
	return false
}

func applySort(items []models.Product, sortBy SortKey) {
	switch sortBy {
	case SortBestPrice:
		keys := derivedKeys(items)
		sort.SliceStable(items, func(i, j int) bool {
			return keys[items[i].ID].bestPrice < keys[items[j].ID].bestPrice
		})
	case SortSavings:
		keys := derivedKeys(items)
		sort.SliceStable(items, func(i, j int) bool {
			return keys[items[i].ID].savings > keys[items[j].ID].savings
		})
	case SortTrending:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].TrendPercentage > items[j].TrendPercentage
		})
	case SortNewest:
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Trend == models.TrendDown && items[j].Trend != models.TrendDown
		})
	default:
		// Unrecognized key: keep insertion order.
	}
}

type sortKeys struct {
	bestPrice int
	savings   int
}

// derivedKeys precomputes pricing-derived ordering keys. Unpriceable
// products sort last under both bestPrice and savings.
func derivedKeys(items []models.Product) map[string]sortKeys {
	keys := make(map[string]sortKeys, len(items))
	for i := range items {
		res, err := pricing.Compute(&items[i])
		if err != nil {
			keys[items[i].ID] = sortKeys{bestPrice: math.MaxInt, savings: math.MinInt}
			continue
		}
		keys[items[i].ID] = sortKeys{bestPrice: res.BestPrice, savings: res.TotalSavings}
	}
	return keys
}
