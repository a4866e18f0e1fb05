package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/cache"
	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/pricing"
	"github.com/pricesnap/pricesnap-api/internal/query"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// ProductService serves catalog listings, single-product reads, and pricing
// breakdowns. Listing responses always carry engine-derived pricing; the
// stored seed caches are never returned.
type ProductService struct {
	store        *catalog.Store
	listingCache *cache.ListingCache
}

// NewProductService constructs a ProductService. listingCache may be nil to
// disable caching.
func NewProductService(store *catalog.Store, listingCache *cache.ListingCache) *ProductService {
	return &ProductService{store: store, listingCache: listingCache}
}

// ProductResponse is the outward-facing payload for product listings. The
// pricing block is absent when every platform is unavailable; Unpriceable
// tells the client to render the card without a best-price banner.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Image           string          `json:"image"`
	Prices          []models.Price  `json:"prices"`
	Trend           models.Trend    `json:"trend"`
	TrendPercentage float64         `json:"trendPercentage"`
	Pricing         *pricing.Result `json:"pricing,omitempty"`
	Unpriceable     bool            `json:"unpriceable,omitempty"`
}

// ListingResult is a page of enriched products plus listing-wide stats.
type ListingResult struct {
	Products []ProductResponse `json:"products"`
	Stats    query.Stats       `json:"stats"`
	Total    int               `json:"total"`
}

// List runs the query engine over the catalog and returns one page of
// enriched products together with the aggregate stats of the whole result
// set (not just the page). Results are cached per filter/sort/page tuple.
func (s *ProductService) List(ctx context.Context, f query.Filters, sortBy query.SortKey, page, limit int) (*ListingResult, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	key := cache.Key(f.Category, f.PriceRange, f.Platforms, f.Search, string(sortBy), page, limit)
	var cached ListingResult
	if hit, err := s.listingCache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Msg("Listing cache read failed")
	} else if hit {
		return &cached, nil
	}

	res := query.Products(s.store.All(), f, sortBy)

	start := (page - 1) * limit
	if start > len(res.Items) {
		start = len(res.Items)
	}
	end := start + limit
	if end > len(res.Items) {
		end = len(res.Items)
	}

	out := &ListingResult{
		Products: enrich(res.Items[start:end]),
		Stats:    res.Stats,
		Total:    len(res.Items),
	}

	if err := s.listingCache.Set(ctx, key, out); err != nil {
		log.Warn().Err(err).Msg("Listing cache write failed")
	}
	return out, nil
}

// Get returns one enriched product.
func (s *ProductService) Get(id string) (*ProductResponse, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	resp := enrichOne(*p)
	return &resp, nil
}

// GetPricing returns the full pricing breakdown for one product.
func (s *ProductService) GetPricing(id string) (*pricing.Result, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	res, err := pricing.Compute(p)
	if err != nil {
		return nil, utils.ErrNoAvailablePlatform
	}
	return res, nil
}

// Categories returns the catalog's category labels.
func (s *ProductService) Categories() []string {
	return s.store.Categories()
}

// PlatformsFor returns the platform chips for a category.
func (s *ProductService) PlatformsFor(category string) []string {
	return s.store.PlatformsFor(category)
}

// Deals returns the top products ranked by total discount percentage,
// ties broken by absolute savings. Unpriceable products are skipped.
func (s *ProductService) Deals(limit int) []ProductResponse {
	if limit <= 0 {
		limit = 10
	}

	type dealEntry struct {
		product models.Product
		result  *pricing.Result
	}
	deals := make([]dealEntry, 0, s.store.Len())
	for _, p := range s.store.All() {
		res, err := pricing.Compute(&p)
		if err != nil {
			continue
		}
		deals = append(deals, dealEntry{product: p, result: res})
	}
	sort.SliceStable(deals, func(i, j int) bool {
		if deals[i].result.TotalDiscountPct != deals[j].result.TotalDiscountPct {
			return deals[i].result.TotalDiscountPct > deals[j].result.TotalDiscountPct
		}
		return deals[i].result.TotalSavings > deals[j].result.TotalSavings
	})
	if len(deals) > limit {
		deals = deals[:limit]
	}

	out := make([]ProductResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, toResponse(d.product, d.result, false))
	}
	return out
}

func enrich(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, enrichOne(products[i]))
	}
	return out
}

func enrichOne(p models.Product) ProductResponse {
	res, err := pricing.Compute(&p)
	if err != nil {
		return toResponse(p, nil, true)
	}
	return toResponse(p, res, false)
}

func toResponse(p models.Product, res *pricing.Result, unpriceable bool) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Category:        p.Category,
		Image:           p.Image,
		Prices:          p.Prices,
		Trend:           p.Trend,
		TrendPercentage: p.TrendPercentage,
		Pricing:         res,
		Unpriceable:     unpriceable,
	}
}
