// Package pricing computes best-price, reference-MRP, and discount figures
// for a product's per-platform price list. All functions are pure: they take
// the price list as input and hold no state, so they can run on every
// filter/sort change without side effects.
package pricing

import (
	"errors"
	"math"
	"sort"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

// ErrNoAvailablePlatform is returned when every price row of a product is
// marked unavailable. Best-price figures are undefined in that case and must
// not silently default to zero or the first entry.
var ErrNoAvailablePlatform = errors.New("NO_AVAILABLE_PLATFORM")

// estimatedMarkup is the heuristic markup applied to the highest available
// price when no platform advertises an original price. The resulting
// reference MRP is an estimate, not a measured value; Result.EstimatedMRP
// flags it so callers can distinguish the two.
const estimatedMarkup = 1.20

// Result holds the derived pricing figures for a single product.
type Result struct {
	// BestPrice is the minimum price among available platforms.
	BestPrice int `json:"bestPrice"`
	// BestPlatform is the platform achieving BestPrice. Ties resolve to the
	// platform appearing first in the product's price list.
	BestPlatform string `json:"bestPlatform"`
	// ReferenceMRP is the single per-product baseline that savings and
	// discounts are measured against: the maximum advertised original price,
	// or the markup estimate when none is advertised.
	ReferenceMRP int `json:"referenceMRP"`
	// EstimatedMRP is true when ReferenceMRP came from the markup heuristic.
	EstimatedMRP bool `json:"estimatedMRP"`
	// TotalSavings is ReferenceMRP - BestPrice, unclamped. Inconsistent data
	// can make it negative; display policy is the caller's call.
	TotalSavings int `json:"totalSavings"`
	// TotalDiscountPct is TotalSavings as a rounded percentage of ReferenceMRP.
	TotalDiscountPct int `json:"totalDiscountPercentage"`
	// RankedPlatforms lists the available price rows sorted by descending
	// per-platform discount, ties keeping original list order.
	RankedPlatforms []models.Price `json:"rankedPlatforms"`
}

// Compute derives the pricing figures for a product from its price list.
// The stored BestPrice/Savings fields on the product are ignored; they are
// seed-data caches and this derivation is the source of truth.
func Compute(p *models.Product) (*Result, error) {
	available := make([]models.Price, 0, len(p.Prices))
	for _, pr := range p.Prices {
		if pr.Available {
			available = append(available, pr)
		}
	}
	if len(available) == 0 {
		return nil, ErrNoAvailablePlatform
	}

	best := available[0]
	maxAvailable := available[0].Price
	for _, pr := range available[1:] {
		if pr.Price < best.Price {
			best = pr
		}
		if pr.Price > maxAvailable {
			maxAvailable = pr.Price
		}
	}

	// Reference MRP: maximum advertised original price across the whole list,
	// available or not. Fall back to the markup heuristic over available
	// prices when nothing is advertised.
	mrp := 0
	estimated := false
	for _, pr := range p.Prices {
		if pr.OriginalPrice != nil && *pr.OriginalPrice > mrp {
			mrp = *pr.OriginalPrice
		}
	}
	if mrp == 0 {
		mrp = roundHalfUp(float64(maxAvailable) * estimatedMarkup)
		estimated = true
	}

	savings := mrp - best.Price

	res := &Result{
		BestPrice:        best.Price,
		BestPlatform:     best.Platform,
		ReferenceMRP:     mrp,
		EstimatedMRP:     estimated,
		TotalSavings:     savings,
		TotalDiscountPct: percentOf(savings, mrp),
	}

	ranked := make([]models.Price, len(available))
	copy(ranked, available)
	sort.SliceStable(ranked, func(i, j int) bool {
		return res.Discount(ranked[i]) > res.Discount(ranked[j])
	})
	res.RankedPlatforms = ranked

	return res, nil
}

// Discount returns the discount percentage for one platform's price row:
// against its own original price when advertised, otherwise against the
// product-wide reference MRP.
func (r *Result) Discount(pr models.Price) int {
	if pr.OriginalPrice != nil {
		return percentOf(*pr.OriginalPrice-pr.Price, *pr.OriginalPrice)
	}
	return percentOf(r.ReferenceMRP-pr.Price, r.ReferenceMRP)
}

func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}

// roundHalfUp rounds half values toward positive infinity, matching the
// rounding the mobile clients apply. math.Round differs on negative halves.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
