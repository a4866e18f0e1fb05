// Package catalog holds the static product catalog the service operates
// over. The store is immutable for the lifetime of the process; it stands in
// for a real pricing/catalog upstream.
package catalog

import (
	"fmt"

	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/pricing"
)

// Store is an immutable, validated product collection.
type Store struct {
	products []models.Product
	byID     map[string]int
}

// NewStore validates and wraps a product slice. It rejects duplicate product
// ids, empty price lists, and duplicate platforms within one product, since
// the pricing engine's tie-break and ranking contracts assume platform
// uniqueness.
func NewStore(products []models.Product) (*Store, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has empty id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if len(p.Prices) == 0 {
			return nil, fmt.Errorf("product %q has no prices", p.ID)
		}
		platforms := make(map[string]struct{}, len(p.Prices))
		for _, pr := range p.Prices {
			if _, dup := platforms[pr.Platform]; dup {
				return nil, fmt.Errorf("product %q lists platform %q twice", p.ID, pr.Platform)
			}
			platforms[pr.Platform] = struct{}{}
		}
		byID[p.ID] = i
	}
	return &Store{products: products, byID: byID}, nil
}

// All returns the products in insertion order. The returned slice is a copy;
// callers may reorder it freely.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (*models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	p := s.products[i]
	return &p, true
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}

// Categories returns the distinct categories in first-appearance order.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// PlatformsFor returns the platforms relevant to a category filter chip row.
// Unknown categories get the "All" set.
func (s *Store) PlatformsFor(category string) []string {
	if ps, ok := categoryPlatforms[category]; ok {
		return ps
	}
	return categoryPlatforms["All"]
}

// Drift describes a divergence between a stored derived-value cache and the
// pricing engine's output for one product.
type Drift struct {
	ProductID string
	Field     string
	Stored    int
	Derived   int
}

// VerifyDerived recomputes best price and savings for every product and
// reports where the stored seed caches disagree. Divergence is a
// data-integrity defect in the seed, never patched silently.
func (s *Store) VerifyDerived() []Drift {
	var drifts []Drift
	for i := range s.products {
		p := &s.products[i]
		res, err := pricing.Compute(p)
		if err != nil {
			drifts = append(drifts, Drift{ProductID: p.ID, Field: "bestPrice", Stored: p.BestPrice, Derived: -1})
			continue
		}
		if res.BestPrice != p.BestPrice {
			drifts = append(drifts, Drift{ProductID: p.ID, Field: "bestPrice", Stored: p.BestPrice, Derived: res.BestPrice})
		}
		if res.TotalSavings != p.Savings {
			drifts = append(drifts, Drift{ProductID: p.ID, Field: "savings", Stored: p.Savings, Derived: res.TotalSavings})
		}
	}
	return drifts
}
