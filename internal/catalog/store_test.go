package catalog

import (
	"testing"

	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/pricing"
)

func TestNewStore_RejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
	}{
		{
			name:     "empty id",
			products: []models.Product{{ID: "", Prices: []models.Price{{Platform: "A", Price: 1, Available: true}}}},
		},
		{
			name: "duplicate id",
			products: []models.Product{
				{ID: "x", Prices: []models.Price{{Platform: "A", Price: 1, Available: true}}},
				{ID: "x", Prices: []models.Price{{Platform: "B", Price: 2, Available: true}}},
			},
		},
		{
			name:     "no prices",
			products: []models.Product{{ID: "x"}},
		},
		{
			name: "duplicate platform within product",
			products: []models.Product{
				{ID: "x", Prices: []models.Price{
					{Platform: "A", Price: 1, Available: true},
					{Platform: "A", Price: 2, Available: true},
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewStore(tt.products); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestDefault_SeedLoads(t *testing.T) {
	s := Default()
	if s.Len() != 12 {
		t.Fatalf("catalog size = %d, want 12", s.Len())
	}

	p, ok := s.Get("7")
	if !ok {
		t.Fatal("product 7 missing")
	}
	if p.Name != "Paracetamol 500mg (10 tablets)" {
		t.Errorf("product 7 name = %q", p.Name)
	}

	if _, ok := s.Get("999"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestDefault_Categories(t *testing.T) {
	want := []string{"Groceries", "Electronics", "Food", "Medicine", "Fashion", "Home & Garden", "Books"}
	got := Default().Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v (first-appearance order)", got, want)
		}
	}
}

func TestPlatformsFor_UnknownCategoryFallsBack(t *testing.T) {
	s := Default()
	got := s.PlatformsFor("Nonexistent")
	want := s.PlatformsFor("All")
	if len(got) != len(want) {
		t.Fatalf("unknown category platforms = %v, want the All set %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unknown category platforms = %v, want %v", got, want)
		}
	}
}

// The seed carries bestPrice/savings display caches. Every stored best price
// matches the derivation; exactly one savings value drifts (product 2, which
// has no advertised original price, so its reference MRP is estimated).
func TestVerifyDerived_KnownSeedDrift(t *testing.T) {
	drifts := Default().VerifyDerived()
	if len(drifts) != 1 {
		t.Fatalf("drifts = %+v, want exactly one", drifts)
	}
	d := drifts[0]
	if d.ProductID != "2" || d.Field != "savings" {
		t.Fatalf("drift = %+v, want product 2 savings", d)
	}
	if d.Stored != 3 || d.Derived != 6 {
		t.Errorf("drift stored/derived = %d/%d, want 3/6", d.Stored, d.Derived)
	}
}

func TestSeed_StoredBestPricesMatchDerived(t *testing.T) {
	for _, p := range Default().All() {
		res, err := pricing.Compute(&p)
		if err != nil {
			t.Fatalf("product %s: %v", p.ID, err)
		}
		if res.BestPrice != p.BestPrice {
			t.Errorf("product %s stored best price %d, derived %d", p.ID, p.BestPrice, res.BestPrice)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := Default()
	all := s.All()
	all[0], all[1] = all[1], all[0]

	again := s.All()
	if again[0].ID != "1" {
		t.Error("reordering the returned slice leaked into the store")
	}
}
