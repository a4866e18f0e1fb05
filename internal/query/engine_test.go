package query

import (
	"testing"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/models"
)

func intPtr(v int) *int { return &v }

// testCatalog is a small fixture with known derived prices:
// p1 best 40, p2 best 150, p3 best 600, p4 unpriceable.
func testCatalog() []models.Product {
	return []models.Product{
		{
			ID: "p1", Name: "Paracetamol Strip", Category: "Medicine", Trend: models.TrendDown, TrendPercentage: 12.0,
			Prices: []models.Price{
				{Platform: "1mg", Price: 40, OriginalPrice: intPtr(50), Available: true},
				{Platform: "NetMeds", Price: 45, Available: true},
			},
		},
		{
			ID: "p2", Name: "Vitamin Jar", Category: "Medicine", Trend: models.TrendUp, TrendPercentage: 2.0,
			Prices: []models.Price{
				{Platform: "NetMeds", Price: 150, OriginalPrice: intPtr(200), Available: true},
			},
		},
		{
			ID: "p3", Name: "LED Bulb Pack", Category: "Home & Garden", Trend: models.TrendDown, TrendPercentage: 8.0,
			Prices: []models.Price{
				{Platform: "Amazon", Price: 600, OriginalPrice: intPtr(700), Available: true},
				{Platform: "Flipkart", Price: 650, Available: true},
			},
		},
		{
			ID: "p4", Name: "Sold Out Gadget", Category: "Electronics", Trend: models.TrendDown, TrendPercentage: 1.0,
			Prices: []models.Price{
				{Platform: "Amazon", Price: 999, Available: false},
			},
		},
	}
}

func ids(items []models.Product) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Product, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestProducts_NoFilters(t *testing.T) {
	res := Products(testCatalog(), Filters{}, "")
	assertOrder(t, res.Items, "p1", "p2", "p3", "p4")
}

func TestProducts_CategoryFilter(t *testing.T) {
	res := Products(testCatalog(), Filters{Category: "Medicine"}, "")
	assertOrder(t, res.Items, "p1", "p2")
}

func TestProducts_UnknownCategoryDeactivates(t *testing.T) {
	// A category absent from the catalog is advisory UI state, not an error:
	// the filter switches off rather than emptying the listing.
	res := Products(testCatalog(), Filters{Category: "Toys"}, "")
	assertOrder(t, res.Items, "p1", "p2", "p3", "p4")
}

func TestProducts_AllSentinelDeactivates(t *testing.T) {
	res := Products(testCatalog(), Filters{Category: "All", PriceRange: "All"}, "")
	assertOrder(t, res.Items, "p1", "p2", "p3", "p4")
}

func TestProducts_PriceRangeBuckets(t *testing.T) {
	tests := []struct {
		bucket string
		want   []string
	}{
		{RangeUnder50, []string{"p1"}},
		{Range50To200, []string{"p2"}},
		{Range200To1000, []string{"p3"}},
		{Range1000To10K, nil},
		{RangeAbove10K, nil},
	}
	for _, tt := range tests {
		res := Products(testCatalog(), Filters{PriceRange: tt.bucket}, "")
		assertOrder(t, res.Items, tt.want...)
	}
}

func TestProducts_ConjunctiveFilters(t *testing.T) {
	// Category AND price range must both hold.
	res := Products(testCatalog(), Filters{Category: "Medicine", PriceRange: RangeUnder50}, "")
	assertOrder(t, res.Items, "p1")
}

func TestProducts_PlatformFilterIncludesUnavailableRows(t *testing.T) {
	// p4's only Amazon row is unavailable, but the listing still shows it
	// grayed out, so the platform filter matches on presence, not stock.
	res := Products(testCatalog(), Filters{Platforms: []string{"Amazon"}}, "")
	assertOrder(t, res.Items, "p3", "p4")
}

func TestProducts_SearchCaseInsensitiveSubstring(t *testing.T) {
	res := Products(testCatalog(), Filters{Search: "  vitamin "}, "")
	assertOrder(t, res.Items, "p2")

	res = Products(testCatalog(), Filters{Search: "BULB"}, "")
	assertOrder(t, res.Items, "p3")
}

func TestProducts_SortBestPrice(t *testing.T) {
	res := Products(testCatalog(), Filters{}, SortBestPrice)
	// Unpriceable p4 sorts last.
	assertOrder(t, res.Items, "p1", "p2", "p3", "p4")
}

func TestProducts_SortBestPriceIdempotent(t *testing.T) {
	first := Products(testCatalog(), Filters{}, SortBestPrice)
	second := Products(first.Items, Filters{}, SortBestPrice)
	assertOrder(t, second.Items, ids(first.Items)...)
}

func TestProducts_SortSavings(t *testing.T) {
	// Derived savings: p3=100, p2=50, p1=10; p4 unpriceable sorts last.
	res := Products(testCatalog(), Filters{}, SortSavings)
	assertOrder(t, res.Items, "p3", "p2", "p1", "p4")
}

func TestProducts_SortTrending(t *testing.T) {
	res := Products(testCatalog(), Filters{}, SortTrending)
	assertOrder(t, res.Items, "p1", "p3", "p2", "p4")
}

func TestProducts_SortNewest(t *testing.T) {
	res := Products(testCatalog(), Filters{}, SortNewest)
	assertOrder(t, res.Items, "p4", "p3", "p2", "p1")
}

func TestProducts_SortRatingTrendDownFirst(t *testing.T) {
	// Trend-down products lead, relative order preserved within each group.
	res := Products(testCatalog(), Filters{}, SortRating)
	assertOrder(t, res.Items, "p1", "p3", "p4", "p2")
}

func TestProducts_UnknownSortKeepsOrder(t *testing.T) {
	res := Products(testCatalog(), Filters{}, "popularity")
	assertOrder(t, res.Items, "p1", "p2", "p3", "p4")
}

func TestProducts_Stats(t *testing.T) {
	res := Products(testCatalog(), Filters{}, "")

	if res.Stats.Count != 4 {
		t.Errorf("count = %d, want 4", res.Stats.Count)
	}
	// Savings: p1=10, p2=50, p3=100; p4 contributes nothing.
	if res.Stats.TotalSavings != 160 {
		t.Errorf("total savings = %d, want 160", res.Stats.TotalSavings)
	}
	if res.Stats.PriceDropCount != 3 {
		t.Errorf("price drop count = %d, want 3", res.Stats.PriceDropCount)
	}
}

func TestProducts_UnpriceableFailsActivePriceFilter(t *testing.T) {
	res := Products(testCatalog(), Filters{PriceRange: RangeAbove10K}, "")
	// p4's listed price is 999 but undefined without availability.
	for _, p := range res.Items {
		if p.ID == "p4" {
			t.Error("unpriceable product passed an active price filter")
		}
	}
}

func TestProducts_SeedCatalogMedicineUnder50(t *testing.T) {
	res := Products(catalog.Default().All(), Filters{Category: "Medicine", PriceRange: RangeUnder50}, "")
	assertOrder(t, res.Items, "7")
}

func TestProducts_DoesNotMutateInput(t *testing.T) {
	input := testCatalog()
	Products(input, Filters{}, SortNewest)
	// Sorting happens on the filtered copy; the caller's slice keeps
	// insertion order.
	assertOrder(t, input, "p1", "p2", "p3", "p4")
}
