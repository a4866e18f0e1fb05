package pricing

import (
	"errors"
	"testing"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

func intPtr(v int) *int { return &v }

func product(prices ...models.Price) *models.Product {
	return &models.Product{ID: "p", Name: "test product", Prices: prices}
}

func TestCompute_BestPriceSkipsUnavailable(t *testing.T) {
	p := product(
		models.Price{Platform: "A", Price: 100, OriginalPrice: intPtr(120), Available: true},
		models.Price{Platform: "B", Price: 90, Available: false},
		models.Price{Platform: "C", Price: 95, Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BestPrice != 95 {
		t.Errorf("best price = %d, want 95 (B is unavailable)", res.BestPrice)
	}
	if res.BestPlatform != "C" {
		t.Errorf("best platform = %s, want C", res.BestPlatform)
	}
	if res.ReferenceMRP != 120 {
		t.Errorf("reference MRP = %d, want 120", res.ReferenceMRP)
	}
	if res.EstimatedMRP {
		t.Error("MRP should not be flagged estimated when an original price is advertised")
	}
	if res.TotalSavings != 25 {
		t.Errorf("total savings = %d, want 25", res.TotalSavings)
	}
	if res.TotalDiscountPct != 21 {
		t.Errorf("total discount = %d%%, want 21%% (25/120 rounded)", res.TotalDiscountPct)
	}
}

func TestCompute_AllUnavailable(t *testing.T) {
	p := product(
		models.Price{Platform: "A", Price: 100, Available: false},
		models.Price{Platform: "B", Price: 90, Available: false},
	)

	if _, err := Compute(p); !errors.Is(err, ErrNoAvailablePlatform) {
		t.Fatalf("error = %v, want ErrNoAvailablePlatform", err)
	}
}

func TestCompute_TieBreakFirstWins(t *testing.T) {
	p := product(
		models.Price{Platform: "A", Price: 50, Available: true},
		models.Price{Platform: "B", Price: 50, Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BestPlatform != "A" {
		t.Errorf("best platform = %s, want A (first in list wins ties)", res.BestPlatform)
	}
}

func TestCompute_EstimatedMRP(t *testing.T) {
	// No original price anywhere: MRP = round(maxAvailable * 1.2).
	p := product(
		models.Price{Platform: "A", Price: 14, Available: true},
		models.Price{Platform: "B", Price: 12, Available: true},
		models.Price{Platform: "C", Price: 15, Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ReferenceMRP != 18 {
		t.Errorf("reference MRP = %d, want 18 (15 * 1.2)", res.ReferenceMRP)
	}
	if !res.EstimatedMRP {
		t.Error("MRP should be flagged estimated")
	}
	if res.TotalSavings != 6 {
		t.Errorf("total savings = %d, want 6", res.TotalSavings)
	}
}

func TestCompute_MRPConsidersUnavailableRows(t *testing.T) {
	// The unavailable row advertises the highest original price; it still
	// anchors the reference MRP even though it cannot be the best price.
	p := product(
		models.Price{Platform: "A", Price: 100, OriginalPrice: intPtr(110), Available: true},
		models.Price{Platform: "B", Price: 90, OriginalPrice: intPtr(150), Available: false},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ReferenceMRP != 150 {
		t.Errorf("reference MRP = %d, want 150", res.ReferenceMRP)
	}
}

func TestCompute_NegativeSavingsUnclamped(t *testing.T) {
	// Inconsistent data: best price above the advertised original.
	p := product(
		models.Price{Platform: "A", Price: 130, OriginalPrice: intPtr(120), Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalSavings != -10 {
		t.Errorf("total savings = %d, want -10 (never clamped)", res.TotalSavings)
	}
}

func TestDiscount_OwnOriginalBeatsGlobalMRP(t *testing.T) {
	p := product(
		models.Price{Platform: "A", Price: 80, OriginalPrice: intPtr(100), Available: true},
		models.Price{Platform: "B", Price: 90, Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A discounts against its own original: (100-80)/100 = 20%.
	if d := res.Discount(p.Prices[0]); d != 20 {
		t.Errorf("discount(A) = %d%%, want 20%%", d)
	}
	// B has no original and discounts against the product MRP of 100.
	if d := res.Discount(p.Prices[1]); d != 10 {
		t.Errorf("discount(B) = %d%%, want 10%%", d)
	}
}

func TestCompute_RankedPlatformsDescendingDiscount(t *testing.T) {
	// Discounts: A 5%, B 30%, C 20%; D is unavailable.
	p := product(
		models.Price{Platform: "A", Price: 95, OriginalPrice: intPtr(100), Available: true},
		models.Price{Platform: "B", Price: 70, OriginalPrice: intPtr(100), Available: true},
		models.Price{Platform: "C", Price: 80, OriginalPrice: intPtr(100), Available: true},
		models.Price{Platform: "D", Price: 110, Available: false},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"B", "C", "A"}
	if len(res.RankedPlatforms) != len(want) {
		t.Fatalf("ranked %d platforms, want %d (unavailable rows excluded)", len(res.RankedPlatforms), len(want))
	}
	for i, w := range want {
		if res.RankedPlatforms[i].Platform != w {
			t.Errorf("rank %d = %s, want %s", i, res.RankedPlatforms[i].Platform, w)
		}
	}
}

func TestCompute_RankedPlatformsStableOnTies(t *testing.T) {
	p := product(
		models.Price{Platform: "A", Price: 90, OriginalPrice: intPtr(100), Available: true},
		models.Price{Platform: "B", Price: 45, OriginalPrice: intPtr(50), Available: true},
	)

	res, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both discount 10%; original list order must hold.
	if res.RankedPlatforms[0].Platform != "A" || res.RankedPlatforms[1].Platform != "B" {
		t.Errorf("tied ranks reordered: got [%s %s], want [A B]",
			res.RankedPlatforms[0].Platform, res.RankedPlatforms[1].Platform)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.4, 2},
		{2.5, 3},
		{2.6, 3},
		{-2.5, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPercentOf_ZeroWhole(t *testing.T) {
	if got := percentOf(10, 0); got != 0 {
		t.Errorf("percentOf(10, 0) = %d, want 0", got)
	}
}
