package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/query"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	// nil listing cache: pass-through, no Redis needed.
	return NewProductService(catalog.Default(), nil)
}

func TestProductService_ListEnrichesWithDerivedPricing(t *testing.T) {
	svc := newProductService(t)

	res, err := svc.List(context.Background(), query.Filters{Category: "Medicine"}, query.SortBestPrice, 1, 50)
	require.NoError(t, err)
	require.Len(t, res.Products, 2)

	first := res.Products[0]
	assert.Equal(t, "7", first.ID)
	require.NotNil(t, first.Pricing)
	assert.Equal(t, 22, first.Pricing.BestPrice)
	assert.Equal(t, "NetMeds", first.Pricing.BestPlatform)
	assert.Equal(t, 30, first.Pricing.ReferenceMRP)
	assert.False(t, first.Pricing.EstimatedMRP)
}

func TestProductService_ListPagination(t *testing.T) {
	svc := newProductService(t)

	page1, err := svc.List(context.Background(), query.Filters{}, "", 1, 5)
	require.NoError(t, err)
	assert.Len(t, page1.Products, 5)
	assert.Equal(t, 12, page1.Total)

	page3, err := svc.List(context.Background(), query.Filters{}, "", 3, 5)
	require.NoError(t, err)
	assert.Len(t, page3.Products, 2)

	beyond, err := svc.List(context.Background(), query.Filters{}, "", 9, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond.Products)
	assert.Equal(t, 12, beyond.Total)
}

func TestProductService_ListStatsCoverWholeResultSet(t *testing.T) {
	svc := newProductService(t)

	res, err := svc.List(context.Background(), query.Filters{}, "", 1, 3)
	require.NoError(t, err)
	// Stats describe all 12 matches, not just the 3 on this page.
	assert.Equal(t, 12, res.Stats.Count)
	assert.Equal(t, 11, res.Stats.PriceDropCount)
}

func TestProductService_GetUnknownProduct(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.Get("does-not-exist")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestProductService_GetPricing(t *testing.T) {
	svc := newProductService(t)

	res, err := svc.GetPricing("2")
	require.NoError(t, err)
	// Product 2 advertises no original price: estimated MRP path.
	assert.Equal(t, 12, res.BestPrice)
	assert.Equal(t, 18, res.ReferenceMRP)
	assert.True(t, res.EstimatedMRP)
	assert.Equal(t, 6, res.TotalSavings)
}

func TestProductService_DealsRankedByDiscount(t *testing.T) {
	svc := newProductService(t)

	deals := svc.Deals(3)
	require.Len(t, deals, 3)

	prev := 101
	for _, d := range deals {
		require.NotNil(t, d.Pricing)
		assert.LessOrEqual(t, d.Pricing.TotalDiscountPct, prev)
		prev = d.Pricing.TotalDiscountPct
	}
	// The book has the steepest discount in the seed: 200/399 = 50%.
	assert.Equal(t, "12", deals[0].ID)
}
