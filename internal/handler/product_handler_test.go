package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.Default()
	productSvc := service.NewProductService(store, nil)
	h := NewProductHandler(productSvc, nil)

	router := gin.New()
	router.GET("/v1/catalog/products", h.GetProducts)
	router.GET("/v1/catalog/products/:id", h.GetProduct)
	router.GET("/v1/catalog/products/:id/pricing", h.GetPricing)
	router.GET("/v1/catalog/categories", h.GetCategories)
	router.GET("/v1/catalog/deals", h.GetDeals)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta struct {
		Pagination *struct {
			TotalItems int `json:"totalItems"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	} `json:"meta"`
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetProducts_FilteredAndPaginated(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/products?category=Medicine&sortBy=bestPrice")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, 2, env.Meta.Pagination.TotalItems)

	var data struct {
		Products []struct {
			ID      string `json:"id"`
			Pricing *struct {
				BestPrice    int    `json:"bestPrice"`
				BestPlatform string `json:"bestPlatform"`
			} `json:"pricing"`
		} `json:"products"`
		Stats struct {
			Count          int `json:"count"`
			PriceDropCount int `json:"priceDropCount"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 2)
	assert.Equal(t, "7", data.Products[0].ID)
	require.NotNil(t, data.Products[0].Pricing)
	assert.Equal(t, 22, data.Products[0].Pricing.BestPrice)
	assert.Equal(t, "NetMeds", data.Products[0].Pricing.BestPlatform)
	assert.Equal(t, 2, data.Stats.Count)
}

func TestGetProducts_UnknownFilterDegradesToFullList(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/products?category=Spaceships&sortBy=warp")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, 12, env.Meta.Pagination.TotalItems)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/products/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestGetPricing_WorkedExample(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/products/1/pricing")
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		BestPrice       int    `json:"bestPrice"`
		BestPlatform    string `json:"bestPlatform"`
		ReferenceMRP    int    `json:"referenceMRP"`
		TotalSavings    int    `json:"totalSavings"`
		RankedPlatforms []struct {
			Platform string `json:"platform"`
		} `json:"rankedPlatforms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 58, data.BestPrice)
	assert.Equal(t, "Blinkit", data.BestPlatform)
	assert.Equal(t, 65, data.ReferenceMRP)
	assert.Equal(t, 7, data.TotalSavings)
	// Dunzo is unavailable and must not be ranked.
	for _, rp := range data.RankedPlatforms {
		assert.NotEqual(t, "Dunzo", rp.Platform)
	}
}

func TestGetCategories(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/categories")
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"Groceries", "Electronics", "Food", "Medicine", "Fashion", "Home & Garden", "Books"}, data.Categories)
}

func TestGetDeals_Limited(t *testing.T) {
	router := newTestRouter()

	w, env := doGet(t, router, "/v1/catalog/deals?limit=4")
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Deals []struct {
			ID string `json:"id"`
		} `json:"deals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Deals, 4)
	assert.Equal(t, "12", data.Deals[0].ID)
}
