package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pricesnap/pricesnap-api/internal/query"
	"github.com/pricesnap/pricesnap-api/internal/service"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// ProductHandler handles catalog HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
	profileService *service.ProfileService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService, profileService *service.ProfileService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		profileService: profileService,
	}
}

// GetProducts returns the filtered, sorted product list with pagination.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters := query.Filters{
		Category:   c.Query("category"),   // Medicine, Food Delivery, etc
		PriceRange: c.Query("priceRange"), // under50, 50-200, ...
		Search:     c.Query("search"),
	}
	if v := c.Query("platforms"); v != "" {
		filters.Platforms = strings.Split(v, ",")
	}
	sortBy := query.SortKey(c.Query("sortBy"))

	// pagination
	page := 1
	limit := 50
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	result, err := h.productService.List(c.Request.Context(), filters, sortBy, page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": result.Products,
		"stats":    result.Stats,
	}, page, limit, result.Total)
}

// GetProduct returns a single product with derived pricing.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// GetPricing returns the full pricing breakdown for a product. A pricing
// lookup by a signed-in user counts toward their comparison stats.
func (h *ProductHandler) GetPricing(c *gin.Context) {
	result, err := h.productService.GetPricing(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrNoAvailablePlatform) {
			utils.Error(c, 422, "NO_AVAILABLE_PLATFORM", "No platform currently has this product available")
			return
		}
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	if userID := optionalUserID(c); userID != "" {
		// Best effort; the lookup succeeds regardless.
		_ = h.profileService.RecordComparison(userID)
	}

	utils.Success(c, 200, "Pricing computed successfully", result)
}

// GetCategories returns the catalog's categories.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{
		"categories": h.productService.Categories(),
	})
}

// GetCategoryPlatforms returns the platform filter chips for a category.
func (h *ProductHandler) GetCategoryPlatforms(c *gin.Context) {
	utils.Success(c, 200, "Platforms retrieved successfully", gin.H{
		"platforms": h.productService.PlatformsFor(c.Param("category")),
	})
}

// GetDeals returns the products with the steepest current discounts.
func (h *ProductHandler) GetDeals(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	utils.Success(c, 200, "Deals retrieved successfully", gin.H{
		"deals": h.productService.Deals(limit),
	})
}

// optionalUserID extracts the user id from a Bearer token when one is
// present. Catalog routes are public, so an absent or invalid token is not
// an error here.
func optionalUserID(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	claims, err := utils.ValidateJWT(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return ""
	}
	return claims.UserID
}
