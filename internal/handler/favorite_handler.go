package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pricesnap/pricesnap-api/internal/service"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// FavoriteHandler handles the authenticated user's favorites and alerts.
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler constructs a FavoriteHandler.
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /v1/me/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	favorites, err := h.favoriteService.List(userID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get favorites")
		return
	}

	utils.Success(c, 200, "Favorites retrieved successfully", gin.H{
		"favorites": favorites,
	})
}

// Add handles POST /v1/me/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	fav, err := h.favoriteService.Add(userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrDuplicateFavorite):
			utils.Error(c, 409, "DUPLICATE_FAVORITE", "Product is already in favorites")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to add favorite")
		}
		return
	}

	utils.Success(c, 201, "Favorite added successfully", fav)
}

// Remove handles DELETE /v1/me/favorites/:productId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.favoriteService.Remove(userID, c.Param("productId")); err != nil {
		if errors.Is(err, utils.ErrFavoriteNotFound) {
			utils.Error(c, 404, "FAVORITE_NOT_FOUND", "Favorite not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	utils.Success(c, 200, "Favorite removed successfully", nil)
}

// SetAlert handles PUT /v1/me/favorites/:productId/alert
func (h *FavoriteHandler) SetAlert(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Enabled     bool `json:"enabled"`
		TargetPrice *int `json:"targetPrice" binding:"omitempty,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	fav, err := h.favoriteService.SetAlert(userID, c.Param("productId"), req.Enabled, req.TargetPrice)
	if err != nil {
		if errors.Is(err, utils.ErrFavoriteNotFound) {
			utils.Error(c, 404, "FAVORITE_NOT_FOUND", "Favorite not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update alert")
		return
	}

	utils.Success(c, 200, "Alert updated successfully", fav)
}
