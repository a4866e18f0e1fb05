package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pricesnap/pricesnap-api/internal/service"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// ProfileHandler handles the authenticated user's profile and stats.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMe handles GET /v1/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		utils.Error(c, 404, "PROFILE_NOT_FOUND", "Profile not found")
		return
	}

	utils.Success(c, 200, "Profile retrieved successfully", gin.H{
		"id":           profile.ID,
		"email":        profile.Email,
		"fullName":     profile.FullName,
		"avatarUrl":    profile.AvatarURL,
		"lastSignInAt": profile.LastSignInAt,
		"createdAt":    profile.CreatedAt,
	})
}

// UpdateMe handles PUT /v1/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		FullName  *string `json:"fullName"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, req.FullName, req.AvatarURL)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update profile")
		return
	}

	utils.Success(c, 200, "Profile updated successfully", gin.H{
		"id":        profile.ID,
		"email":     profile.Email,
		"fullName":  profile.FullName,
		"avatarUrl": profile.AvatarURL,
	})
}

// GetStats handles GET /v1/me/stats
func (h *ProfileHandler) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := h.profileService.GetStats(userID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get stats")
		return
	}

	utils.Success(c, 200, "Stats retrieved successfully", stats)
}
