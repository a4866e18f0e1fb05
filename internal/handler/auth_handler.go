package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pricesnap/pricesnap-api/internal/service"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// AuthHandler handles sign-up, sign-in, and password reset endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp handles POST /v1/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=8"`
		FullName *string `json:"fullName"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.authService.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			utils.Error(c, 409, "EMAIL_TAKEN", "An account with this email already exists")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create account")
		return
	}

	utils.Success(c, 201, "Account created successfully", gin.H{
		"user": gin.H{
			"id":       profile.ID,
			"email":    profile.Email,
			"fullName": profile.FullName,
		},
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, profile, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       profile.ID,
			"email":    profile.Email,
			"fullName": profile.FullName,
		},
	})
}

// RequestReset handles POST /v1/auth/reset-password
//
// The response never reveals whether the email exists. Token delivery is a
// deployment concern; in non-production environments the token is returned
// inline for testing.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.authService.CreateResetToken(req.Email)
	if err != nil {
		// Same response as success to avoid account enumeration.
		utils.Success(c, 200, "If the email exists, a reset link has been sent", nil)
		return
	}

	data := gin.H{}
	if gin.Mode() != gin.ReleaseMode {
		data["resetToken"] = token
	}
	utils.Success(c, 200, "If the email exists, a reset link has been sent", data)
}

// ConfirmReset handles POST /v1/auth/reset-password/confirm
func (h *AuthHandler) ConfirmReset(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		if errors.Is(err, utils.ErrResetTokenExpired) {
			utils.Error(c, 401, "RESET_TOKEN_EXPIRED", "Reset token has expired")
			return
		}
		utils.Error(c, 401, "INVALID_RESET_TOKEN", "Invalid reset token")
		return
	}

	utils.Success(c, 200, "Password reset successfully", nil)
}
