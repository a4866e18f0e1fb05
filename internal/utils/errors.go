package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials  = errors.New("INVALID_CREDENTIALS")
	ErrEmailTaken          = errors.New("EMAIL_TAKEN")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrFavoriteNotFound    = errors.New("FAVORITE_NOT_FOUND")
	ErrDuplicateFavorite   = errors.New("DUPLICATE_FAVORITE")
	ErrNoAvailablePlatform = errors.New("NO_AVAILABLE_PLATFORM")
	ErrResetTokenExpired   = errors.New("RESET_TOKEN_EXPIRED")
	ErrInvalidResetToken   = errors.New("INVALID_RESET_TOKEN")
)
