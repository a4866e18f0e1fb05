package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/repository"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// resetTokenTTL bounds how long a password-reset token stays redeemable.
const resetTokenTTL = 30 * time.Minute

// AuthService handles sign-up, sign-in, and password reset. On every
// successful sign-in the profile row and the zeroed stats row are upserted,
// the same shape the mobile client pushed to its hosted backend.
type AuthService struct {
	profileRepo *repository.ProfileRepository
	statsRepo   *repository.UserStatsRepository
	resetSecret string
}

// NewAuthService constructs a new AuthService. resetSecret signs
// password-reset tokens and should differ per deployment.
func NewAuthService(profileRepo *repository.ProfileRepository, statsRepo *repository.UserStatsRepository, resetSecret string) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		statsRepo:   statsRepo,
		resetSecret: resetSecret,
	}
}

// SignUp registers a new user and returns the created profile.
func (s *AuthService) SignUp(email, password string, fullName *string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.profileRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, utils.ErrEmailTaken
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	if err := s.statsRepo.EnsureRow(profile.ID); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to initialize user stats")
	}

	log.Info().Str("email", email).Str("user_id", profile.ID).Msg("User signed up")
	return profile, nil
}

// SignIn verifies credentials and returns a session token plus the profile.
func (s *AuthService) SignIn(email, password string) (string, *models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		log.Debug().Str("email", email).Msg("Sign-in for unknown email")
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", nil, utils.ErrInvalidCredentials
	}

	// Keep the profile and stats rows fresh on every sign-in.
	if err := s.profileRepo.TouchSignIn(profile.ID); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to record sign-in")
	}
	if err := s.statsRepo.EnsureRow(profile.ID); err != nil {
		log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to ensure user stats row")
	}

	token, err := utils.GenerateJWT(profile.ID, profile.Email)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("email", email).Msg("Sign-in successful")
	return token, profile, nil
}

// CreateResetToken issues a signed, time-limited password-reset token for
// the given email. The token embeds the user id, an expiry, and an HMAC over
// both. Token delivery (email) is outside this service.
func (s *AuthService) CreateResetToken(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", utils.ErrInvalidCredentials
	}

	nonce, err := utils.GenerateResetToken()
	if err != nil {
		return "", err
	}
	expires := time.Now().Add(resetTokenTTL).Unix()
	payload := fmt.Sprintf("%s.%d.%s", profile.ID, expires, nonce)
	sig := utils.GenerateSignature([]byte(payload), s.resetSecret)
	return payload + "." + sig, nil
}

// ResetPassword redeems a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	userID, err := s.verifyResetToken(token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.profileRepo.UpdatePasswordHash(userID, string(hash)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrInvalidResetToken
		}
		return err
	}

	log.Info().Str("user_id", userID).Msg("Password reset")
	return nil
}

// verifyResetToken checks the HMAC and expiry of a reset token and returns
// the embedded user id.
func (s *AuthService) verifyResetToken(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", utils.ErrInvalidResetToken
	}
	payload := strings.Join(parts[:3], ".")
	if !utils.VerifySignature([]byte(payload), parts[3], s.resetSecret) {
		return "", utils.ErrInvalidResetToken
	}

	var expires int64
	if _, err := fmt.Sscanf(parts[1], "%d", &expires); err != nil {
		return "", utils.ErrInvalidResetToken
	}
	if time.Now().Unix() > expires {
		return "", utils.ErrResetTokenExpired
	}
	return parts[0], nil
}
