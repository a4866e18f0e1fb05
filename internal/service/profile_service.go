package service

import (
	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/repository"
)

// ProfileService provides profile and stats reads/updates for the
// authenticated user.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	statsRepo   *repository.UserStatsRepository
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profileRepo *repository.ProfileRepository, statsRepo *repository.UserStatsRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, statsRepo: statsRepo}
}

// GetProfile returns a user's profile.
func (s *ProfileService) GetProfile(userID string) (*models.Profile, error) {
	return s.profileRepo.GetByID(userID)
}

// UpdateProfile upserts the display fields of a profile.
func (s *ProfileService) UpdateProfile(userID string, fullName, avatarURL *string) (*models.Profile, error) {
	current, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	current.FullName = coalesce(fullName, current.FullName)
	current.AvatarURL = coalesce(avatarURL, current.AvatarURL)
	if err := s.profileRepo.Upsert(current); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(userID)
}

// GetStats returns the user's stats row, creating it if missing.
func (s *ProfileService) GetStats(userID string) (*models.UserStats, error) {
	if err := s.statsRepo.EnsureRow(userID); err != nil {
		return nil, err
	}
	return s.statsRepo.Get(userID)
}

// RecordComparison bumps the comparison counter after a pricing lookup made
// by an authenticated user.
func (s *ProfileService) RecordComparison(userID string) error {
	return s.statsRepo.IncrementComparisons(userID)
}

func coalesce(v, fallback *string) *string {
	if v != nil {
		return v
	}
	return fallback
}
