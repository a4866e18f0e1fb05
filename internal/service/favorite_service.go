package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/repository"
	"github.com/pricesnap/pricesnap-api/internal/utils"
)

// FavoriteService manages a user's saved products and their price-alert
// settings. Favorites reference catalog products by id; the active counters
// on user_stats are kept in sync on every mutation.
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	statsRepo    *repository.UserStatsRepository
	store        *catalog.Store
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, statsRepo *repository.UserStatsRepository, store *catalog.Store) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		statsRepo:    statsRepo,
		store:        store,
	}
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(userID string) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(userID)
}

// Add saves a product to the user's favorites. The product must exist in the
// catalog; saving the same product twice returns ErrDuplicateFavorite.
func (s *FavoriteService) Add(userID, productID string) (*models.Favorite, error) {
	if _, ok := s.store.Get(productID); !ok {
		return nil, utils.ErrProductNotFound
	}

	fav := &models.Favorite{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.favoriteRepo.Create(fav); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicateFavorite
		}
		return nil, err
	}

	s.refreshCounts(userID)
	log.Info().Str("user_id", userID).Str("product_id", productID).Msg("Favorite added")
	return fav, nil
}

// Remove deletes a favorite.
func (s *FavoriteService) Remove(userID, productID string) error {
	if err := s.favoriteRepo.Delete(userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrFavoriteNotFound
		}
		return err
	}
	s.refreshCounts(userID)
	return nil
}

// SetAlert enables or disables the price alert on a favorite. targetPrice is
// optional: with it, the alert fires when the best price reaches the target;
// without it, on any drop below the last notified price.
func (s *FavoriteService) SetAlert(userID, productID string, enabled bool, targetPrice *int) (*models.Favorite, error) {
	if err := s.favoriteRepo.UpdateAlert(userID, productID, enabled, targetPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrFavoriteNotFound
		}
		return nil, err
	}
	s.refreshCounts(userID)
	return s.favoriteRepo.Get(userID, productID)
}

// refreshCounts recomputes the active favorite/alert counters on user_stats.
// Counter drift is tolerable, so failures are logged and swallowed.
func (s *FavoriteService) refreshCounts(userID string) {
	favorites, alerts, err := s.favoriteRepo.CountByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to count favorites")
		return
	}
	if err := s.statsRepo.SetActiveCounts(userID, favorites, alerts); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update active counters")
	}
}
