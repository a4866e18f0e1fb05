package service

import (
	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/models"
	"github.com/pricesnap/pricesnap-api/internal/pricing"
	"github.com/pricesnap/pricesnap-api/internal/repository"
	"github.com/pricesnap/pricesnap-api/internal/sse"
)

// AlertService evaluates active price alerts against the catalog's derived
// pricing and pushes notifications over SSE. It is driven by the alert
// worker on a fixed interval.
type AlertService struct {
	favoriteRepo *repository.FavoriteRepository
	statsRepo    *repository.UserStatsRepository
	store        *catalog.Store
	notifier     sse.AlertNotifier
}

// NewAlertService constructs an AlertService.
func NewAlertService(favoriteRepo *repository.FavoriteRepository, statsRepo *repository.UserStatsRepository, store *catalog.Store, notifier sse.AlertNotifier) *AlertService {
	return &AlertService{
		favoriteRepo: favoriteRepo,
		statsRepo:    statsRepo,
		store:        store,
		notifier:     notifier,
	}
}

// EvaluateAlerts walks every favorite with an active price alert, derives the
// product's current best price, and notifies the owner when the alert
// condition holds. Each alert records the price it last fired at, so a
// condition that keeps holding at the same price does not re-fire.
func (s *AlertService) EvaluateAlerts() (fired int, err error) {
	alerts, err := s.favoriteRepo.ListActiveAlerts()
	if err != nil {
		return 0, err
	}

	for i := range alerts {
		if s.evaluateOne(&alerts[i]) {
			fired++
		}
	}

	if fired > 0 {
		log.Info().Int("fired", fired).Int("checked", len(alerts)).Msg("Alert sweep complete")
	}
	return fired, nil
}

func (s *AlertService) evaluateOne(fav *models.Favorite) bool {
	product, ok := s.store.Get(fav.ProductID)
	if !ok {
		log.Warn().Str("product_id", fav.ProductID).Msg("Alert references unknown product")
		return false
	}

	res, err := pricing.Compute(product)
	if err != nil {
		// Every platform unavailable; nothing to alert on.
		return false
	}

	if !shouldFire(fav, res.BestPrice) {
		if fav.TargetPrice == nil && fav.LastNotifiedPrice == nil {
			// First sweep for a target-less alert: record the baseline price.
			if err := s.favoriteRepo.MarkNotified(fav.ID, res.BestPrice); err != nil {
				log.Error().Err(err).Int("favorite_id", fav.ID).Msg("Failed to record alert baseline")
			}
		}
		return false
	}

	s.notifier.NotifyPriceDrop(fav.UserID, product.ID, product.Name, res.BestPrice, res.BestPlatform, fav.TargetPrice, res.TotalSavings)

	if err := s.favoriteRepo.MarkNotified(fav.ID, res.BestPrice); err != nil {
		log.Error().Err(err).Int("favorite_id", fav.ID).Msg("Failed to record alert notification")
	}
	if err := s.statsRepo.AddSavings(fav.UserID, res.TotalSavings); err != nil {
		log.Error().Err(err).Str("user_id", fav.UserID).Msg("Failed to credit savings")
	}

	log.Info().
		Str("user_id", fav.UserID).
		Str("product_id", product.ID).
		Int("best_price", res.BestPrice).
		Msg("Price alert fired")
	return true
}

// shouldFire decides whether an alert triggers at the given best price.
// With a target price, the alert fires whenever the price is at or below the
// target. Without one, it fires on any drop below the price it last fired
// at; the first sweep records a baseline without notifying. Either way a
// repeat at the last notified price is suppressed.
func shouldFire(fav *models.Favorite, bestPrice int) bool {
	if fav.LastNotifiedPrice != nil && bestPrice >= *fav.LastNotifiedPrice {
		return false
	}
	if fav.TargetPrice != nil {
		return bestPrice <= *fav.TargetPrice
	}
	return fav.LastNotifiedPrice != nil
}
