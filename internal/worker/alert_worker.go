package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/service"
)

// AlertWorker periodically evaluates active price alerts against the
// catalog's derived pricing and lets the alert service push notifications.
type AlertWorker struct {
	alertService *service.AlertService
	interval     time.Duration
}

// NewAlertWorker constructs an AlertWorker.
func NewAlertWorker(alertService *service.AlertService, interval time.Duration) *AlertWorker {
	return &AlertWorker{
		alertService: alertService,
		interval:     interval,
	}
}

// Start begins the periodic alert sweep until context is canceled.
func (w *AlertWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting alert worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Alert worker stopped")
			return
		}
	}
}

func (w *AlertWorker) run() {
	fired, err := w.alertService.EvaluateAlerts()
	if err != nil {
		log.Error().Err(err).Msg("Alert sweep failed")
		return
	}
	if fired > 0 {
		log.Info().Int("fired", fired).Msg("Alerts delivered")
	}
}
