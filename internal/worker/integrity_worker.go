package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/catalog"
)

// IntegrityWorker periodically audits the catalog's stored bestPrice and
// savings fields against the values the pricing engine derives. The stored
// fields are display caches from the seed data; drift is logged, never
// served.
type IntegrityWorker struct {
	store    *catalog.Store
	interval time.Duration
}

// NewIntegrityWorker constructs an IntegrityWorker.
func NewIntegrityWorker(store *catalog.Store, interval time.Duration) *IntegrityWorker {
	return &IntegrityWorker{
		store:    store,
		interval: interval,
	}
}

// Start begins the periodic integrity audit until context is canceled.
// One audit runs immediately on startup.
func (w *IntegrityWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog integrity worker")

	w.run()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Catalog integrity worker stopped")
			return
		}
	}
}

func (w *IntegrityWorker) run() {
	drifts := w.store.VerifyDerived()
	if len(drifts) == 0 {
		log.Debug().Int("products", w.store.Len()).Msg("Catalog integrity check passed")
		return
	}

	for _, d := range drifts {
		log.Warn().
			Str("product_id", d.ProductID).
			Str("field", d.Field).
			Int("stored", d.Stored).
			Int("derived", d.Derived).
			Msg("Catalog cache drift detected")
	}
}
