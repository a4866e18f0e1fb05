package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

func intPtr(v int) *int { return &v }

func TestShouldFire_TargetPrice(t *testing.T) {
	target := 100

	tests := []struct {
		name         string
		bestPrice    int
		lastNotified *int
		want         bool
	}{
		{"above target", 120, nil, false},
		{"at target", 100, nil, true},
		{"below target", 90, nil, true},
		{"already notified at this price", 90, intPtr(90), false},
		{"already notified, price rose", 95, intPtr(90), false},
		{"already notified, dropped further", 80, intPtr(90), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav := &models.Favorite{TargetPrice: &target, LastNotifiedPrice: tt.lastNotified}
			assert.Equal(t, tt.want, shouldFire(fav, tt.bestPrice))
		})
	}
}

func TestShouldFire_NoTarget(t *testing.T) {
	tests := []struct {
		name         string
		bestPrice    int
		lastNotified *int
		want         bool
	}{
		// First sweep only records a baseline.
		{"no baseline yet", 100, nil, false},
		{"dropped below baseline", 90, intPtr(100), true},
		{"unchanged", 100, intPtr(100), false},
		{"rose above baseline", 110, intPtr(100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fav := &models.Favorite{LastNotifiedPrice: tt.lastNotified}
			assert.Equal(t, tt.want, shouldFire(fav, tt.bestPrice))
		})
	}
}
