package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

// UserStatsRepository handles the per-user stats rows.
type UserStatsRepository struct {
	db *sqlx.DB
}

// NewUserStatsRepository creates a new UserStatsRepository.
func NewUserStatsRepository(db *sqlx.DB) *UserStatsRepository {
	return &UserStatsRepository{db: db}
}

// Get returns the stats row for a user.
func (r *UserStatsRepository) Get(userID string) (*models.UserStats, error) {
	var s models.UserStats
	err := r.db.Get(&s, `
		SELECT user_id, total_savings, total_comparisons, active_favorites,
		       active_alerts, monthly_rank, streak_days, updated_at
		FROM user_stats
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// EnsureRow creates the zeroed stats row if it does not exist yet. Existing
// counters are left untouched; the mobile client ran the equivalent upsert
// on every sign-in.
func (r *UserStatsRepository) EnsureRow(userID string) error {
	const q = `
		INSERT INTO user_stats (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.Exec(q, userID)
	return err
}

// IncrementComparisons bumps the comparison counter.
func (r *UserStatsRepository) IncrementComparisons(userID string) error {
	const q = `
		UPDATE user_stats
		SET total_comparisons = total_comparisons + 1, updated_at = NOW()
		WHERE user_id = $1`
	_, err := r.db.Exec(q, userID)
	return err
}

// AddSavings adds a realized savings amount to the running total.
func (r *UserStatsRepository) AddSavings(userID string, amount int) error {
	const q = `
		UPDATE user_stats
		SET total_savings = total_savings + $2, updated_at = NOW()
		WHERE user_id = $1`
	_, err := r.db.Exec(q, userID, amount)
	return err
}

// SetActiveCounts replaces the favorite/alert counters. Counts are
// recomputed from the favorites table by the caller so the row never drifts
// from the source of truth.
func (r *UserStatsRepository) SetActiveCounts(userID string, favorites, alerts int) error {
	const q = `
		UPDATE user_stats
		SET active_favorites = $2, active_alerts = $3, updated_at = NOW()
		WHERE user_id = $1`
	_, err := r.db.Exec(q, userID, favorites, alerts)
	return err
}
