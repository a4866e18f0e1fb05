package models

import "time"

// Profile represents a registered user.
type Profile struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name" json:"fullName,omitempty"`
	AvatarURL    *string    `db:"avatar_url" json:"avatarUrl,omitempty"`
	LastSignInAt *time.Time `db:"last_sign_in_at" json:"lastSignInAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// UserStats is the per-user savings scoreboard row. Rows are upserted on
// sign-in and incrementally maintained by the favorite and alert services.
type UserStats struct {
	UserID           string    `db:"user_id" json:"userId"`
	TotalSavings     int       `db:"total_savings" json:"totalSavings"`
	TotalComparisons int       `db:"total_comparisons" json:"totalComparisons"`
	ActiveFavorites  int       `db:"active_favorites" json:"activeFavorites"`
	ActiveAlerts     int       `db:"active_alerts" json:"activeAlerts"`
	MonthlyRank      int       `db:"monthly_rank" json:"monthlyRank"`
	StreakDays       int       `db:"streak_days" json:"streakDays"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
