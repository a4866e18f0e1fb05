package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

// FavoriteRepository handles data access for favorites and their alerts.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// ListByUser returns a user's favorites, newest first.
func (r *FavoriteRepository) ListByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Select(&favorites, `
		SELECT id, user_id, product_id, price_alert, target_price, last_notified_price, created_at, updated_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Get returns one favorite by user and product.
func (r *FavoriteRepository) Get(userID, productID string) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.Get(&f, `
		SELECT id, user_id, product_id, price_alert, target_price, last_notified_price, created_at, updated_at
		FROM favorites
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a favorite. A unique constraint on (user_id, product_id)
// rejects duplicates; callers translate the violation.
func (r *FavoriteRepository) Create(f *models.Favorite) error {
	const q = `
		INSERT INTO favorites (user_id, product_id, price_alert, target_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q, f.UserID, f.ProductID, f.PriceAlert, f.TargetPrice).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// Delete removes a favorite by user and product.
func (r *FavoriteRepository) Delete(userID, productID string) error {
	res, err := r.db.Exec(`DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateAlert sets the alert flag and target price of a favorite.
func (r *FavoriteRepository) UpdateAlert(userID, productID string, enabled bool, targetPrice *int) error {
	const q = `
		UPDATE favorites
		SET price_alert = $3, target_price = $4, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2`
	res, err := r.db.Exec(q, userID, productID, enabled, targetPrice)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkNotified records the best price a fired alert notified at.
func (r *FavoriteRepository) MarkNotified(id int, price int) error {
	_, err := r.db.Exec(`
		UPDATE favorites SET last_notified_price = $2, updated_at = NOW() WHERE id = $1
	`, id, price)
	return err
}

// ListActiveAlerts returns every favorite with an enabled price alert,
// across all users. Used by the alert worker.
func (r *FavoriteRepository) ListActiveAlerts() ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Select(&favorites, `
		SELECT id, user_id, product_id, price_alert, target_price, last_notified_price, created_at, updated_at
		FROM favorites
		WHERE price_alert = true
		ORDER BY user_id, product_id
	`)
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// CountByUser returns the favorite and active-alert counts for a user.
func (r *FavoriteRepository) CountByUser(userID string) (favorites, alerts int, err error) {
	err = r.db.QueryRow(`
		SELECT COUNT(1), COUNT(1) FILTER (WHERE price_alert)
		FROM favorites
		WHERE user_id = $1
	`, userID).Scan(&favorites, &alerts)
	return favorites, alerts, err
}

// IsUniqueViolation reports whether err is the Postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
