package models

import "time"

// Favorite links a user to a catalog product, optionally with a price alert.
// LastNotifiedPrice records the best price of the most recent fired alert so
// an alert does not re-fire until the price drops below it again.
type Favorite struct {
	ID                int       `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"userId"`
	ProductID         string    `db:"product_id" json:"productId"`
	PriceAlert        bool      `db:"price_alert" json:"priceAlert"`
	TargetPrice       *int      `db:"target_price" json:"targetPrice,omitempty"`
	LastNotifiedPrice *int      `db:"last_notified_price" json:"lastNotifiedPrice,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}
