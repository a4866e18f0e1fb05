package models

// Trend enumerates the price trend direction of a product.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Price is one platform's offer for a product. Unavailable entries stay
// visible in listings but are excluded from best-price and discount math.
type Price struct {
	Platform      string  `json:"platform"`
	Price         int     `json:"price"`
	OriginalPrice *int    `json:"originalPrice,omitempty"`
	Color         string  `json:"color,omitempty"`
	Available     bool    `json:"available"`
	DeliveryTime  string  `json:"deliveryTime,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
}

// Product is a catalog entry with its per-platform price list.
// BestPrice and Savings are seed-data caches of derived values; responses
// always recompute them through the pricing engine.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Prices   []Price `json:"prices"`

	BestPrice int `json:"bestPrice"`
	Savings   int `json:"savings"`

	Trend           Trend   `json:"trend"`
	TrendPercentage float64 `json:"trendPercentage"`
}
