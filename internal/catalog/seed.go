package catalog

import "github.com/pricesnap/pricesnap-api/internal/models"

// Default returns the store seeded with the bundled catalog. Seed validity
// is covered by tests, so the error path is a programmer mistake.
func Default() *Store {
	s, err := NewStore(seedProducts())
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return s
}

func intPtr(v int) *int { return &v }

// categoryPlatforms maps a category to the platform chips shown when that
// category filter is active. The "All" entry is a representative subset,
// not the union.
var categoryPlatforms = map[string][]string{
	"Groceries":     {"Zepto", "Blinkit", "BigBasket", "Swiggy Instamart", "Dunzo", "Flipkart Minutes"},
	"Electronics":   {"Amazon", "Flipkart", "Myntra", "Croma", "Reliance Digital", "Samsung Store", "Vijay Sales"},
	"Food":          {"Zomato", "Swiggy", "Uber Eats", "Dominos", "Pizza Hut", "Foodpanda", "EatSure"},
	"Medicine":      {"1mg", "NetMeds", "Apollo Pharmacy", "PharmEasy", "MedPlus", "Tata 1mg"},
	"Fashion":       {"Amazon Fashion", "Flipkart Fashion", "Myntra", "Ajio", "Nike Store", "Levi's Store"},
	"Home & Garden": {"Amazon", "Flipkart", "BigBasket", "Urban Company", "Moglix"},
	"Books":         {"Amazon", "Flipkart", "Crossword", "BookMyShow", "Kindle"},
	"All":           {"Amazon", "Flipkart", "Zepto", "Blinkit", "Zomato", "Swiggy", "1mg", "NetMeds", "Myntra"},
}

// seedProducts returns the bundled catalog. BestPrice/Savings are seed
// caches of derived values; the pricing engine recomputes them on every read.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Amul Fresh Milk 1L",
			Category: "Groceries",
			Image:    "https://images.pexels.com/photos/416458/pexels-photo-416458.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Zepto", Price: 62, OriginalPrice: intPtr(65), Color: "#E91E63", Available: true, DeliveryTime: "10 min", Rating: 4.5},
				{Platform: "Blinkit", Price: 58, Color: "#FFC107", Available: true, DeliveryTime: "15 min", Rating: 4.3},
				{Platform: "BigBasket", Price: 60, Color: "#4CAF50", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.2},
				{Platform: "Swiggy Instamart", Price: 64, Color: "#FF5722", Available: true, DeliveryTime: "25 min", Rating: 4.4},
				{Platform: "Dunzo", Price: 66, Color: "#9C27B0", Available: false, DeliveryTime: "30 min", Rating: 4.1},
			},
			BestPrice: 58, Savings: 7, Trend: models.TrendDown, TrendPercentage: 5.2,
		},
		{
			ID:       "2",
			Name:     "Maggi 2-Minute Noodles",
			Category: "Groceries",
			Image:    "https://images.pexels.com/photos/8629172/pexels-photo-8629172.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Zepto", Price: 14, Color: "#E91E63", Available: true, DeliveryTime: "10 min", Rating: 4.5},
				{Platform: "Blinkit", Price: 12, Color: "#FFC107", Available: true, DeliveryTime: "15 min", Rating: 4.3},
				{Platform: "BigBasket", Price: 13, Color: "#4CAF50", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.2},
				{Platform: "Swiggy Instamart", Price: 15, Color: "#FF5722", Available: true, DeliveryTime: "25 min", Rating: 4.4},
				{Platform: "Flipkart Minutes", Price: 13, Color: "#047BD6", Available: true, DeliveryTime: "20 min", Rating: 4.0},
			},
			BestPrice: 12, Savings: 3, Trend: models.TrendUp, TrendPercentage: 2.1,
		},
		{
			ID:       "3",
			Name:     "iPhone 15 Pro 128GB",
			Category: "Electronics",
			Image:    "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon", Price: 134900, OriginalPrice: intPtr(139900), Color: "#FF9900", Available: true, DeliveryTime: "1-2 days", Rating: 4.4},
				{Platform: "Flipkart", Price: 132900, Color: "#047BD6", Available: true, DeliveryTime: "2-3 days", Rating: 4.3},
				{Platform: "Myntra", Price: 136900, Color: "#FF3F6C", Available: false, DeliveryTime: "3-4 days", Rating: 4.2},
				{Platform: "Croma", Price: 139900, Color: "#7B68EE", Available: true, DeliveryTime: "1 day", Rating: 4.5},
				{Platform: "Reliance Digital", Price: 138900, Color: "#0078D4", Available: true, DeliveryTime: "2 days", Rating: 4.1},
			},
			BestPrice: 132900, Savings: 7000, Trend: models.TrendDown, TrendPercentage: 3.8,
		},
		{
			ID:       "4",
			Name:     "Samsung Galaxy S24 Ultra",
			Category: "Electronics",
			Image:    "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon", Price: 129999, OriginalPrice: intPtr(134999), Color: "#FF9900", Available: true, DeliveryTime: "1-2 days", Rating: 4.4},
				{Platform: "Flipkart", Price: 127999, Color: "#047BD6", Available: true, DeliveryTime: "2-3 days", Rating: 4.3},
				{Platform: "Samsung Store", Price: 134999, Color: "#1428A0", Available: true, DeliveryTime: "1 day", Rating: 4.6},
				{Platform: "Croma", Price: 132999, Color: "#7B68EE", Available: true, DeliveryTime: "1 day", Rating: 4.5},
				{Platform: "Vijay Sales", Price: 130999, Color: "#E74C3C", Available: true, DeliveryTime: "2 days", Rating: 4.2},
			},
			BestPrice: 127999, Savings: 7000, Trend: models.TrendDown, TrendPercentage: 4.2,
		},
		{
			ID:       "5",
			Name:     "Margherita Pizza (Large)",
			Category: "Food",
			Image:    "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Zomato", Price: 450, OriginalPrice: intPtr(500), Color: "#E23744", Available: true, DeliveryTime: "30-40 min", Rating: 4.3},
				{Platform: "Swiggy", Price: 420, Color: "#FF5722", Available: true, DeliveryTime: "25-35 min", Rating: 4.4},
				{Platform: "Uber Eats", Price: 480, Color: "#000000", Available: true, DeliveryTime: "35-45 min", Rating: 4.2},
				{Platform: "Dominos", Price: 399, Color: "#0078AD", Available: true, DeliveryTime: "20-30 min", Rating: 4.1},
				{Platform: "Pizza Hut", Price: 459, Color: "#EE3124", Available: true, DeliveryTime: "25-35 min", Rating: 4.0},
			},
			BestPrice: 399, Savings: 101, Trend: models.TrendDown, TrendPercentage: 8.5,
		},
		{
			ID:       "6",
			Name:     "Chicken Biryani",
			Category: "Food",
			Image:    "https://images.pexels.com/photos/1624487/pexels-photo-1624487.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Zomato", Price: 320, OriginalPrice: intPtr(350), Color: "#E23744", Available: true, DeliveryTime: "30-40 min", Rating: 4.3},
				{Platform: "Swiggy", Price: 299, Color: "#FF5722", Available: true, DeliveryTime: "25-35 min", Rating: 4.4},
				{Platform: "Uber Eats", Price: 340, Color: "#000000", Available: true, DeliveryTime: "35-45 min", Rating: 4.2},
				{Platform: "Foodpanda", Price: 315, Color: "#E91E63", Available: false, DeliveryTime: "40-50 min", Rating: 4.0},
				{Platform: "EatSure", Price: 310, Color: "#FF6B35", Available: true, DeliveryTime: "30-40 min", Rating: 4.1},
			},
			BestPrice: 299, Savings: 51, Trend: models.TrendDown, TrendPercentage: 6.2,
		},
		{
			ID:       "7",
			Name:     "Paracetamol 500mg (10 tablets)",
			Category: "Medicine",
			Image:    "https://images.pexels.com/photos/3683074/pexels-photo-3683074.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "1mg", Price: 25, OriginalPrice: intPtr(30), Color: "#FF6F61", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.5},
				{Platform: "NetMeds", Price: 22, Color: "#00A859", Available: true, DeliveryTime: "1-3 hrs", Rating: 4.4},
				{Platform: "Apollo Pharmacy", Price: 28, Color: "#0066CC", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.3},
				{Platform: "PharmEasy", Price: 24, Color: "#59C3C3", Available: true, DeliveryTime: "1-2 hrs", Rating: 4.2},
				{Platform: "MedPlus", Price: 26, Color: "#E74C3C", Available: true, DeliveryTime: "3-5 hrs", Rating: 4.1},
			},
			BestPrice: 22, Savings: 8, Trend: models.TrendDown, TrendPercentage: 12.5,
		},
		{
			ID:       "8",
			Name:     "Vitamin D3 Tablets (30 count)",
			Category: "Medicine",
			Image:    "https://images.pexels.com/photos/3683107/pexels-photo-3683107.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "1mg", Price: 180, OriginalPrice: intPtr(200), Color: "#FF6F61", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.5},
				{Platform: "NetMeds", Price: 165, Color: "#00A859", Available: true, DeliveryTime: "1-3 hrs", Rating: 4.4},
				{Platform: "Apollo Pharmacy", Price: 190, Color: "#0066CC", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.3},
				{Platform: "PharmEasy", Price: 175, Color: "#59C3C3", Available: true, DeliveryTime: "1-2 hrs", Rating: 4.2},
				{Platform: "Tata 1mg", Price: 170, Color: "#FF6F61", Available: true, DeliveryTime: "2-3 hrs", Rating: 4.4},
			},
			BestPrice: 165, Savings: 35, Trend: models.TrendDown, TrendPercentage: 9.8,
		},
		{
			ID:       "9",
			Name:     "Nike Air Max 270",
			Category: "Fashion",
			Image:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon Fashion", Price: 8995, OriginalPrice: intPtr(12995), Color: "#FF9900", Available: true, DeliveryTime: "2-3 days", Rating: 4.4},
				{Platform: "Flipkart Fashion", Price: 8499, Color: "#047BD6", Available: true, DeliveryTime: "3-4 days", Rating: 4.3},
				{Platform: "Myntra", Price: 9299, Color: "#FF3F6C", Available: true, DeliveryTime: "2-3 days", Rating: 4.5},
				{Platform: "Ajio", Price: 8799, Color: "#D4AF37", Available: true, DeliveryTime: "3-5 days", Rating: 4.2},
				{Platform: "Nike Store", Price: 12995, Color: "#000000", Available: true, DeliveryTime: "1-2 days", Rating: 4.6},
			},
			BestPrice: 8499, Savings: 4496, Trend: models.TrendDown, TrendPercentage: 15.2,
		},
		{
			ID:       "10",
			Name:     "Levi's 501 Original Jeans",
			Category: "Fashion",
			Image:    "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon Fashion", Price: 3999, OriginalPrice: intPtr(4999), Color: "#FF9900", Available: true, DeliveryTime: "2-3 days", Rating: 4.4},
				{Platform: "Flipkart Fashion", Price: 3799, Color: "#047BD6", Available: true, DeliveryTime: "3-4 days", Rating: 4.3},
				{Platform: "Myntra", Price: 4199, Color: "#FF3F6C", Available: true, DeliveryTime: "2-3 days", Rating: 4.5},
				{Platform: "Ajio", Price: 3899, Color: "#D4AF37", Available: true, DeliveryTime: "3-5 days", Rating: 4.2},
				{Platform: "Levi's Store", Price: 4999, Color: "#003F7F", Available: true, DeliveryTime: "1-2 days", Rating: 4.6},
			},
			BestPrice: 3799, Savings: 1200, Trend: models.TrendDown, TrendPercentage: 8.7,
		},
		{
			ID:       "11",
			Name:     "Philips LED Bulb 9W",
			Category: "Home & Garden",
			Image:    "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon", Price: 199, OriginalPrice: intPtr(299), Color: "#FF9900", Available: true, DeliveryTime: "1-2 days", Rating: 4.4},
				{Platform: "Flipkart", Price: 189, Color: "#047BD6", Available: true, DeliveryTime: "2-3 days", Rating: 4.3},
				{Platform: "BigBasket", Price: 210, Color: "#4CAF50", Available: true, DeliveryTime: "2-4 hrs", Rating: 4.2},
				{Platform: "Urban Company", Price: 220, Color: "#6C5CE7", Available: true, DeliveryTime: "Same day", Rating: 4.5},
				{Platform: "Moglix", Price: 195, Color: "#E17055", Available: true, DeliveryTime: "3-4 days", Rating: 4.1},
			},
			BestPrice: 189, Savings: 110, Trend: models.TrendDown, TrendPercentage: 18.5,
		},
		{
			ID:       "12",
			Name:     "The Psychology of Money",
			Category: "Books",
			Image:    "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=300",
			Prices: []models.Price{
				{Platform: "Amazon", Price: 299, OriginalPrice: intPtr(399), Color: "#FF9900", Available: true, DeliveryTime: "1-2 days", Rating: 4.6},
				{Platform: "Flipkart", Price: 279, Color: "#047BD6", Available: true, DeliveryTime: "2-3 days", Rating: 4.5},
				{Platform: "Crossword", Price: 359, Color: "#8E44AD", Available: true, DeliveryTime: "3-5 days", Rating: 4.3},
				{Platform: "BookMyShow", Price: 320, Color: "#E74C3C", Available: false, DeliveryTime: "2-4 days", Rating: 4.2},
				{Platform: "Kindle", Price: 199, Color: "#232F3E", Available: true, DeliveryTime: "Instant", Rating: 4.7},
			},
			BestPrice: 199, Savings: 200, Trend: models.TrendDown, TrendPercentage: 25.1,
		},
	}
}
