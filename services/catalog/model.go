package catalog

import "github.com/shopspring/decimal"

const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"

	allCategories     = "all"
	maxRelatedResults = 4
)

// Product prices are in major units (rupees).
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Rating      float64         `json:"rating,omitempty"`
	Category    string          `json:"category,omitempty"`
}

type Query struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}
