// internal/models/product.go
package models

// Product is a catalog entry. The catalog is loaded once at startup and
// never mutated, so products are passed around by value.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int64    `json:"reviews"`
	Stock         int      `json:"stock"`
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Image         string   `json:"image,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
