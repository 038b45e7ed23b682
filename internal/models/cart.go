// internal/models/cart.go
package models

// CartItem is keyed by product id; the cart holds at most one entry per id.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// WishlistItem carries enough of the product to render a wishlist card
// without a catalog lookup.
type WishlistItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Image   string  `json:"image,omitempty"`
	Rating  float64 `json:"rating"`
	Reviews int64   `json:"reviews"`
	Stock   int     `json:"stock"`
}
