// internal/models/order.go
package models

// Order snapshots the cart at checkout time. Immutable after creation
// except for Status; nothing transitions an order past pending today, the
// shipped/delivered states exist for a future fulfillment feed.
type Order struct {
	ID     string      `json:"id"`
	Items  []CartItem  `json:"items"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
	Date   string      `json:"date"`
}
