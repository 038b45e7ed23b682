// internal/store/store.go
package store

import (
	"sync"

	"github.com/shoplite/shoplite-backend/internal/models"
)

// Store is the single source of truth for cart, wishlist and order history.
// It lives for the process lifetime and is injected into handlers, never
// reached as a package global. The browser original mutated from one event
// loop; an HTTP server mutates from many goroutines, so every operation
// takes the mutex.
//
// All mutations are total functions: absent ids on removal and duplicate
// wishlist adds are tolerated, never errors.
type Store struct {
	mu       sync.Mutex
	cart     []models.CartItem
	wishlist []models.WishlistItem
	orders   []models.Order
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// AddToCart merges by product id: an existing entry has its quantity
// incremented and keeps its other fields; a new id is appended. Insertion
// order is preserved.
func (s *Store) AddToCart(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity += item.Quantity
			return
		}
	}
	s.cart = append(s.cart, item)
}

// RemoveFromCart removes the entry with the given id. Removing an absent id
// is a no-op.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity sets the entry's quantity, clamped to a minimum of 1.
// The container owns the quantity invariant so call sites cannot break it.
// Returns false if no entry with the id exists.
func (s *Store) UpdateCartQuantity(id string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			return true
		}
	}
	return false
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
}

// Cart returns a snapshot copy of the cart.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// AddToWishlist appends the item unless its id is already present. The
// first-added item's fields win; later adds are no-ops.
func (s *Store) AddToWishlist(item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == item.ID {
			return
		}
	}
	s.wishlist = append(s.wishlist, item)
}

// RemoveFromWishlist removes the entry with the given id; no-op if absent.
func (s *Store) RemoveFromWishlist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == id {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return
		}
	}
}

// IsInWishlist reports membership without side effects.
func (s *Store) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == id {
			return true
		}
	}
	return false
}

// Wishlist returns a snapshot copy of the wishlist.
func (s *Store) Wishlist() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// AddOrder appends the order to the history. Uniqueness of the order id is
// the caller's responsibility; nothing is deduplicated here.
func (s *Store) AddOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
}

// Orders returns a snapshot copy of the order history.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
