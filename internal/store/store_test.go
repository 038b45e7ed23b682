// internal/store/store_test.go
package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shoplite/shoplite-backend/internal/models"
)

func cartItem(id string, quantity int) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "Product " + id,
		Price:    10,
		Quantity: quantity,
		Image:    "/images/" + id + ".jpg",
	}
}

func TestAddToCartMergesByID(t *testing.T) {
	s := New()

	s.AddToCart(cartItem("p1", 2))
	s.AddToCart(cartItem("p2", 1))
	s.AddToCart(cartItem("p1", 3))

	cart := s.Cart()
	assert.Len(t, cart, 2)
	assert.Equal(t, "p1", cart[0].ID, "merge must not reorder entries")
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCartKeepsExistingFields(t *testing.T) {
	s := New()

	first := cartItem("p1", 1)
	first.Name = "Original name"
	s.AddToCart(first)

	second := cartItem("p1", 2)
	second.Name = "Different name"
	second.Price = 99
	s.AddToCart(second)

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "Original name", cart[0].Name)
	assert.Equal(t, float64(10), cart[0].Price)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	s := New()
	s.AddToCart(cartItem("p1", 1))
	s.AddToCart(cartItem("p2", 1))

	s.RemoveFromCart("p1")
	assert.Len(t, s.Cart(), 1)

	// Second removal of the same id is a no-op.
	s.RemoveFromCart("p1")
	assert.Len(t, s.Cart(), 1)

	s.RemoveFromCart("never-added")
	assert.Len(t, s.Cart(), 1)
}

func TestUpdateCartQuantityClampsToOne(t *testing.T) {
	s := New()
	s.AddToCart(cartItem("p1", 5))

	assert.True(t, s.UpdateCartQuantity("p1", 3))
	assert.Equal(t, 3, s.Cart()[0].Quantity)

	assert.True(t, s.UpdateCartQuantity("p1", 0))
	assert.Equal(t, 1, s.Cart()[0].Quantity)

	assert.True(t, s.UpdateCartQuantity("p1", -4))
	assert.Equal(t, 1, s.Cart()[0].Quantity)

	assert.False(t, s.UpdateCartQuantity("missing", 2))
}

func TestClearCart(t *testing.T) {
	s := New()
	s.AddToCart(cartItem("p1", 1))
	s.AddToCart(cartItem("p2", 1))

	s.ClearCart()
	assert.Empty(t, s.Cart())

	// Clearing an empty cart is fine too.
	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestCartReturnsSnapshot(t *testing.T) {
	s := New()
	s.AddToCart(cartItem("p1", 1))

	snapshot := s.Cart()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, s.Cart()[0].Quantity, "mutating the snapshot must not touch the store")
}

func TestWishlistSetSemantics(t *testing.T) {
	s := New()

	first := models.WishlistItem{ID: "p1", Name: "First", Price: 10, Rating: 4.5}
	s.AddToWishlist(first)

	// Duplicate add is a no-op; the first item's fields win.
	s.AddToWishlist(models.WishlistItem{ID: "p1", Name: "Second", Price: 20})

	wishlist := s.Wishlist()
	assert.Len(t, wishlist, 1)
	assert.Equal(t, "First", wishlist[0].Name)
	assert.Equal(t, float64(10), wishlist[0].Price)
}

func TestWishlistMembershipAndRemoval(t *testing.T) {
	s := New()

	assert.False(t, s.IsInWishlist("p1"))

	s.AddToWishlist(models.WishlistItem{ID: "p1"})
	s.AddToWishlist(models.WishlistItem{ID: "p2"})
	assert.True(t, s.IsInWishlist("p1"))
	assert.True(t, s.IsInWishlist("p2"))

	s.RemoveFromWishlist("p1")
	assert.False(t, s.IsInWishlist("p1"))
	assert.True(t, s.IsInWishlist("p2"))

	// Removing an absent id is tolerated.
	s.RemoveFromWishlist("p1")
	assert.Len(t, s.Wishlist(), 1)
}

func TestAddOrderNeverDeduplicates(t *testing.T) {
	s := New()

	order := models.Order{ID: "ORDER_A", Status: models.OrderStatusPending}
	s.AddOrder(order)
	s.AddOrder(order)

	assert.Len(t, s.Orders(), 2, "id uniqueness is the caller's responsibility")
}

func TestConcurrentCartMerge(t *testing.T) {
	s := New()

	const workers = 20
	const addsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerWorker; i++ {
				s.AddToCart(cartItem("p1", 1))
			}
		}()
	}
	wg.Wait()

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, workers*addsPerWorker, cart[0].Quantity)
}
