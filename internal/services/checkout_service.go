// internal/services/checkout_service.go
package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shoplite/shoplite-backend/internal/config"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/store"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// CartTotals is the derived pricing breakdown for the current cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// CheckoutService derives totals from the cart and turns the cart into an
// order. It holds no state of its own beyond the configured rates.
type CheckoutService struct {
	store *store.Store
	cfg   config.CheckoutConfig
	now   func() time.Time
}

func NewCheckoutService(s *store.Store, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		store: s,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Totals computes subtotal, tax and total for the given items.
// subtotal = sum(price * quantity); tax = subtotal * rate;
// total = subtotal + tax + shipping.
func (s *CheckoutService) Totals(items []models.CartItem) CartTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	tax := subtotal * s.cfg.TaxRate
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: s.cfg.ShippingCost,
		Total:    subtotal + tax + s.cfg.ShippingCost,
	}
}

// Checkout snapshots the current cart into a pending order, appends it to
// the order history and clears the cart. Fails only on an empty cart.
func (s *CheckoutService) Checkout() (*models.Order, error) {
	items := s.store.Cart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.Totals(items)
	now := s.now()

	order := models.Order{
		ID:     newOrderID(now),
		Items:  items,
		Total:  totals.Total,
		Status: models.OrderStatusPending,
		Date:   now.Format("Jan 2, 2006"),
	}

	s.store.AddOrder(order)
	s.store.ClearCart()

	return &order, nil
}

// newOrderID derives a time-based id: the unix millisecond timestamp in
// base 36, uppercased, e.g. ORDER_MB4K2J8F. Sufficiently unique for a
// demo order history; the store never deduplicates.
func newOrderID(t time.Time) string {
	return "ORDER_" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}
