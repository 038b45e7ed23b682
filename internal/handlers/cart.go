// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shoplite/shoplite-backend/internal/catalog"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/store"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type CartHandler struct {
	store           *store.Store
	catalog         *catalog.Catalog
	checkoutService *services.CheckoutService
}

func NewCartHandler(s *store.Store, cat *catalog.Catalog, checkoutService *services.CheckoutService) *CartHandler {
	return &CartHandler{
		store:           s,
		catalog:         cat,
		checkoutService: checkoutService,
	}
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items := h.store.Cart()

	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.checkoutService.Totals(items),
	})
}

// POST /cart/items
func (h *CartHandler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	// Prices come from the catalog, never from the client.
	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	h.store.AddToCart(models.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: quantity,
		Image:    product.Image,
	})

	items := h.store.Cart()
	utils.CreatedResponse(c, gin.H{
		"items":  items,
		"totals": h.checkoutService.Totals(items),
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	// The store clamps the quantity to a minimum of 1.
	if !h.store.UpdateCartQuantity(id, req.Quantity) {
		utils.NotFoundResponse(c, "Cart item")
		return
	}

	items := h.store.Cart()
	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.checkoutService.Totals(items),
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	// Removal of an absent id is a no-op, not an error.
	h.store.RemoveFromCart(c.Param("id"))

	items := h.store.Cart()
	utils.SuccessResponse(c, gin.H{
		"items":  items,
		"totals": h.checkoutService.Totals(items),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store.ClearCart()

	utils.SuccessResponse(c, gin.H{
		"items":  []models.CartItem{},
		"totals": h.checkoutService.Totals(nil),
	})
}

// POST /checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	order, err := h.checkoutService.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, "Cart is empty", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}
