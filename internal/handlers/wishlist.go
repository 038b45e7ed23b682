// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplite/shoplite-backend/internal/catalog"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/store"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type WishlistHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewWishlistHandler(s *store.Store, cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{store: s, catalog: cat}
}

type AddWishlistItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"items": h.store.Wishlist(),
	})
}

// POST /wishlist/items
func (h *WishlistHandler) AddWishlistItem(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	// Duplicate adds are no-ops; the wishlist has set semantics.
	h.store.AddToWishlist(models.WishlistItem{
		ID:      product.ID,
		Name:    product.Name,
		Price:   product.Price,
		Image:   product.Image,
		Rating:  product.Rating,
		Reviews: product.Reviews,
		Stock:   product.Stock,
	})

	utils.CreatedResponse(c, gin.H{
		"items": h.store.Wishlist(),
	})
}

// DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveWishlistItem(c *gin.Context) {
	h.store.RemoveFromWishlist(c.Param("id"))

	utils.SuccessResponse(c, gin.H{
		"items": h.store.Wishlist(),
	})
}

// GET /wishlist/items/:id
func (h *WishlistHandler) CheckWishlistItem(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"inWishlist": h.store.IsInWishlist(c.Param("id")),
	})
}
