// internal/handlers/orders.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplite/shoplite-backend/internal/store"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type OrderHandler struct {
	store *store.Store
}

func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"orders": h.store.Orders(),
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	for _, order := range h.store.Orders() {
		if order.ID == id {
			utils.SuccessResponse(c, gin.H{
				"order": order,
			})
			return
		}
	}

	utils.NotFoundResponse(c, "Order")
}
