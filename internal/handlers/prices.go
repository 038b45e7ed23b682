// internal/handlers/prices.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shoplite/shoplite-backend/internal/services"
)

// PriceHandler serves the compare-prices endpoint. Unlike the /v1 API it
// keeps the flat wire contract of the original storefront, because the
// frontend consumes it verbatim.
type PriceHandler struct {
	priceService *services.PriceService
}

func NewPriceHandler(priceService *services.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

type ComparePricesRequest struct {
	ProductName string  `json:"productName"`
	BasePrice   float64 `json:"basePrice"`
}

// POST /api/compare-prices
func (h *PriceHandler) ComparePrices(c *gin.Context) {
	var req ComparePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product name and base price are required",
		})
		return
	}

	// Both fields are required; the delegate is never called without them.
	if req.ProductName == "" || req.BasePrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product name and base price are required",
		})
		return
	}

	comparison, err := h.priceService.Compare(c.Request.Context(), req.ProductName, req.BasePrice)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "API key not configured",
			})
		case errors.Is(err, services.ErrUnparseable):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to parse response",
			})
		default:
			logrus.WithError(err).Error("Error comparing prices")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to compare prices",
			})
		}
		return
	}

	c.JSON(http.StatusOK, comparison)
}
