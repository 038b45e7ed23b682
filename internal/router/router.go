// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplite/shoplite-backend/internal/catalog"
	"github.com/shoplite/shoplite-backend/internal/config"
	"github.com/shoplite/shoplite-backend/internal/gemini"
	"github.com/shoplite/shoplite-backend/internal/handlers"
	"github.com/shoplite/shoplite-backend/internal/middleware"
	"github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/store"
)

func Initialize(cat *catalog.Catalog, st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	geminiClient := gemini.NewClient(cfg.Gemini)
	priceService := services.NewPriceService(geminiClient)
	checkoutService := services.NewCheckoutService(st, cfg.Checkout)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(cat)
	cartHandler := handlers.NewCartHandler(st, cat, checkoutService)
	wishlistHandler := handlers.NewWishlistHandler(st, cat)
	orderHandler := handlers.NewOrderHandler(st)
	priceHandler := handlers.NewPriceHandler(priceService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Price comparison keeps the original flat wire contract under /api.
	api := r.Group("/api")
	{
		api.POST("/compare-prices", middleware.CompareRateLimit(), priceHandler.ComparePrices)
	}

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		v1.GET("/categories", catalogHandler.GetCategories)

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddCartItem)
			cart.PUT("/items/:id", cartHandler.UpdateCartItem)
			cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
		}

		v1.POST("/checkout", cartHandler.Checkout)

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("/items", wishlistHandler.AddWishlistItem)
			wishlist.GET("/items/:id", wishlistHandler.CheckWishlistItem)
			wishlist.DELETE("/items/:id", wishlistHandler.RemoveWishlistItem)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}

	return r
}
