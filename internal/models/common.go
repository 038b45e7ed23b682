// internal/models/common.go
package models

// Enums
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformFlipkart Platform = "flipkart"
	PlatformBlinkit  Platform = "blinkit"
)

// Platforms lists every marketplace a price comparison must cover.
var Platforms = []Platform{PlatformAmazon, PlatformFlipkart, PlatformBlinkit}
