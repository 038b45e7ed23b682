// internal/models/prices.go
package models

// PlatformPrice is one marketplace's estimate. Price 0 is the sentinel for
// "not sold on this platform"; discount is meaningless in that case.
type PlatformPrice struct {
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

// MarketPrices always carries all three platforms.
type MarketPrices struct {
	Amazon   PlatformPrice `json:"amazon"`
	Flipkart PlatformPrice `json:"flipkart"`
	Blinkit  PlatformPrice `json:"blinkit"`
}

// PriceComparison is the compare-prices response body.
type PriceComparison struct {
	ProductName  string       `json:"productName"`
	BasePrice    float64      `json:"basePrice"`
	MarketPrices MarketPrices `json:"marketPrices"`
}
