// internal/services/price_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shoplite/shoplite-backend/internal/gemini"
	"github.com/shoplite/shoplite-backend/internal/models"
)

// TextGenerator is the generative-text delegate behind price comparison.
// *gemini.Client satisfies it; tests substitute a fake.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrNotConfigured means the delegate credential is missing.
	ErrNotConfigured = errors.New("price delegate not configured")
	// ErrUnparseable means the delegate output had no usable JSON object.
	ErrUnparseable = errors.New("unparseable delegate response")
)

// PriceService fabricates cross-marketplace price estimates for a product
// by asking the text delegate once per request. No caching, no retries.
type PriceService struct {
	generator TextGenerator
}

func NewPriceService(generator TextGenerator) *PriceService {
	return &PriceService{generator: generator}
}

const pricePromptFormat = `Based on typical market prices for "%s", provide estimated prices on these platforms:

Please respond in JSON format only, with no additional text:
{
  "amazon": { "price": number, "discount": number },
  "flipkart": { "price": number, "discount": number },
  "blinkit": { "price": number, "discount": number }
}

Where price is in USD and discount is percentage. Prices should be realistic estimates for this product. If product is not typically available on a platform, use 0.`

// Compare asks the delegate for estimates on every platform. The delegate
// output is untrusted free text expected to embed a JSON object; the first
// balanced {...} span is extracted and strictly validated before anything
// is surfaced to the caller.
func (s *PriceService) Compare(ctx context.Context, productName string, basePrice float64) (*models.PriceComparison, error) {
	prompt := fmt.Sprintf(pricePromptFormat, productName)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, ErrNotConfigured
		}
		logrus.WithError(err).WithField("product", productName).Error("Price delegate call failed")
		return nil, fmt.Errorf("delegate call failed: %w", err)
	}

	prices, err := parseMarketPrices(text)
	if err != nil {
		logrus.WithError(err).WithField("product", productName).Warn("Failed to parse delegate response")
		return nil, err
	}

	return &models.PriceComparison{
		ProductName:  productName,
		BasePrice:    basePrice,
		MarketPrices: *prices,
	}, nil
}

// parseMarketPrices extracts the first balanced JSON object from the text
// and validates its shape: all three platform keys present with numeric
// price and discount fields. No partial result is ever returned.
func parseMarketPrices(text string) (*models.MarketPrices, error) {
	span, ok := extractJSONObject(text)
	if !ok {
		return nil, ErrUnparseable
	}

	var raw map[string]struct {
		Price    *float64 `json:"price"`
		Discount *float64 `json:"discount"`
	}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, ErrUnparseable
	}

	var prices models.MarketPrices
	for _, platform := range models.Platforms {
		entry, ok := raw[string(platform)]
		if !ok || entry.Price == nil || entry.Discount == nil {
			return nil, ErrUnparseable
		}
		pp := models.PlatformPrice{Price: *entry.Price, Discount: *entry.Discount}
		switch platform {
		case models.PlatformAmazon:
			prices.Amazon = pp
		case models.PlatformFlipkart:
			prices.Flipkart = pp
		case models.PlatformBlinkit:
			prices.Blinkit = pp
		}
	}

	return &prices, nil
}

// extractJSONObject returns the first balanced {...} span, skipping braces
// inside JSON string literals.
func extractJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}

	return "", false
}
