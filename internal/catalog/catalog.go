// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shoplite/shoplite-backend/internal/models"
)

// Catalog is the static product dataset. It is loaded once at startup and
// read-only afterwards, so lookups need no locking.
type Catalog struct {
	products   []models.Product
	categories []models.Category
	byID       map[string]models.Product
}

type dataFile struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
}

// Load reads the catalog data file and indexes products by id.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog data: %w", err)
	}

	var data dataFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	if len(data.Products) == 0 {
		return nil, fmt.Errorf("catalog data %s contains no products", path)
	}

	byID := make(map[string]models.Product, len(data.Products))
	for _, p := range data.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has no id", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{
		products:   data.Products,
		categories: data.Categories,
		byID:       byID,
	}, nil
}

// All returns every product in file order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Filter returns products matching the category and a case-insensitive name
// substring query. Category "all" or "" matches every category.
func (c *Catalog) Filter(category, query string) []models.Product {
	query = strings.ToLower(query)

	var out []models.Product
	for _, p := range c.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the category list in file order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
