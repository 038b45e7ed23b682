// internal/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `{
  "categories": [
    { "id": "all", "name": "All" },
    { "id": "electronics", "name": "Electronics" },
    { "id": "grocery", "name": "Grocery" }
  ],
  "products": [
    { "id": "1", "name": "Wireless Headphones", "price": 199.99, "originalPrice": 279.99, "category": "electronics", "rating": 4.6, "reviews": 1284, "stock": 34, "description": "d", "specs": ["a"] },
    { "id": "2", "name": "Coffee Beans", "price": 18.5, "originalPrice": 24.0, "category": "grocery", "rating": 4.9, "reviews": 642, "stock": 300, "description": "d", "specs": ["b"] },
    { "id": "3", "name": "Wired Headphones", "price": 29.99, "originalPrice": 39.99, "category": "electronics", "rating": 4.1, "reviews": 211, "stock": 80, "description": "d", "specs": ["c"] }
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cat, err := Load(writeCatalog(t, testData))
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Len(t, cat.Categories(), 3)

	p, ok := cat.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Coffee Beans", p.Name)
	assert.InDelta(t, 18.5, p.Price, 1e-9)

	_, ok = cat.Get("missing")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	_, err = Load(writeCatalog(t, "not json"))
	assert.Error(t, err)

	_, err = Load(writeCatalog(t, `{"products": []}`))
	assert.Error(t, err)

	_, err = Load(writeCatalog(t, `{"products": [{"id":"1","name":"a"},{"id":"1","name":"b"}]}`))
	assert.Error(t, err, "duplicate ids must be rejected")
}

func TestFilter(t *testing.T) {
	cat, err := Load(writeCatalog(t, testData))
	require.NoError(t, err)

	assert.Len(t, cat.Filter("", ""), 3)
	assert.Len(t, cat.Filter("all", ""), 3)
	assert.Len(t, cat.Filter("electronics", ""), 2)
	assert.Len(t, cat.Filter("grocery", ""), 1)
	assert.Empty(t, cat.Filter("toys", ""))

	// Case-insensitive name substring match.
	assert.Len(t, cat.Filter("", "headphones"), 2)
	assert.Len(t, cat.Filter("", "WIRELESS"), 1)
	assert.Len(t, cat.Filter("electronics", "wired"), 1)
	assert.Empty(t, cat.Filter("grocery", "headphones"))
}

func TestAllReturnsCopy(t *testing.T) {
	cat, err := Load(writeCatalog(t, testData))
	require.NoError(t, err)

	all := cat.All()
	all[0].Name = "mutated"

	fresh, _ := cat.Get("1")
	assert.Equal(t, "Wireless Headphones", fresh.Name)
}
