package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortPriceHigh, ParseSortKey("price-high"))
}

func TestSortProductsByPrice(t *testing.T) {
	products := []Product{
		{ID: "a", Price: "$50"},
		{ID: "b", Price: "$10.50"},
		{ID: "c", Price: "USD 25"},
	}

	low := SortProducts(products, SortPriceLow)
	assert.Equal(t, []string{"b", "c", "a"}, ids(low))

	high := SortProducts(products, SortPriceHigh)
	assert.Equal(t, []string{"a", "c", "b"}, ids(high))
}

func TestSortProductsPriceTiesKeepOrder(t *testing.T) {
	products := []Product{
		{ID: "a", Price: "$50"},
		{ID: "b", Price: "$10"},
		{ID: "c", Price: "$10"},
	}

	low := SortProducts(products, SortPriceLow)
	assert.Equal(t, []string{"b", "c", "a"}, ids(low))
}

func TestSortProductsNewestByCreatedAt(t *testing.T) {
	products := []Product{
		{ID: "old", CreatedAt: "2023-01-01T00:00:00Z"},
		{ID: "new", CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: "mid", CreatedAt: "2023-09-01T00:00:00Z"},
	}

	newest := SortProducts(products, SortNewest)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(newest))

	oldest := SortProducts(products, SortOldest)
	assert.Equal(t, []string{"old", "mid", "new"}, ids(oldest))
}

func TestSortProductsFallsBackToIDTimestamp(t *testing.T) {
	// Records written before CreatedAt existed carry their creation time
	// in the id suffix.
	products := []Product{
		{ID: "prod_1600000000000"},
		{ID: "prod_1700000000000"},
		{ID: "no-numeric-suffix"},
	}

	newest := SortProducts(products, SortNewest)
	assert.Equal(t, []string{"prod_1700000000000", "prod_1600000000000", "no-numeric-suffix"}, ids(newest))
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	products := []Product{
		{ID: "a", Price: "$50"},
		{ID: "b", Price: "$10"},
	}

	SortProducts(products, SortPriceLow)
	assert.Equal(t, []string{"a", "b"}, ids(products))
}

func TestSortCategoriesPriority(t *testing.T) {
	cats := []Category{
		{ID: "c3", Priority: 3},
		{ID: "c1", Priority: 1},
		{ID: "unset"},
		{ID: "c2", Priority: 2},
	}

	sorted := SortCategories(cats)
	got := make([]string, len(sorted))
	for i, c := range sorted {
		got[i] = c.ID
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "unset"}, got)
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
