package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortKey selects the ordering for a category's product listing.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey maps a query value to a SortKey, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortPriceLow, SortPriceHigh:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// SortProducts returns a new slice ordered by the given key. The input is
// never mutated and ties keep their input order.
func SortProducts(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceValue(sorted[i].Price) < priceValue(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceValue(sorted[i].Price) > priceValue(sorted[j].Price)
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return recencyValue(sorted[i]) < recencyValue(sorted[j])
		})
	default: // newest
		sort.SliceStable(sorted, func(i, j int) bool {
			return recencyValue(sorted[i]) > recencyValue(sorted[j])
		})
	}
	return sorted
}

// SortCategories orders by ascending priority; records without a priority
// sort after all records that have one. Ties keep their input order.
func SortCategories(categories []Category) []Category {
	sorted := make([]Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderPriority(sorted[i].Priority) < orderPriority(sorted[j].Priority)
	})
	return sorted
}

func orderPriority(p int) int {
	if p == 0 {
		return defaultPriority
	}
	return p
}

// priceValue parses the numeric portion of a display price, ignoring
// currency symbols and digit grouping. Unparseable prices sort as zero.
func priceValue(price string) float64 {
	v, err := strconv.ParseFloat(numericPortion(price), 64)
	if err != nil {
		return 0
	}
	return v
}

func numericPortion(price string) string {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// recencyValue recovers a creation time in unix milliseconds. Records without
// createdAt fall back to the numeric suffix after the last underscore in
// their id (ids embed their creation time); anything else sorts as epoch
// zero, so legacy records cluster at one end instead of erroring.
func recencyValue(p Product) int64 {
	if p.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			return t.UnixMilli()
		}
	}
	if i := strings.LastIndex(p.ID, "_"); i >= 0 {
		if ts, err := strconv.ParseInt(p.ID[i+1:], 10, 64); err == nil {
			return ts
		}
	}
	return 0
}
