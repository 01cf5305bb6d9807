package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by Filters.SortBy.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
)

// Filters holds the showcase filter state. It is part of the persisted
// snapshot, so JSON tags match the original format. Rating, InStock and
// SortOrder are carried for snapshot fidelity; the pipeline itself applies
// search, category, price range, brand allow-list and the sort key.
type Filters struct {
	Category   string     `json:"category"`
	PriceRange [2]float64 `json:"priceRange"`
	Brands     []string   `json:"brand"`
	Rating     float64    `json:"rating"`
	InStock    bool       `json:"inStock"`
	SortBy     string     `json:"sortBy"`
	SortOrder  string     `json:"sortOrder"`
}

// DefaultFilters is the filter state used on first run and whenever a
// persisted snapshot cannot be decoded.
func DefaultFilters() Filters {
	return Filters{
		Category:   "",
		PriceRange: [2]float64{0, 10000},
		Brands:     nil,
		Rating:     0,
		InStock:    false,
		SortBy:     SortByName,
		SortOrder:  "asc",
	}
}

// nameCollator compares product names the way the storefront displays
// them, locale-aware rather than byte-wise.
var nameCollator = collate.New(language.AmericanEnglish)

// Filter applies the showcase pipeline to the given products, in this
// fixed order: search substring (name, brand, tags), category, inclusive
// price range, brand allow-list (empty list means no brand filtering),
// then a stable sort by the configured key. Products tied on the sort key
// keep their prior relative order, so re-applying the same filters yields
// the same list.
func Filter(list []Product, query string, f Filters) []Product {
	out := make([]Product, 0, len(list))
	q := strings.ToLower(query)

	for _, p := range list {
		if query != "" && !matchesSearch(p, q, false) {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
			continue
		}
		if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch f.SortBy {
		case SortByPrice:
			return out[i].Price < out[j].Price
		case SortByRating:
			return out[i].Rating > out[j].Rating
		default:
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		}
	})

	return out
}

// Brands returns the distinct brands across the catalog, sorted.
func Brands() []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		seen[p.Brand] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
