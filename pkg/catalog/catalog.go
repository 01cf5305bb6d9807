// Package catalog provides read-only access to the static product and
// category data: lookups by id and category, free-text search, and the
// filter/sort pipeline used by the showcase views.
package catalog

import "strings"

// Product is an immutable catalog record. Field names in JSON match the
// persisted snapshot format, so a cart snapshot embeds products verbatim.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice,omitempty"`
	Description    string            `json:"description"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
	Features       []string          `json:"features"`
	Brand          string            `json:"brand"`
	Tags           []string          `json:"tags"`
}

// Discounted reports whether the product carries an original price, which
// is what marks it as featured/discounted in the storefront.
func (p Product) Discounted() bool {
	return p.OriginalPrice > 0
}

// Category is an immutable grouping record. Count is the displayed product
// count from the source data and is not recomputed from the catalog, so it
// may drift from the true number of matching products.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}

// featuredLimit is how many discounted products FeaturedProducts returns.
const featuredLimit = 6

// FeaturedProducts returns the first discounted products in catalog order,
// up to the featured limit. If fewer qualify, all of them are returned.
func FeaturedProducts() []Product {
	out := make([]Product, 0, featuredLimit)
	for _, p := range products {
		if !p.Discounted() {
			continue
		}
		out = append(out, p)
		if len(out) == featuredLimit {
			break
		}
	}
	return out
}

// ProductsByCategory returns all products in the given category, catalog
// order preserved. An unknown category id yields an empty slice.
func ProductsByCategory(categoryID string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns the product with the given id, or ok=false if no
// such product exists.
func ProductByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SearchProducts returns every product whose name, description, brand or
// any tag contains the query, case-insensitively. An empty query matches
// every string, so it returns the whole catalog.
func SearchProducts(query string) []Product {
	q := strings.ToLower(query)
	var out []Product
	for _, p := range products {
		if matchesSearch(p, q, true) {
			out = append(out, p)
		}
	}
	return out
}

// matchesSearch tests a product against a lowercased query. The showcase
// filter pipeline skips the description field, the standalone search
// includes it.
func matchesSearch(p Product, q string, includeDescription bool) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	if includeDescription && strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Products returns the full catalog in its defined order. The returned
// slice is a copy; the catalog itself is never mutated.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Categories returns all categories in their defined order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID returns the category with the given id, or ok=false.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
