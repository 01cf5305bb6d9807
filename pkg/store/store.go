// Package store implements the storefront state engine: the cart, theme,
// user, filter defaults and search query, with every mutation followed by
// a whole-snapshot persist through an injected Persister.
package store

import (
	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/catalog"
)

// CartItem is one cart line. Its ID is the product id, so a product has at
// most one line; adding the same product again increments the quantity.
type CartItem struct {
	ID       string          `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// User is the signed-in account carried in the snapshot, if any.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Store is the single source of truth for storefront state. Construct one
// with New or Load; all mutations go through its methods. It is not safe
// for concurrent use.
type Store struct {
	darkMode    bool
	cart        []CartItem
	user        *User
	filters     catalog.Filters
	searchQuery string

	persister Persister
}

// New returns a store with default state. A nil persister is valid and
// disables persistence, which keeps mutations testable without a backend.
func New(p Persister) *Store {
	return &Store{
		filters:   catalog.DefaultFilters(),
		persister: p,
	}
}

// AddToCart increments the quantity of an existing line for this product,
// or appends a new line with quantity 1 at the end. It always succeeds; no
// stock check is performed even for out-of-stock products.
func (s *Store) AddToCart(p catalog.Product) {
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			s.persist()
			return
		}
	}
	s.cart = append(s.cart, CartItem{ID: p.ID, Product: p, Quantity: 1})
	s.persist()
}

// RemoveFromCart deletes the line with the given product id. Removing an
// absent id is a no-op, not an error.
func (s *Store) RemoveFromCart(productID string) {
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line with the given product id.
// A quantity of zero or less means deletion and behaves exactly like
// RemoveFromCart. No upper bound is enforced.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.cart = nil
	s.persist()
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []CartItem {
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// TotalItems is the sum of quantities across all lines, recomputed on
// every call.
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines,
// recomputed on every call.
func (s *Store) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// DarkMode reports the persisted theme flag.
func (s *Store) DarkMode() bool {
	return s.darkMode
}

// ToggleDarkMode flips the theme flag.
func (s *Store) ToggleDarkMode() {
	s.darkMode = !s.darkMode
	s.persist()
}

// User returns the signed-in user, or nil.
func (s *Store) User() *User {
	return s.user
}

// SetUser replaces the signed-in user; nil signs out.
func (s *Store) SetUser(u *User) {
	s.user = u
	s.persist()
}

// Filters returns the current filter state.
func (s *Store) Filters() catalog.Filters {
	return s.filters
}

// SetFilters replaces the filter state wholesale. To change a subset of
// fields, read the current state first:
//
//	f := s.Filters()
//	f.Category = "ram"
//	s.SetFilters(f)
func (s *Store) SetFilters(f catalog.Filters) {
	s.filters = f
	s.persist()
}

// ResetFilters restores the default filter state.
func (s *Store) ResetFilters() {
	s.filters = catalog.DefaultFilters()
	s.persist()
}

// SearchQuery returns the current search query.
func (s *Store) SearchQuery() string {
	return s.searchQuery
}

// SetSearchQuery replaces the search query. The query is session state and
// is not part of the persisted snapshot.
func (s *Store) SetSearchQuery(q string) {
	s.searchQuery = q
}

// persist writes the current snapshot through the persister. Writes are
// fire-and-forget whole-snapshot replacements; a failure is logged and
// never surfaced to the mutation caller.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	data, err := s.encodeSnapshot()
	if err != nil {
		utils.Log.Warnf("encoding snapshot: %v", err)
		return
	}
	if err := s.persister.Save(SnapshotKey, data); err != nil {
		utils.Log.Warnf("persisting snapshot: %v", err)
	}
}
