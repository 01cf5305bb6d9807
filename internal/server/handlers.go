package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pcforge/pcforge/pkg/build"
	"github.com/pcforge/pcforge/pkg/catalog"
	"github.com/pcforge/pcforge/pkg/storage"
	"github.com/pcforge/pcforge/pkg/store"
)

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	// Filter query params map onto the showcase pipeline.
	q := r.URL.Query()
	f := catalog.DefaultFilters()
	if c := q.Get("category"); c != "" {
		f.Category = c
	}
	if v := q.Get("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange[0] = p
		}
	}
	if v := q.Get("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange[1] = p
		}
	}
	if v := q.Get("brands"); v != "" {
		f.Brands = strings.Split(v, ",")
	}
	if v := q.Get("sort"); v != "" {
		f.SortBy = v
	}

	products := catalog.Filter(catalog.Products(), q.Get("search"), f)
	json.NewEncoder(w).Encode(products)
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.ProductByID(r.PathValue("id"))
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(p)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(catalog.Categories())
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(catalog.FeaturedProducts())
}

func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(catalog.Brands())
}

// handleSearch is the standalone full-text search. Unlike the filter
// pipeline on /api/products it also matches product descriptions.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(catalog.SearchProducts(r.URL.Query().Get("q")))
}

type cartResponse struct {
	Items      []store.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

func (s *Server) writeCart(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(cartResponse{
		Items:      s.Store.Cart(),
		TotalItems: s.Store.TotalItems(),
		TotalPrice: s.Store.TotalPrice(),
	})
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w)
}

type cartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	s.Store.AddToCart(p)
	s.writeCart(w)
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.Store.UpdateQuantity(req.ProductID, req.Quantity)
	s.writeCart(w)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.Store.ClearCart()
	} else {
		s.Store.RemoveFromCart(id)
	}
	s.writeCart(w)
}

type buildCheckRequest struct {
	// Selected product id per slot category.
	Selections map[string]string `json:"selections"`
}

type buildCheckResponse struct {
	Issues            []string `json:"issues"`
	CompletionPercent int      `json:"completionPercent"`
	TotalPrice        float64  `json:"totalPrice"`
	Ready             bool     `json:"ready"`
}

func (s *Server) handleBuildCheck(w http.ResponseWriter, r *http.Request) {
	var req buildCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b := build.New()
	b.ApplySelections(req.Selections)
	issues := b.CheckCompatibility()
	if issues == nil {
		issues = []string{}
	}
	json.NewEncoder(w).Encode(buildCheckResponse{
		Issues:            issues,
		CompletionPercent: b.CompletionPercent(),
		TotalPrice:        b.TotalPrice(),
		Ready:             b.Ready(),
	})
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "order history not available", http.StatusServiceUnavailable)
		return
	}
	opts := storage.ListOptions{
		EmailFilter: r.URL.Query().Get("email"),
	}
	if v := r.URL.Query().Get("since"); v != "" {
		since, err := parseOrderTime(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts.Since = since
	}
	orders, err := s.DB.ListOrders(r.Context(), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(orders)
}

// parseOrderTime accepts a date or an RFC3339 timestamp.
func parseOrderTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid since value %q (use YYYY-MM-DD or RFC3339)", s)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "order history not available", http.StatusServiceUnavailable)
		return
	}
	stats, err := s.DB.GetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stats)
}
