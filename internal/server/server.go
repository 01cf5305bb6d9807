package server

import (
	"log"
	"net/http"

	"github.com/pcforge/pcforge/pkg/storage"
	"github.com/pcforge/pcforge/pkg/store"
)

type Server struct {
	Store    *store.Store
	DB       *storage.DB
	Username string
	Password string
}

func New(st *store.Store, db *storage.DB, user, pass string) *Server {
	return &Server{
		Store:    st,
		DB:       db,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	mux := s.mux()
	log.Printf("Starting server on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) mux() *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/products", s.basicAuth(s.handleProducts))
	mux.HandleFunc("GET /api/products/{id}", s.basicAuth(s.handleProduct))
	mux.HandleFunc("GET /api/categories", s.basicAuth(s.handleCategories))
	mux.HandleFunc("GET /api/featured", s.basicAuth(s.handleFeatured))
	mux.HandleFunc("GET /api/brands", s.basicAuth(s.handleBrands))
	mux.HandleFunc("GET /api/search", s.basicAuth(s.handleSearch))

	// Cart
	mux.HandleFunc("GET /api/cart", s.basicAuth(s.handleCart))
	mux.HandleFunc("POST /api/cart", s.basicAuth(s.handleCartAdd))
	mux.HandleFunc("PUT /api/cart", s.basicAuth(s.handleCartUpdate))
	mux.HandleFunc("DELETE /api/cart", s.basicAuth(s.handleCartRemove))

	// Builder
	mux.HandleFunc("POST /api/build/check", s.basicAuth(s.handleBuildCheck))

	// Order history
	mux.HandleFunc("GET /api/orders", s.basicAuth(s.handleOrders))
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
