package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pcforge/pcforge/pkg/catalog"
	"github.com/pcforge/pcforge/pkg/storage"
	"github.com/pcforge/pcforge/pkg/store"
)

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(store.New(nil), nil, "", "")
	ts := httptest.NewServer(s.mux())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

func TestHandleProductsFilters(t *testing.T) {
	_, ts := testServer(t)

	var products []catalog.Product
	getJSON(t, ts.URL+"/api/products?category=graphics-cards&sort=price", &products)
	if len(products) != 2 {
		t.Fatalf("expected 2 graphics cards, got %d", len(products))
	}
	if products[0].Price > products[1].Price {
		t.Fatal("products not sorted by price")
	}
}

func TestHandleSearchMatchesDescriptions(t *testing.T) {
	_, ts := testServer(t)

	// "thermal" appears only in the 980 PRO description, so the filter
	// pipeline cannot find it while the standalone search can.
	var filtered []catalog.Product
	getJSON(t, ts.URL+"/api/products?search=thermal", &filtered)
	if len(filtered) != 0 {
		t.Fatalf("filter pipeline should skip descriptions, got %d products", len(filtered))
	}

	var found []catalog.Product
	getJSON(t, ts.URL+"/api/search?q=thermal", &found)
	if len(found) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(found))
	}
	if found[0].ID != "samsung-980-pro-2tb" {
		t.Fatalf("unexpected search hit %s", found[0].ID)
	}
}

func TestHandleOrdersSinceParam(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "orders.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "recent"} {
		o := storage.Order{
			ID:        id,
			Name:      "Ada Lovelace",
			Email:     "ada@example.com",
			Address:   "1 Analytical Way",
			City:      "London",
			State:     "LDN",
			ZipCode:   "E1 6AN",
			Total:     199.99,
			CreatedAt: cutoff.Add(time.Duration(i-1) * time.Hour),
			Items: []storage.OrderItem{
				{ProductID: "samsung-980-pro-2tb", ProductName: "980 PRO", Category: "storage", UnitPrice: 199.99, Quantity: 1},
			},
		}
		if err := db.InsertOrder(context.Background(), o); err != nil {
			t.Fatal(err)
		}
	}

	s := New(store.New(nil), db, "", "")
	ts := httptest.NewServer(s.mux())
	defer ts.Close()

	var orders []storage.Order
	getJSON(t, ts.URL+"/api/orders?since=2026-08-01T12:00:00Z", &orders)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order at or after the cutoff, got %d", len(orders))
	}
	if orders[0].ID != "recent" {
		t.Fatalf("unexpected order %s", orders[0].ID)
	}

	resp, err := http.Get(ts.URL + "/api/orders?since=not-a-date")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed since value, got %d", resp.StatusCode)
	}
}

func TestHandleProductNotFound(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/products/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCartAddAndRemove(t *testing.T) {
	srv, ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/cart", "application/json",
		strings.NewReader(`{"productId":"rtx-4090-gaming-x"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if srv.Store.TotalItems() != 1 {
		t.Fatalf("expected 1 item in the cart, got %d", srv.Store.TotalItems())
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/cart?id=rtx-4090-gaming-x", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if srv.Store.TotalItems() != 0 {
		t.Fatal("expected empty cart after delete")
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/cart", "application/json",
		strings.NewReader(`{"productId":"nope"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestBuildCheck(t *testing.T) {
	_, ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/build/check", "application/json",
		strings.NewReader(`{"selections":{"graphics-cards":"rtx-4090-gaming-x","motherboards":"asus-rog-maximus-z790"}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out struct {
		Issues            []string `json:"issues"`
		CompletionPercent int      `json:"completionPercent"`
		Ready             bool     `json:"ready"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	// The catalog motherboard lists "Expansion Slots", not "PCIe Slots",
	// so the heuristic flags the GPU pairing.
	if len(out.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", out.Issues)
	}
	if out.Ready {
		t.Fatal("incomplete build must not be ready")
	}
	if out.CompletionPercent != 40 {
		t.Fatalf("expected 40%% completion, got %d", out.CompletionPercent)
	}
}

func TestBasicAuth(t *testing.T) {
	s := New(store.New(nil), nil, "admin", "secret")
	ts := httptest.NewServer(s.mux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/categories")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/categories", nil)
	req.SetBasicAuth("admin", "secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d", resp.StatusCode)
	}
}
