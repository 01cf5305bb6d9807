package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "orders.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleOrder(id, email string) Order {
	return Order{
		ID:       id,
		Name:     "Ada Lovelace",
		Email:    email,
		Address:  "1 Analytical Way",
		City:     "London",
		State:    "LDN",
		ZipCode:  "E1 6AN",
		Subtotal: 1799.98,
		Shipping: 0,
		Tax:      143.9984,
		Total:    1943.9784,
		Items: []OrderItem{
			{ProductID: "rtx-4090-gaming-x", ProductName: "RTX 4090", Category: "graphics-cards", UnitPrice: 1599.99, Quantity: 1},
			{ProductID: "samsung-980-pro-2tb", ProductName: "980 PRO", Category: "storage", UnitPrice: 199.99, Quantity: 1},
		},
	}
}

func TestInsertAndListOrders(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertOrder(ctx, sampleOrder("o1", "ada@example.com")))

	orders, err := db.ListOrders(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.InDelta(t, 1943.9784, got.Total, 1e-9)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "rtx-4090-gaming-x", got.Items[0].ProductID)
	assert.Equal(t, 2, got.ItemCount())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListOrdersEmailFilter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertOrder(ctx, sampleOrder("o1", "ada@example.com")))
	require.NoError(t, db.InsertOrder(ctx, sampleOrder("o2", "grace@example.com")))

	orders, err := db.ListOrders(ctx, ListOptions{EmailFilter: "grace"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestListOrdersLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"o1", "o2", "o3"} {
		o := sampleOrder(id, "ada@example.com")
		o.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.InsertOrder(ctx, o))
	}

	orders, err := db.ListOrders(ctx, ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Most recent first.
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
}

func TestListOrdersSince(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	before := sampleOrder("o1", "ada@example.com")
	before.CreatedAt = cutoff.Add(-time.Hour)
	require.NoError(t, db.InsertOrder(ctx, before))

	at := sampleOrder("o2", "ada@example.com")
	at.CreatedAt = cutoff
	require.NoError(t, db.InsertOrder(ctx, at))

	after := sampleOrder("o3", "ada@example.com")
	after.CreatedAt = cutoff.Add(time.Hour)
	require.NoError(t, db.InsertOrder(ctx, after))

	orders, err := db.ListOrders(ctx, ListOptions{Since: cutoff})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// The bound is inclusive: an order created exactly at the cutoff
	// is part of the result.
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertOrder(ctx, sampleOrder("o1", "ada@example.com")))
	o2 := sampleOrder("o2", "grace@example.com")
	o2.Items = []OrderItem{
		{ProductID: "samsung-980-pro-2tb", ProductName: "980 PRO", Category: "storage", UnitPrice: 199.99, Quantity: 3},
	}
	require.NoError(t, db.InsertOrder(ctx, o2))

	stats, err := db.GetStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by category name.
	assert.Equal(t, "graphics-cards", stats[0].Category)
	assert.Equal(t, 1, stats[0].UnitsSold)

	assert.Equal(t, "storage", stats[1].Category)
	assert.Equal(t, 2, stats[1].OrderCount)
	assert.Equal(t, 4, stats[1].UnitsSold)
	assert.InDelta(t, 199.99*4, stats[1].Revenue, 1e-6)
}
