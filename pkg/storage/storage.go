// Package storage persists completed orders to a local SQLite database.
// The live cart snapshot is a separate JSON blob owned by pkg/store; this
// is history only.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS orders (
  id          TEXT PRIMARY KEY,
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  name        TEXT NOT NULL,
  email       TEXT NOT NULL,
  address     TEXT NOT NULL,
  city        TEXT NOT NULL,
  state       TEXT NOT NULL,
  zip_code    TEXT NOT NULL,
  subtotal    REAL NOT NULL,
  shipping    REAL NOT NULL,
  tax         REAL NOT NULL,
  total       REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email);
CREATE INDEX IF NOT EXISTS idx_orders_time ON orders(created_at);
CREATE TABLE IF NOT EXISTS order_items (
  id           INTEGER PRIMARY KEY,
  order_id     TEXT NOT NULL REFERENCES orders(id),
  product_id   TEXT NOT NULL,
  product_name TEXT NOT NULL,
  category     TEXT NOT NULL,
  unit_price   REAL NOT NULL,
  quantity     INTEGER NOT NULL CHECK (quantity >= 1)
);
CREATE INDEX IF NOT EXISTS idx_items_order ON order_items(order_id);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// InsertOrder writes an order and its lines in one transaction.
func (d *DB) InsertOrder(ctx context.Context, o Order) (err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders(id, created_at, name, email, address, city, state, zip_code, subtotal, shipping, tax, total) VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, createdAt.UTC().Format("2006-01-02 15:04:05"), o.Name, o.Email, o.Address, o.City, o.State, o.ZipCode, o.Subtotal, o.Shipping, o.Tax, o.Total)
	if err != nil {
		return err
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items(order_id, product_id, product_name, category, unit_price, quantity) VALUES(?,?,?,?,?,?)`,
			o.ID, it.ProductID, it.ProductName, it.Category, it.UnitPrice, it.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListOptions controls selection when listing orders.
type ListOptions struct {
	EmailFilter string
	Since       time.Time
	Limit       int
}

// ListOrders returns orders matching the filters, most recent first,
// with their lines attached.
func (d *DB) ListOrders(ctx context.Context, opts ListOptions) ([]Order, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if opts.EmailFilter != "" {
		where += " AND email LIKE ?"
		args = append(args, fmt.Sprintf("%%%s%%", opts.EmailFilter))
	}
	if !opts.Since.IsZero() {
		where += " AND created_at >= ?"
		// created_at is stored as text; bind the same format so the
		// comparison is exact at the boundary.
		args = append(args, opts.Since.UTC().Format("2006-01-02 15:04:05"))
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	q := "SELECT id, created_at, name, email, address, city, state, zip_code, subtotal, shipping, tax, total FROM orders " + where + " ORDER BY created_at DESC LIMIT ?"
	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var createdAtStr string
		if err := rows.Scan(&o.ID, &createdAtStr, &o.Name, &o.Email, &o.Address, &o.City, &o.State, &o.ZipCode, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total); err != nil {
			return nil, err
		}
		o.CreatedAt = parseDBTime(createdAtStr)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := d.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (d *DB) listItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT product_id, product_name, category, unit_price, quantity FROM order_items WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Category, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type CategoryStats struct {
	Category   string
	OrderCount int
	UnitsSold  int
	Revenue    float64
}

// GetStats aggregates units sold and revenue per product category.
func (d *DB) GetStats(ctx context.Context) ([]CategoryStats, error) {
	query := `
		SELECT
			category,
			COUNT(DISTINCT order_id),
			SUM(quantity),
			SUM(unit_price * quantity)
		FROM
			order_items
		GROUP BY
			category
		ORDER BY
			category;
	`
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []CategoryStats
	for rows.Next() {
		var s CategoryStats
		if err := rows.Scan(&s.Category, &s.OrderCount, &s.UnitsSold, &s.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// parseDBTime handles SQLite CURRENT_TIMESTAMP format, then RFC3339.
func parseDBTime(s string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
