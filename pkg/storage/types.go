package storage

import "time"

// Order is a completed checkout persisted to the order history.
type Order struct {
	ID        string
	CreatedAt time.Time

	// Shipping info
	Name    string
	Email   string
	Address string
	City    string
	State   string
	ZipCode string

	// Figures
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64

	Items []OrderItem
}

// OrderItem is one line of a persisted order.
type OrderItem struct {
	ProductID   string
	ProductName string
	Category    string
	UnitPrice   float64
	Quantity    int
}

// ItemCount is the sum of quantities across the order's lines.
func (o Order) ItemCount() int {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return count
}
