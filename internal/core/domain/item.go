package domain

import "time"

// Category groups catalog items.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Item is a catalog product. Read-mostly from this service's perspective:
// the catalog is maintained elsewhere, baskets and orders only reference it.
type Item struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Count           int       `json:"count"`
	Weight          float64   `json:"weight"`
	Price           float64   `json:"price"`
	Description     string    `json:"description"`
	Characteristics string    `json:"characteristics"`
	Image           string    `json:"image"`
	Code            string    `json:"code"`
	Category        Category  `json:"category"`
	CreatedOn       time.Time `json:"created_on"`
}

// ClientItem is a single (item, quantity) line. It serves both as a basket
// line (OrderID == 0) and, once an order is placed, as an order line.
type ClientItem struct {
	ID       int64 `json:"id"`
	Item     Item  `json:"item"`
	Quantity int   `json:"quantity"`

	// ClientID is the basket owner the line was added for.
	ClientID int64 `json:"-"`
	// OrderID is non-zero once the line has been moved into an order.
	OrderID int64 `json:"-"`
}

// InBasket reports whether the line still sits in a basket.
func (ci *ClientItem) InBasket() bool {
	return ci.OrderID == 0
}
