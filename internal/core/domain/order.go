package domain

// OrderStatus represents the lifecycle state of an order. The only
// behaviorally significant distinction is COMPLETED vs not-COMPLETED:
// non-completed orders form the manager queue.
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// Contacts holds the shipping details of an order. All fields are required
// for a valid order.
type Contacts struct {
	ZipCode     string `json:"zip_code"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	PhoneNumber string `json:"phone_number"`
}

// Order is a finalized purchase: a snapshot of chosen lines plus shipping
// contacts and payment method. An order belongs to exactly one client, set
// at creation and never reassigned.
type Order struct {
	ID            int64        `json:"id"`
	ClientID      int64        `json:"client_id"`
	ClientItems   []ClientItem `json:"client_items"`
	Contacts      Contacts     `json:"contacts"`
	PaymentMethod string       `json:"payment_method"`
	TrackNumber   string       `json:"track_number,omitempty"`
	OrderStatus   OrderStatus  `json:"order_status"`
}
