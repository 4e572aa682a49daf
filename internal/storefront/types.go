package storefront

import "time"

// Order statuses. An mpesa order stays "Payment Initiated" until the gateway
// callback settles it; bank transfers are recorded as paid immediately.
const (
	StatusPaymentInitiated = "Payment Initiated"
	StatusPaid             = "Paid"
	StatusDelivered        = "Delivered"
)

// Supported payment methods.
const (
	PaymentMethodMpesa = "mpesa"
	PaymentMethodBank  = "bank"
)

// OrderItem is one line of an order, priced at checkout time.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Title    string  `json:"title"`
	Quantity uint    `json:"quantity"`
	Price    float64 `json:"price"`
	ImageSrc string  `json:"image_src"`
}

// Order is a placed order. UserEmail links it to the customer, matching the
// session token subject.
type Order struct {
	ID            string      `json:"id"`
	UserEmail     string      `json:"user_email"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Favorite is an item a customer saved, denormalized so the favorites page
// renders without a catalog lookup.
type Favorite struct {
	ID        string  `json:"id"`
	UserEmail string  `json:"user_email"`
	ItemID    string  `json:"item_id"`
	ItemTitle string  `json:"item_title"`
	ItemImage string  `json:"item_image"`
	ItemPrice float64 `json:"item_price"`
}
