package models

// Order statuses
const (
	OrderStatusPlaced = "placed"
)

// CheckoutRequest represents the request body for POST /api/session/checkout
// Example: {
//   "email": "raven@example.com",
//   "firstName": "Raven",
//   "lastName": "Black",
//   "address": "13 Crypt Lane",
//   "city": "Salem",
//   "zip": "01970",
//   "shippingMethod": "express"
// }
type CheckoutRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	Zip            string `json:"zip" validate:"required"`
	ShippingMethod string `json:"shippingMethod"`
}

// OrderLine is one purchased cart item
type OrderLine struct {
	CartItemID    string        `json:"cartItemId"`
	Name          string        `json:"name"`
	Customization Customization `json:"customization"`
	Quantity      int           `json:"quantity"`
	UnitPrice     int64         `json:"unitPrice"`
	LineTotal     int64         `json:"lineTotal"`
	PreviewURL    string        `json:"previewUrl,omitempty"`
}

// Order represents a placed order
// Example response:
// {
//   "id": "6f1c...",
//   "sessionId": "1a2b...",
//   "status": "placed",
//   "email": "raven@example.com",
//   "shippingMethod": "express",
//   "lines": [...],
//   "subtotal": 14500,
//   "shipping": 2500,
//   "total": 17000,
//   "createdAt": "2026-01-04T10:30:00Z"
// }
type Order struct {
	ID             string      `json:"id"`
	SessionID      string      `json:"sessionId"`
	Status         string      `json:"status"`
	Email          string      `json:"email"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Zip            string      `json:"zip"`
	ShippingMethod string      `json:"shippingMethod"`
	Lines          []OrderLine `json:"lines"`
	Subtotal       int64       `json:"subtotal"`
	Shipping       int64       `json:"shipping"`
	Total          int64       `json:"total"`
	CreatedAt      string      `json:"createdAt"`
}
