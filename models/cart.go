package models

// CartItem is a purchasable snapshot of a customization.
// Price is the unit price in cents.
type CartItem struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Customization Customization `json:"customization"`
	Quantity      int           `json:"quantity"`
	Price         int64         `json:"price"`
	SavedForLater bool          `json:"savedForLater,omitempty"`
	PreviewURL    string        `json:"previewUrl,omitempty"`
}

// Clone returns a copy of the item with its own customization
func (i CartItem) Clone() CartItem {
	out := i
	out.Customization = i.Customization.Clone()
	return out
}

// LineTotal returns price * quantity in cents
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// UpdateQuantityRequest represents the request body for changing a cart item quantity
// Example: {"quantity": 2}
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSummary represents the totals shown in the cart drawer and on checkout
// Example response:
// {
//   "items": [...],
//   "itemCount": 2,
//   "shippingMethod": "express",
//   "subtotal": 23000,
//   "shipping": 2500,
//   "total": 25500,
//   "subtotalFormatted": "$230.00",
//   "shippingFormatted": "$25.00",
//   "totalFormatted": "$255.00"
// }
type CartSummary struct {
	Items             []CartItem `json:"items"`
	ItemCount         int        `json:"itemCount"`
	ShippingMethod    string     `json:"shippingMethod"`
	Subtotal          int64      `json:"subtotal"`
	Shipping          int64      `json:"shipping"`
	Total             int64      `json:"total"`
	SubtotalFormatted string     `json:"subtotalFormatted"`
	ShippingFormatted string     `json:"shippingFormatted"`
	TotalFormatted    string     `json:"totalFormatted"`
}
