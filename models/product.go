package models

// Product represents a ready-made item in the shop catalog.
// Price is in cents.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	IsNew    bool     `json:"isNew"`
	Tags     []string `json:"tags,omitempty"`
}

// ProductFilter holds the shop listing query parameters
type ProductFilter struct {
	Category string
	Styles   []string
	Sort     string
}

// ProductListResponse represents the response for listing products
type ProductListResponse struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
	Styles     []string  `json:"styles"`
}
