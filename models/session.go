package models

// SessionState is a point-in-time copy of one shopper's store
type SessionState struct {
	SessionID           string        `json:"sessionId"`
	CartItems           []CartItem    `json:"cartItems"`
	Customization       Customization `json:"customization"`
	IsCartOpen          bool          `json:"isCartOpen"`
	IsMobileMenuOpen    bool          `json:"isMobileMenuOpen"`
	CurrentPage         string        `json:"currentPage"`
	IsGeneratingPreview bool          `json:"isGeneratingPreview"`
	PreviewURL          *string       `json:"previewUrl"`
	PreviewSequence     uint64        `json:"previewSequence"`
}

// UIStateUpdate represents the request body for PUT /api/session/ui
// Example: {"cartOpen": true, "currentPage": "studio"}
type UIStateUpdate struct {
	CartOpen       *bool   `json:"cartOpen,omitempty"`
	MobileMenuOpen *bool   `json:"mobileMenuOpen,omitempty"`
	CurrentPage    *string `json:"currentPage,omitempty"`
}
