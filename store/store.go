// Package store holds the per-session storefront state: the garment being
// customized, the cart and a few UI flags.
package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"void-apparel/models"
)

var (
	// ErrItemNotFound is returned when a cart item id is unknown. The cart is left unchanged.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrGraphicNotFound is returned when a graphic id is unknown. The customization is left unchanged.
	ErrGraphicNotFound = errors.New("graphic not found")
)

const defaultPage = "home"

// Store is the state of one shopper session. All methods are safe for concurrent use
// and every mutation is visible to the next read.
type Store struct {
	mu sync.Mutex

	cartItems        []models.CartItem
	customization    models.Customization
	isCartOpen       bool
	isMobileMenuOpen bool
	currentPage      string

	isGeneratingPreview bool
	previewURL          *string
	previewSeq          uint64

	newID func() string
}

// New creates a store holding the default customization and an empty cart
func New() *Store {
	return &Store{
		cartItems:     []models.CartItem{},
		customization: models.DefaultCustomization(),
		currentPage:   defaultPage,
		newID:         uuid.NewString,
	}
}

// Snapshot returns a deep copy of the state
func (s *Store) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SessionState{
		CartItems:           s.cartItemsLocked(),
		Customization:       s.customization.Clone(),
		IsCartOpen:          s.isCartOpen,
		IsMobileMenuOpen:    s.isMobileMenuOpen,
		CurrentPage:         s.currentPage,
		IsGeneratingPreview: s.isGeneratingPreview,
		PreviewSequence:     s.previewSeq,
	}
	if s.previewURL != nil {
		url := *s.previewURL
		state.PreviewURL = &url
	}
	return state
}

// Customization returns a copy of the current customization
func (s *Store) Customization() models.Customization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customization.Clone()
}

// SetCustomization merges a partial update into the current customization.
// Nil and blank fields are ignored so the customization never loses a required value.
func (s *Store) SetCustomization(update models.CustomizationUpdate) models.Customization {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.GarmentType != nil && strings.TrimSpace(string(*update.GarmentType)) != "" {
		s.customization.GarmentType = *update.GarmentType
	}
	setIfNotBlank(&s.customization.BaseColor, update.BaseColor)
	setIfNotBlank(&s.customization.Fabric, update.Fabric)
	setIfNotBlank(&s.customization.Style, update.Style)
	setIfNotBlank(&s.customization.Size, update.Size)

	return s.customization.Clone()
}

// ResetCustomization restores the default customization and forgets the session preview
func (s *Store) ResetCustomization() models.Customization {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customization = models.DefaultCustomization()
	s.previewURL = nil
	s.isGeneratingPreview = false
	// Bump the sequence so an in-flight preview of the old design is discarded.
	s.previewSeq++
	return s.customization.Clone()
}

// AddGraphic appends a graphic to the customization, assigning an id when it has none
func (s *Store) AddGraphic(g models.GraphicPlacement) models.GraphicPlacement {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		prefix := string(g.Type)
		if prefix == "" {
			prefix = "graphic"
		}
		g.ID = prefix + "-" + s.newID()
	}
	s.customization.Graphics = append(s.customization.Graphics, g)
	return g
}

// RemoveGraphic removes the graphic with the given id
func (s *Store) RemoveGraphic(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.customization.Graphics {
		if g.ID == id {
			s.customization.Graphics = append(s.customization.Graphics[:i:i], s.customization.Graphics[i+1:]...)
			return nil
		}
	}
	return ErrGraphicNotFound
}

// UpdateGraphic merges a partial update into the graphic with the given id
func (s *Store) UpdateGraphic(id string, update models.GraphicPlacementUpdate) (models.GraphicPlacement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customization.Graphics {
		g := &s.customization.Graphics[i]
		if g.ID != id {
			continue
		}
		if update.Name != nil {
			g.Name = *update.Name
		}
		if update.URL != nil {
			g.URL = *update.URL
		}
		if update.Position != nil {
			g.Position = *update.Position
		}
		if update.Scale != nil {
			g.Scale = *update.Scale
		}
		if update.Rotation != nil {
			g.Rotation = *update.Rotation
		}
		return *g, nil
	}
	return models.GraphicPlacement{}, ErrGraphicNotFound
}

// AddToCart stores an independent copy of item under a fresh id and returns it
func (s *Store) AddToCart(item models.CartItem) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := item.Clone()
	stored.ID = s.newID()
	stored.Quantity = clampQuantity(stored.Quantity)
	s.cartItems = append(s.cartItems, stored)
	return stored.Clone()
}

// RemoveFromCart removes the item with the given id
func (s *Store) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cartItems {
		if item.ID == id {
			s.cartItems = append(s.cartItems[:i:i], s.cartItems[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// TakeActiveItems removes the items not saved for later and returns them.
// Concurrent callers never receive the same item.
func (s *Store) TakeActiveItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var taken []models.CartItem
	kept := make([]models.CartItem, 0, len(s.cartItems))
	for _, item := range s.cartItems {
		if item.SavedForLater {
			kept = append(kept, item)
			continue
		}
		taken = append(taken, item.Clone())
	}
	s.cartItems = kept
	return taken
}

// RestoreCartItems puts previously taken items back at the front of the cart,
// keeping their ids. Items whose id is already in the cart are skipped.
func (s *Store) RestoreCartItems(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	present := make(map[string]struct{}, len(s.cartItems))
	for _, item := range s.cartItems {
		present[item.ID] = struct{}{}
	}

	restored := make([]models.CartItem, 0, len(items)+len(s.cartItems))
	for _, item := range items {
		if _, ok := present[item.ID]; ok {
			continue
		}
		restored = append(restored, item.Clone())
	}
	s.cartItems = append(restored, s.cartItems...)
}

// UpdateQuantity sets the quantity of an item, clamped to at least 1
func (s *Store) UpdateQuantity(id string, quantity int) (models.CartItem, error) {
	return s.updateItem(id, func(item *models.CartItem) {
		item.Quantity = clampQuantity(quantity)
	})
}

// ToggleSaveForLater flips the saved-for-later flag of an item
func (s *Store) ToggleSaveForLater(id string) (models.CartItem, error) {
	return s.updateItem(id, func(item *models.CartItem) {
		item.SavedForLater = !item.SavedForLater
	})
}

// ClearCart removes every cart item
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems = []models.CartItem{}
}

// CartItems returns copies of the cart items in insertion order
func (s *Store) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartItemsLocked()
}

// SetCartOpen sets the cart drawer visibility
func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isCartOpen = open
}

// SetMobileMenuOpen sets the mobile menu visibility
func (s *Store) SetMobileMenuOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isMobileMenuOpen = open
}

// SetCurrentPage records the page the shopper is on
func (s *Store) SetCurrentPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// PreviewURL returns the latest applied preview url, or "" when there is none
func (s *Store) PreviewURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.previewURL == nil {
		return ""
	}
	return *s.previewURL
}

// BeginPreview starts a new preview request and returns its sequence number.
// Any request started earlier becomes stale.
func (s *Store) BeginPreview() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewSeq++
	s.isGeneratingPreview = true
	return s.previewSeq
}

// CompletePreview applies url if seq is still the newest preview request.
// It reports whether the result was applied.
func (s *Store) CompletePreview(seq uint64, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.previewSeq {
		return false
	}
	s.previewURL = &url
	s.isGeneratingPreview = false
	return true
}

// FailPreview ends the preview request seq without a result, falling back to the placeholder.
// It reports whether seq was still the newest request.
func (s *Store) FailPreview(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.previewSeq {
		return false
	}
	s.previewURL = nil
	s.isGeneratingPreview = false
	return true
}

func (s *Store) updateItem(id string, fn func(item *models.CartItem)) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			fn(&s.cartItems[i])
			return s.cartItems[i].Clone(), nil
		}
	}
	return models.CartItem{}, ErrItemNotFound
}

func (s *Store) cartItemsLocked() []models.CartItem {
	out := make([]models.CartItem, len(s.cartItems))
	for i, item := range s.cartItems {
		out[i] = item.Clone()
	}
	return out
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func setIfNotBlank(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}
