package service

import (
	"context"

	"void-apparel/models"
	"void-apparel/store"
)

// GraphicLibraryServiceInterface defines the contract for the preset graphic library
type GraphicLibraryServiceInterface interface {
	Presets(ctx context.Context) []models.PresetGraphic
	Find(ctx context.Context, id string) (*models.PresetGraphic, error)
}

// GraphicUploadServiceInterface defines the contract for normalizing uploaded artwork
type GraphicUploadServiceInterface interface {
	Process(name string, data []byte) (*models.UploadedGraphic, error)
}

// StudioServiceInterface defines the contract for studio options and session design operations
type StudioServiceInterface interface {
	Options(ctx context.Context) *models.StudioOptions
	UpdateCustomization(st *store.Store, update models.CustomizationUpdate) (models.Customization, error)
	AddPreset(ctx context.Context, st *store.Store, presetID string) (models.GraphicPlacement, error)
	AddGraphic(st *store.Store, req models.AddGraphicRequest) (models.GraphicPlacement, error)
	AddUpload(st *store.Store, upload *models.UploadedGraphic) models.GraphicPlacement
	AddCurrentDesignToCart(st *store.Store) models.CartItem
}

// CheckoutServiceInterface defines the contract for cart totals and order placement
type CheckoutServiceInterface interface {
	Summary(st *store.Store, shippingMethod string) (*models.CartSummary, error)
	PlaceOrder(ctx context.Context, sessionID string, st *store.Store, req models.CheckoutRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, sessionID string) ([]models.Order, error)
}
