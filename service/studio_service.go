package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"void-apparel/metrics"
	"void-apparel/models"
	"void-apparel/store"
	"void-apparel/utils"
)

var (
	fabricTypes = []string{"Heavy Cotton", "French Terry", "Distressed Denim", "Vintage Wash", "Raw Selvedge"}
	styleTypes  = []string{"Oversized", "Boxy Fit", "Cropped", "Relaxed", "Slim"}
	sizes       = []string{"XS", "S", "M", "L", "XL", "XXL"}

	presetPosition = models.Position{X: 50, Y: 40}
	uploadPosition = models.Position{X: 50, Y: 50}
)

// StudioService backs the customization studio: its option lists and the
// session operations that place graphics or turn a design into a cart item.
// Implements StudioServiceInterface
type StudioService struct {
	library GraphicLibraryServiceInterface
}

// NewStudioService creates a StudioService
func NewStudioService(library GraphicLibraryServiceInterface) *StudioService {
	return &StudioService{library: library}
}

// Ensure StudioService implements StudioServiceInterface
var _ StudioServiceInterface = (*StudioService)(nil)

// Options returns everything the studio needs to render its controls
func (s *StudioService) Options(ctx context.Context) *models.StudioOptions {
	return &models.StudioOptions{
		GarmentTypes: utils.GarmentOptions(),
		BaseColors:   utils.BaseColors(),
		Fabrics:      append([]string(nil), fabricTypes...),
		Styles:       append([]string(nil), styleTypes...),
		Sizes:        append([]string(nil), sizes...),
		Presets:      s.library.Presets(ctx),
	}
}

// UpdateCustomization merges update into the session's customization.
// Unknown garment types are rejected and nothing is changed.
func (s *StudioService) UpdateCustomization(st *store.Store, update models.CustomizationUpdate) (models.Customization, error) {
	if update.GarmentType != nil && *update.GarmentType != "" && !update.GarmentType.IsValid() {
		return models.Customization{}, &ValidationError{Issues: []string{
			fmt.Sprintf("garmentType: Expected one of %s", strings.Join(garmentTypeIDs(), " ")),
		}}
	}
	return st.SetCustomization(update), nil
}

func garmentTypeIDs() []string {
	options := utils.GarmentOptions()
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = string(o.ID)
	}
	return ids
}

// AddPreset places the preset with presetID on the session's garment
func (s *StudioService) AddPreset(ctx context.Context, st *store.Store, presetID string) (models.GraphicPlacement, error) {
	preset, err := s.library.Find(ctx, presetID)
	if err != nil {
		return models.GraphicPlacement{}, err
	}

	url := preset.ID
	if preset.ImageURL != "" {
		url = preset.ImageURL
	}
	placed := st.AddGraphic(models.GraphicPlacement{
		Name:     preset.Name,
		Type:     models.GraphicPreset,
		URL:      url,
		Position: presetPosition,
		Scale:    1,
		Rotation: 0,
	})
	log.Printf("✅ AddPreset: Placed %s as %s", preset.ID, placed.ID)
	return placed, nil
}

// AddGraphic validates and places a client-described graphic, centered when no position is given
func (s *StudioService) AddGraphic(st *store.Store, req models.AddGraphicRequest) (models.GraphicPlacement, error) {
	if err := validateStruct(req); err != nil {
		return models.GraphicPlacement{}, err
	}

	g := models.GraphicPlacement{
		Name:     req.Name,
		Type:     req.Type,
		URL:      req.URL,
		Position: uploadPosition,
		Scale:    1,
		Rotation: req.Rotation,
	}
	if req.Position != nil {
		g.Position = *req.Position
	}
	if req.Scale != nil {
		g.Scale = *req.Scale
	}
	placed := st.AddGraphic(g)
	log.Printf("✅ AddGraphic: Placed %q as %s", placed.Name, placed.ID)
	return placed, nil
}

// AddUpload places a normalized upload on the session's garment
func (s *StudioService) AddUpload(st *store.Store, upload *models.UploadedGraphic) models.GraphicPlacement {
	placed := st.AddGraphic(models.GraphicPlacement{
		Name:     upload.Name,
		Type:     models.GraphicUpload,
		URL:      upload.DataURL,
		Position: uploadPosition,
		Scale:    1,
		Rotation: 0,
	})
	log.Printf("✅ AddUpload: Placed %q as %s", upload.Name, placed.ID)
	return placed
}

// AddCurrentDesignToCart snapshots the session's customization into a new cart item
// priced by garment type, carrying the session's current preview image
func (s *StudioService) AddCurrentDesignToCart(st *store.Store) models.CartItem {
	c := st.Customization()
	item := st.AddToCart(models.CartItem{
		Name:          utils.CartItemName(c),
		Customization: c,
		Quantity:      1,
		Price:         utils.CalculateGarmentPrice(c.GarmentType),
		PreviewURL:    st.PreviewURL(),
	})
	metrics.RecordCartOperation("add")
	log.Printf("✅ AddToCart: Added %s (%s) at %d cents", item.ID, item.Name, item.Price)
	return item
}
