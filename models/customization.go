package models

// GarmentType identifies the kind of garment being customized
type GarmentType string

const (
	GarmentHoodie     GarmentType = "hoodie"
	GarmentTee        GarmentType = "tee"
	GarmentLongSleeve GarmentType = "longsleeve"
	GarmentCropTop    GarmentType = "croptop"
	GarmentTrackPants GarmentType = "trackpants"
	GarmentJacket     GarmentType = "jacket"
)

// GraphicType tells uploaded artwork apart from preset icons
type GraphicType string

const (
	GraphicUpload GraphicType = "upload"
	GraphicPreset GraphicType = "preset"
)

// Default customization values
const (
	DefaultGarmentType = GarmentHoodie
	DefaultBaseColor   = "#0a0a0a"
	DefaultFabric      = "Heavy Cotton"
	DefaultStyle       = "Oversized"
	DefaultSize        = "L"
)

// Position is a normalized placement on the garment canvas, in percentages
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GraphicPlacement represents one graphic placed on the garment
type GraphicPlacement struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     GraphicType `json:"type"`
	URL      string      `json:"url"`
	Position Position    `json:"position"`
	Scale    float64     `json:"scale"`
	Rotation float64     `json:"rotation"`
}

// GraphicPlacementUpdate is a partial update of a graphic placement.
// Nil fields are left untouched.
type GraphicPlacementUpdate struct {
	Name     *string   `json:"name,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Position *Position `json:"position,omitempty"`
	Scale    *float64  `json:"scale,omitempty"`
	Rotation *float64  `json:"rotation,omitempty"`
}

// Customization is the full set of garment attributes a shopper is editing
type Customization struct {
	GarmentType GarmentType        `json:"garmentType"`
	BaseColor   string             `json:"baseColor"`
	Fabric      string             `json:"fabric"`
	Style       string             `json:"style"`
	Size        string             `json:"size"`
	Graphics    []GraphicPlacement `json:"graphics"`
}

// CustomizationUpdate is a partial update merged into the current customization
type CustomizationUpdate struct {
	GarmentType *GarmentType `json:"garmentType,omitempty"`
	BaseColor   *string      `json:"baseColor,omitempty"`
	Fabric      *string      `json:"fabric,omitempty"`
	Style       *string      `json:"style,omitempty"`
	Size        *string      `json:"size,omitempty"`
}

// DefaultCustomization returns a fresh customization with every default applied
func DefaultCustomization() Customization {
	return Customization{
		GarmentType: DefaultGarmentType,
		BaseColor:   DefaultBaseColor,
		Fabric:      DefaultFabric,
		Style:       DefaultStyle,
		Size:        DefaultSize,
		Graphics:    []GraphicPlacement{},
	}
}

// Clone returns a deep copy that shares no graphics slice with c
func (c Customization) Clone() Customization {
	out := c
	out.Graphics = make([]GraphicPlacement, len(c.Graphics))
	copy(out.Graphics, c.Graphics)
	return out
}

// IsValid reports whether t is one of the known garment types
func (t GarmentType) IsValid() bool {
	switch t {
	case GarmentHoodie, GarmentTee, GarmentLongSleeve, GarmentCropTop, GarmentTrackPants, GarmentJacket:
		return true
	}
	return false
}

// AddGraphicRequest represents the request body for POST /api/session/graphics
// Example: {"name": "Skull & Roses", "type": "preset", "url": "skull-roses", "position": {"x": 50, "y": 40}, "scale": 1}
type AddGraphicRequest struct {
	Name     string      `json:"name" validate:"required"`
	Type     GraphicType `json:"type" validate:"required,oneof=upload preset"`
	URL      string      `json:"url" validate:"required"`
	Position *Position   `json:"position,omitempty"`
	Scale    *float64    `json:"scale,omitempty" validate:"omitempty,gt=0"`
	Rotation float64     `json:"rotation"`
}
