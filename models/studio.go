package models

// GarmentOption is a selectable garment in the studio
type GarmentOption struct {
	ID    GarmentType `json:"id"`
	Label string      `json:"label"`
}

// ColorOption is a selectable base color in the studio
type ColorOption struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// PresetGraphic is an icon or artwork a shopper can drop on the garment.
// ImageURL is only set for artwork sourced from Google Drive.
type PresetGraphic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// StudioOptions represents everything the studio needs to render its controls
type StudioOptions struct {
	GarmentTypes []GarmentOption `json:"garmentTypes"`
	BaseColors   []ColorOption   `json:"baseColors"`
	Fabrics      []string        `json:"fabrics"`
	Styles       []string        `json:"styles"`
	Sizes        []string        `json:"sizes"`
	Presets      []PresetGraphic `json:"presets"`
}

// AddPresetRequest represents the request body for placing a preset graphic
// Example: {"presetId": "skull-roses"}
type AddPresetRequest struct {
	PresetID string `json:"presetId"`
}

// UploadedGraphic is the normalized result of a graphic upload
type UploadedGraphic struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Bytes   int    `json:"bytes"`
}
