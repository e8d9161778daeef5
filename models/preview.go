package models

// PreviewGraphic is the summary of one graphic sent to the preview endpoint
type PreviewGraphic struct {
	Name     *string   `json:"name" validate:"required"`
	Type     *string   `json:"type,omitempty"`
	Position *Position `json:"position,omitempty"`
	Scale    *float64  `json:"scale,omitempty"`
}

// PreviewRequestBody is the untrusted body of POST /api/generate-preview.
// Pointer fields distinguish omitted values from zero values.
type PreviewRequestBody struct {
	GarmentType *string          `json:"garmentType,omitempty"`
	BaseColor   *string          `json:"baseColor,omitempty"`
	Fabric      *string          `json:"fabric,omitempty"`
	Style       *string          `json:"style,omitempty"`
	Graphics    []PreviewGraphic `json:"graphics,omitempty" validate:"dive"`
}

// PreviewGraphicSummary is a validated graphic summary
type PreviewGraphicSummary struct {
	Name     string    `json:"name"`
	Type     string    `json:"type,omitempty"`
	Position *Position `json:"position,omitempty"`
	Scale    *float64  `json:"scale,omitempty"`
}

// PreviewRequest is a validated preview request with defaults applied
type PreviewRequest struct {
	GarmentType string                  `json:"garmentType"`
	BaseColor   string                  `json:"baseColor"`
	Fabric      string                  `json:"fabric"`
	Style       string                  `json:"style"`
	Graphics    []PreviewGraphicSummary `json:"graphics"`
}

// PreviewResponse represents a successful preview generation
// Example response:
// {
//   "imageUrl": "https://...",
//   "prompt": "A professional fashion product photo of a oversized hoodie in void black color, ..."
// }
type PreviewResponse struct {
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
}

// SessionPreviewResponse is returned by the session-aware preview endpoint.
// Applied is false when a newer preview request finished first.
type SessionPreviewResponse struct {
	PreviewResponse
	Sequence uint64 `json:"sequence"`
	Applied  bool   `json:"applied"`
}

// PreviewRequestFromCustomization builds the preview payload the studio sends for c
func PreviewRequestFromCustomization(c Customization) PreviewRequest {
	req := PreviewRequest{
		GarmentType: string(c.GarmentType),
		BaseColor:   c.BaseColor,
		Fabric:      c.Fabric,
		Style:       c.Style,
		Graphics:    make([]PreviewGraphicSummary, 0, len(c.Graphics)),
	}
	for _, g := range c.Graphics {
		pos := g.Position
		scale := g.Scale
		req.Graphics = append(req.Graphics, PreviewGraphicSummary{
			Name:     g.Name,
			Type:     string(g.Type),
			Position: &pos,
			Scale:    &scale,
		})
	}
	return req
}
