package utils

import (
	"void-apparel/models"
)

// FallbackColorName is used in prompts for hex values outside the palette
const FallbackColorName = "black"

// promptColorNames maps the six core base colors to the names used in image prompts
var promptColorNames = map[string]string{
	"#0a0a0a": "void black",
	"#dc2626": "blood red",
	"#f5f5f5": "bone white",
	"#1f1f1f": "charcoal grey",
	"#991b1b": "deep crimson",
	"#3f3f3f": "ash grey",
}

// baseColors is the studio palette, in display order
var baseColors = []models.ColorOption{
	{ID: "void-black", Color: "#0a0a0a", Label: "Void Black"},
	{ID: "blood-red", Color: "#dc2626", Label: "Blood Red"},
	{ID: "bone-white", Color: "#f5f5f5", Label: "Bone White"},
	{ID: "charcoal", Color: "#1f1f1f", Label: "Charcoal"},
	{ID: "crimson", Color: "#991b1b", Label: "Crimson"},
	{ID: "ash-grey", Color: "#3f3f3f", Label: "Ash Grey"},
	{ID: "sunset-orange", Color: "#ff4500", Label: "Sunset Orange"},
	{ID: "electric-blue", Color: "#00ffff", Label: "Electric Blue"},
	{ID: "neon-pink", Color: "#ff69b4", Label: "Neon Pink"},
	{ID: "lime-green", Color: "#32cd32", Label: "Lime Green"},
	{ID: "gold", Color: "#ffd700", Label: "Gold"},
	{ID: "violet", Color: "#8a2be2", Label: "Violet"},
}

var garmentOptions = []models.GarmentOption{
	{ID: models.GarmentHoodie, Label: "Hoodie"},
	{ID: models.GarmentTee, Label: "Tee"},
	{ID: models.GarmentLongSleeve, Label: "Long Sleeve"},
	{ID: models.GarmentCropTop, Label: "Crop Top"},
	{ID: models.GarmentTrackPants, Label: "Track Pants"},
	{ID: models.GarmentJacket, Label: "Bomber"},
}

// MapHexToColorName maps a base color hex value to its prompt name.
// Only the exact lowercase palette values match; anything else maps to FallbackColorName.
func MapHexToColorName(hex string) string {
	if name, exists := promptColorNames[hex]; exists {
		return name
	}
	return FallbackColorName
}

// MapHexToColorLabel returns the palette label for a hex value, or "Custom"
func MapHexToColorLabel(hex string) string {
	for _, c := range baseColors {
		if c.Color == hex {
			return c.Label
		}
	}
	return "Custom"
}

// MapGarmentTypeToLabel returns the display label of a garment type, or "Custom Garment"
func MapGarmentTypeToLabel(garmentType models.GarmentType) string {
	for _, g := range garmentOptions {
		if g.ID == garmentType {
			return g.Label
		}
	}
	return "Custom Garment"
}

// CartItemName builds the cart line name for a customization, e.g. "Blood Red Tee"
func CartItemName(c models.Customization) string {
	return MapHexToColorLabel(c.BaseColor) + " " + MapGarmentTypeToLabel(c.GarmentType)
}

// BaseColors returns a copy of the studio palette
func BaseColors() []models.ColorOption {
	out := make([]models.ColorOption, len(baseColors))
	copy(out, baseColors)
	return out
}

// GarmentOptions returns a copy of the selectable garments
func GarmentOptions() []models.GarmentOption {
	out := make([]models.GarmentOption, len(garmentOptions))
	copy(out, garmentOptions)
	return out
}
