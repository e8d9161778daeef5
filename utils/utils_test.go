package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"void-apparel/models"
)

func TestMapHexToColorName(t *testing.T) {
	cases := map[string]string{
		"#0a0a0a": "void black",
		"#dc2626": "blood red",
		"#DC2626": "black",
		"#0A0A0A": "black",
		" #0a0a0a": "black",
		"#f5f5f5": "bone white",
		"#1f1f1f": "charcoal grey",
		"#991b1b": "deep crimson",
		"#3f3f3f": "ash grey",
		"#ff4500": "black",
		"":        "black",
		"nope":    "black",
	}
	for hex, want := range cases {
		assert.Equal(t, want, MapHexToColorName(hex), "hex %q", hex)
	}
}

func TestCartItemName(t *testing.T) {
	c := models.DefaultCustomization()
	assert.Equal(t, "Void Black Hoodie", CartItemName(c))

	c.GarmentType = models.GarmentJacket
	c.BaseColor = "#8a2be2"
	assert.Equal(t, "Violet Bomber", CartItemName(c))

	c.BaseColor = "#8A2BE2"
	assert.Equal(t, "Custom Bomber", CartItemName(c))

	c.GarmentType = "cape"
	c.BaseColor = "#123456"
	assert.Equal(t, "Custom Custom Garment", CartItemName(c))
}

func TestCalculateGarmentPrice(t *testing.T) {
	assert.Equal(t, int64(14500), CalculateGarmentPrice(models.GarmentHoodie))
	assert.Equal(t, int64(14500), CalculateGarmentPrice(models.GarmentJacket))
	assert.Equal(t, int64(12500), CalculateGarmentPrice(models.GarmentTrackPants))
	assert.Equal(t, int64(8500), CalculateGarmentPrice(models.GarmentTee))
	assert.Equal(t, int64(8500), CalculateGarmentPrice(models.GarmentCropTop))
}

func TestCalculateShipping(t *testing.T) {
	for method, want := range map[string]int64{"standard": 0, "express": 2500, "overnight": 4500} {
		got, err := CalculateShipping(method)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := CalculateShipping("teleport")
	assert.Error(t, err)

	assert.Equal(t, ShippingStandard, NormalizeShippingMethod("  "))
	assert.Equal(t, ShippingExpress, NormalizeShippingMethod(" Express "))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "$85.00", FormatUSD(8500))
	assert.Equal(t, "$1,450.50", FormatUSD(145050))
	assert.Equal(t, "$1,234,567.89", FormatUSD(123456789))
	assert.Equal(t, "-$25.00", FormatUSD(-2500))
}

func TestParsePresetFileName(t *testing.T) {
	p, err := ParsePresetFileName("ed_hardy__tiger_koi.PNG")
	require.NoError(t, err)
	assert.Equal(t, "tiger-koi", p.ID)
	assert.Equal(t, "Tiger Koi", p.Name)
	assert.Equal(t, "Ed Hardy", p.Category)

	_, err = ParsePresetFileName("tiger.png")
	assert.Error(t, err)
	_, err = ParsePresetFileName("punk__bolt.gif")
	assert.Error(t, err)
	_, err = ParsePresetFileName("__bolt.jpg")
	assert.Error(t, err)
}
