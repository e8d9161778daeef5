package utils

import (
	"fmt"
	"strings"

	"void-apparel/models"
)

// Shipping methods offered at checkout
const (
	ShippingStandard  = "standard"
	ShippingExpress   = "express"
	ShippingOvernight = "overnight"
)

// Prices in cents
const (
	priceOuterwear  int64 = 14500 // hoodie, jacket
	priceTrackPants int64 = 12500
	priceDefault    int64 = 8500
)

var shippingPrices = map[string]int64{
	ShippingStandard:  0,
	ShippingExpress:   2500,
	ShippingOvernight: 4500,
}

// CalculateGarmentPrice returns the unit price in cents of a customized garment
func CalculateGarmentPrice(garmentType models.GarmentType) int64 {
	switch garmentType {
	case models.GarmentHoodie, models.GarmentJacket:
		return priceOuterwear
	case models.GarmentTrackPants:
		return priceTrackPants
	default:
		return priceDefault
	}
}

// NormalizeShippingMethod lower-cases and trims a shipping method, defaulting to standard
func NormalizeShippingMethod(method string) string {
	m := strings.ToLower(strings.TrimSpace(method))
	if m == "" {
		return ShippingStandard
	}
	return m
}

// CalculateShipping returns the shipping price in cents for a normalized method
func CalculateShipping(method string) (int64, error) {
	price, ok := shippingPrices[method]
	if !ok {
		return 0, fmt.Errorf("unknown shipping method %q", method)
	}
	return price, nil
}
