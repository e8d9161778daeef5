package service

import (
	"errors"
	"strings"
)

var (
	// ErrPreviewNotConfigured is returned when no image-generation credential is configured
	ErrPreviewNotConfigured = errors.New("OpenAI API key not configured")
	// ErrEmptyCart is returned when checking out a cart with no active items
	ErrEmptyCart = errors.New("cart has no items to check out")
	// ErrInvalidShippingMethod is returned for shipping methods other than standard, express and overnight
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	// ErrNotAnImage is returned when an uploaded graphic is not an image
	ErrNotAnImage = errors.New("uploaded file is not an image")
	// ErrPresetNotFound is returned when a preset graphic id is unknown
	ErrPresetNotFound = errors.New("preset graphic not found")
	// ErrProductNotFound is returned when a product id is unknown
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError lists every field-level problem found in a request body
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues, ", ")
}

// GenerationError wraps a failure of the downstream image-generation call
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
