package service

import "context"

// ImageGenerationParams describes one image-generation call
type ImageGenerationParams struct {
	Model   string
	Prompt  string
	N       int
	Size    string
	Quality string
}

// GeneratedImage is one image returned by the generator
type GeneratedImage struct {
	URL           string
	RevisedPrompt string
}

// ImageGeneratorInterface defines the contract for the external image-generation service
type ImageGeneratorInterface interface {
	GenerateImages(ctx context.Context, params ImageGenerationParams) ([]GeneratedImage, error)
}
