package service

import (
	"context"
	"errors"
	"log"
	"time"

	"void-apparel/metrics"
	"void-apparel/models"
	"void-apparel/store"
)

// Fixed downstream request parameters
const (
	previewModel   = "dall-e-3"
	previewCount   = 1
	previewSize    = "1024x1024"
	previewQuality = "standard"
)

var errNoImageGenerated = errors.New("No image generated")

// PreviewService turns customizations into AI preview images.
// Implements PreviewServiceInterface
type PreviewService struct {
	generator ImageGeneratorInterface
}

// NewPreviewService creates a PreviewService. A nil generator means preview
// generation is not configured and every call fails with ErrPreviewNotConfigured.
func NewPreviewService(generator ImageGeneratorInterface) *PreviewService {
	return &PreviewService{generator: generator}
}

// Ensure PreviewService implements PreviewServiceInterface
var _ PreviewServiceInterface = (*PreviewService)(nil)

// Configured reports whether a generator is available
func (s *PreviewService) Configured() bool {
	return s.generator != nil
}

// Generate builds the prompt for req and makes exactly one downstream call
func (s *PreviewService) Generate(ctx context.Context, req models.PreviewRequest) (*models.PreviewResponse, error) {
	if s.generator == nil {
		metrics.RecordPreview(metrics.PreviewNotConfigured, 0)
		return nil, ErrPreviewNotConfigured
	}

	prompt := BuildPreviewPrompt(req)
	log.Printf("🎨 Generate: Requesting preview for garment=%s, color=%s, graphics=%d", req.GarmentType, req.BaseColor, len(req.Graphics))

	start := time.Now()
	images, err := s.generator.GenerateImages(ctx, ImageGenerationParams{
		Model:   previewModel,
		Prompt:  prompt,
		N:       previewCount,
		Size:    previewSize,
		Quality: previewQuality,
	})
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("❌ Generate: Image generation failed after %s: %v", elapsed, err)
		metrics.RecordPreview(metrics.PreviewFailed, elapsed)
		return nil, &GenerationError{Err: err}
	}
	if len(images) == 0 || images[0].URL == "" {
		log.Printf("❌ Generate: Image generation returned no data after %s", elapsed)
		metrics.RecordPreview(metrics.PreviewFailed, elapsed)
		return nil, &GenerationError{Err: errNoImageGenerated}
	}

	metrics.RecordPreview(metrics.PreviewSuccess, elapsed)
	log.Printf("✅ Generate: Preview generated in %s", elapsed)
	return &models.PreviewResponse{ImageURL: images[0].URL, Prompt: prompt}, nil
}

// GenerateForSession renders a preview of the session's current customization.
// The result is written back to the session only if no newer preview was started meanwhile.
func (s *PreviewService) GenerateForSession(ctx context.Context, st *store.Store) (*models.SessionPreviewResponse, error) {
	if s.generator == nil {
		metrics.RecordPreview(metrics.PreviewNotConfigured, 0)
		return nil, ErrPreviewNotConfigured
	}

	seq := st.BeginPreview()
	req := models.PreviewRequestFromCustomization(st.Customization())

	resp, err := s.Generate(ctx, req)
	if err != nil {
		st.FailPreview(seq)
		return nil, err
	}

	applied := st.CompletePreview(seq, resp.ImageURL)
	if !applied {
		log.Printf("⏭️  GenerateForSession: Discarding stale preview seq=%d", seq)
		metrics.RecordStalePreview()
	}
	return &models.SessionPreviewResponse{PreviewResponse: *resp, Sequence: seq, Applied: applied}, nil
}
