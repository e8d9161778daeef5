package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"log"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"

	"void-apparel/models"
)

const (
	maxGraphicDimension = 1024

	// Limits on the decoded source image, checked from its header before decoding
	maxSourceDimension = 8192
	maxSourcePixels    = 32 << 20
)

// GraphicUploadService normalizes shopper artwork into PNG data URLs.
// Implements GraphicUploadServiceInterface
type GraphicUploadService struct {
	maxDimension       int
	maxSourceDimension int
	maxSourcePixels    int
}

// NewGraphicUploadService creates a GraphicUploadService
func NewGraphicUploadService() *GraphicUploadService {
	return &GraphicUploadService{
		maxDimension:       maxGraphicDimension,
		maxSourceDimension: maxSourceDimension,
		maxSourcePixels:    maxSourcePixels,
	}
}

// Ensure GraphicUploadService implements GraphicUploadServiceInterface
var _ GraphicUploadServiceInterface = (*GraphicUploadService)(nil)

// Process checks that data is an image, shrinks it to fit the maximum dimension
// keeping its aspect ratio, and re-encodes it as a PNG data URL
func (s *GraphicUploadService) Process(name string, data []byte) (*models.UploadedGraphic, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		log.Printf("❌ ProcessUpload: Rejected %q with content type %s", name, contentType)
		return nil, ErrNotAnImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("❌ ProcessUpload: Failed to read header of %q: %v", name, err)
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if cfg.Width > s.maxSourceDimension || cfg.Height > s.maxSourceDimension || cfg.Width*cfg.Height > s.maxSourcePixels {
		log.Printf("❌ ProcessUpload: Rejected %q, %dx%d is too large", name, cfg.Width, cfg.Height)
		return nil, fmt.Errorf("%w: %dx%d exceeds the size limit", ErrNotAnImage, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("❌ ProcessUpload: Failed to decode %q: %v", name, err)
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.maxDimension || bounds.Dy() > s.maxDimension {
		log.Printf("🔄 ProcessUpload: Resizing %q from %dx%d", name, bounds.Dx(), bounds.Dy())
		img = imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	out := img.Bounds()
	log.Printf("✅ ProcessUpload: %q normalized to %dx%d PNG, %d bytes", name, out.Dx(), out.Dy(), buf.Len())
	return &models.UploadedGraphic{
		Name:    name,
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:   out.Dx(),
		Height:  out.Dy(),
		Bytes:   buf.Len(),
	}, nil
}
