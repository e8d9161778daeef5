package service

import (
	"context"
	"log"
	"sync"
	"time"

	"void-apparel/models"
)

const drivePresetCacheTTL = 5 * time.Minute

var builtinPresets = []models.PresetGraphic{
	{ID: "skull-roses", Name: "Skull & Roses", Category: "Ed Hardy"},
	{ID: "flaming-heart", Name: "Flaming Heart", Category: "Ed Hardy"},
	{ID: "sacred-heart", Name: "Sacred Heart", Category: "Ed Hardy"},
	{ID: "death-star", Name: "Death Star", Category: "Punk"},
	{ID: "lightning", Name: "Lightning Bolt", Category: "Punk"},
	{ID: "crown-thorns", Name: "Crown of Thorns", Category: "Gothic"},
	{ID: "all-seeing", Name: "All Seeing Eye", Category: "Occult"},
	{ID: "anchor", Name: "Sailor Anchor", Category: "Traditional"},
	{ID: "lotus", Name: "Lotus Flower", Category: "Japanese"},
}

// GraphicLibraryService serves the preset graphics shoppers can place on a garment:
// the built-in icons plus any artwork found in the configured Drive folder.
// Implements GraphicLibraryServiceInterface
type GraphicLibraryService struct {
	driveService DriveServiceInterface
	folderID     string
	now          func() time.Time

	mu        sync.Mutex
	cached    []models.PresetGraphic
	fetchedAt time.Time
}

// NewGraphicLibraryService creates a GraphicLibraryService.
// With a nil driveService or an empty folderID only the built-in presets are served.
func NewGraphicLibraryService(driveService DriveServiceInterface, folderID string) *GraphicLibraryService {
	return &GraphicLibraryService{
		driveService: driveService,
		folderID:     folderID,
		now:          time.Now,
	}
}

// Ensure GraphicLibraryService implements GraphicLibraryServiceInterface
var _ GraphicLibraryServiceInterface = (*GraphicLibraryService)(nil)

// Presets returns the built-in presets followed by the Drive presets.
// Drive errors are logged and only the built-ins are returned.
func (s *GraphicLibraryService) Presets(ctx context.Context) []models.PresetGraphic {
	out := append([]models.PresetGraphic(nil), builtinPresets...)

	seen := make(map[string]bool, len(builtinPresets))
	for _, p := range builtinPresets {
		seen[p.ID] = true
	}
	for _, p := range s.drivePresets(ctx) {
		if seen[p.ID] {
			log.Printf("⚠️  Presets: Skipping Drive preset %q, id already in use", p.ID)
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// Find returns the preset with id or ErrPresetNotFound
func (s *GraphicLibraryService) Find(ctx context.Context, id string) (*models.PresetGraphic, error) {
	for _, p := range s.Presets(ctx) {
		if p.ID == id {
			preset := p
			return &preset, nil
		}
	}
	return nil, ErrPresetNotFound
}

func (s *GraphicLibraryService) drivePresets(ctx context.Context) []models.PresetGraphic {
	if s.driveService == nil || s.folderID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < drivePresetCacheTTL {
		return s.cached
	}

	presets, err := s.driveService.ListPresetGraphics(ctx, s.folderID)
	if err != nil {
		log.Printf("❌ Presets: Failed to list Drive presets from folder %s: %v", s.folderID, err)
		return s.cached
	}

	log.Printf("📦 Presets: Loaded %d presets from Drive folder %s", len(presets), s.folderID)
	if presets == nil {
		presets = []models.PresetGraphic{}
	}
	s.cached = presets
	s.fetchedAt = s.now()
	return s.cached
}
