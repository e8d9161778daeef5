package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"

	"void-apparel/models"
)

type fakeDrive struct {
	presets []models.PresetGraphic
	err     error
	calls   int
}

func (f *fakeDrive) ListPresetGraphics(ctx context.Context, folderID string) ([]models.PresetGraphic, error) {
	f.calls++
	return f.presets, f.err
}

func TestGraphicLibraryService_BuiltinsOnly(t *testing.T) {
	svc := NewGraphicLibraryService(nil, "")
	presets := svc.Presets(context.Background())

	require.Len(t, presets, 9)
	assert.Equal(t, models.PresetGraphic{ID: "skull-roses", Name: "Skull & Roses", Category: "Ed Hardy"}, presets[0])
	assert.Equal(t, "lotus", presets[8].ID)
}

func TestGraphicLibraryService_MergesDrivePresets(t *testing.T) {
	drv := &fakeDrive{presets: []models.PresetGraphic{
		{ID: "tiger-koi", Name: "Tiger Koi", Category: "Japanese", ImageURL: "https://drive.google.com/uc?id=1"},
		{ID: "anchor", Name: "Anchor", Category: "Traditional", ImageURL: "https://drive.google.com/uc?id=2"},
	}}
	svc := NewGraphicLibraryService(drv, "folder")

	presets := svc.Presets(context.Background())
	require.Len(t, presets, 10)
	assert.Equal(t, "tiger-koi", presets[9].ID)

	p, err := svc.Find(context.Background(), "tiger-koi")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/uc?id=1", p.ImageURL)

	// built-in wins on id collision
	p, err = svc.Find(context.Background(), "anchor")
	require.NoError(t, err)
	assert.Equal(t, "Sailor Anchor", p.Name)
}

func TestGraphicLibraryService_DriveFailureKeepsBuiltins(t *testing.T) {
	drv := &fakeDrive{err: errors.New("403 forbidden")}
	svc := NewGraphicLibraryService(drv, "folder")

	assert.Len(t, svc.Presets(context.Background()), 9)
}

func TestGraphicLibraryService_CachesDriveListing(t *testing.T) {
	drv := &fakeDrive{presets: []models.PresetGraphic{{ID: "tiger-koi", Name: "Tiger Koi", Category: "Japanese"}}}
	svc := NewGraphicLibraryService(drv, "folder")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Presets(context.Background())
	svc.Presets(context.Background())
	assert.Equal(t, 1, drv.calls)

	now = now.Add(drivePresetCacheTTL + time.Second)
	svc.Presets(context.Background())
	assert.Equal(t, 2, drv.calls)
}

func TestGraphicLibraryService_FindUnknown(t *testing.T) {
	svc := NewGraphicLibraryService(nil, "")
	_, err := svc.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestPresetsFromDriveFiles(t *testing.T) {
	files := []*drive.File{
		{Id: "a", Name: "ed_hardy__tiger_koi.png", MimeType: "image/png"},
		{Id: "b", Name: "notes.txt", MimeType: "text/plain"},
		{Id: "c", Name: "badname.jpg", MimeType: "image/jpeg"},
		{Id: "d", Name: "occult__third_eye.JPG", MimeType: "IMAGE/JPEG"},
	}

	presets := presetsFromDriveFiles(files)
	require.Len(t, presets, 2)
	assert.Equal(t, models.PresetGraphic{
		ID: "tiger-koi", Name: "Tiger Koi", Category: "Ed Hardy", ImageURL: "https://drive.google.com/uc?id=a",
	}, presets[0])
	assert.Equal(t, "third-eye", presets[1].ID)
	assert.Equal(t, "Occult", presets[1].Category)
}
