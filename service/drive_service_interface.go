package service

import (
	"context"

	"void-apparel/models"
)

// DriveServiceInterface defines the contract for listing preset artwork stored in Google Drive
type DriveServiceInterface interface {
	ListPresetGraphics(ctx context.Context, folderID string) ([]models.PresetGraphic, error)
}
