package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"void-apparel/models"
	"void-apparel/utils"
)

var presetMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// DriveService reads preset artwork from a Google Drive folder
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a DriveService authenticated with the Service Account JSON at credentialsPath
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &DriveService{client: client}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListPresetGraphics lists the images in folderID and turns the ones named
// CATEGORY__NAME.ext into preset graphics. Other files are skipped.
func (ds *DriveService) ListPresetGraphics(ctx context.Context, folderID string) ([]models.PresetGraphic, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var files []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}
		files = append(files, r.Files...)

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return presetsFromDriveFiles(files), nil
}

func presetsFromDriveFiles(files []*drive.File) []models.PresetGraphic {
	var presets []models.PresetGraphic
	for _, file := range files {
		if !presetMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		preset, err := utils.ParsePresetFileName(file.Name)
		if err != nil {
			log.Printf("⚠️  ListPresetGraphics: Skipping %s: %v", file.Name, err)
			continue
		}
		preset.ImageURL = fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id)
		presets = append(presets, *preset)
	}
	return presets
}
