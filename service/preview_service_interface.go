package service

import (
	"context"

	"void-apparel/models"
	"void-apparel/store"
)

// PreviewServiceInterface defines the contract for preview generation
type PreviewServiceInterface interface {
	Configured() bool
	Generate(ctx context.Context, req models.PreviewRequest) (*models.PreviewResponse, error)
	GenerateForSession(ctx context.Context, st *store.Store) (*models.SessionPreviewResponse, error)
}
