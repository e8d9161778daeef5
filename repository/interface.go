package repository

import (
	"context"
	"errors"

	"void-apparel/models"
)

// ErrOrderNotFound is returned when no order has the requested id
var ErrOrderNotFound = errors.New("order not found")

// OrderRepositoryInterface defines the contract for order storage operations
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.Order, error)
}
