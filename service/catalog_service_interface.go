package service

import "void-apparel/models"

// CatalogServiceInterface defines the contract for shop catalog queries
type CatalogServiceInterface interface {
	List(filter models.ProductFilter) *models.ProductListResponse
	Featured() []models.Product
	GetByID(id string) (*models.Product, error)
}
