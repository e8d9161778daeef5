package controller

import (
	"log"
	"net/http"

	"void-apparel/models"
	"void-apparel/service"
)

// CatalogController handles HTTP requests for the shop catalog and studio options
type CatalogController struct {
	catalogService service.CatalogServiceInterface
	studioService  service.StudioServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService service.CatalogServiceInterface, studioService service.StudioServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		studioService:  studioService,
	}
}

// ListProducts handles GET /api/products?category=Jacket&style=Limited&sort=price-low
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ListProducts"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.String())

	query := r.URL.Query()
	filter := models.ProductFilter{
		Category: query.Get("category"),
		Styles:   query["style"],
		Sort:     query.Get("sort"),
	}

	writeJSON(w, op, http.StatusOK, c.catalogService.List(filter))
}

// FeaturedProducts handles GET /api/products/featured
func (c *CatalogController) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	const op = "FeaturedProducts"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	writeJSON(w, op, http.StatusOK, c.catalogService.Featured())
}

// GetProduct handles GET /api/products/{id}
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "GetProduct"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	product, err := c.catalogService.GetByID(id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, product)
}

// StudioOptions handles GET /api/studio/options
func (c *CatalogController) StudioOptions(w http.ResponseWriter, r *http.Request) {
	const op = "StudioOptions"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	writeJSON(w, op, http.StatusOK, c.studioService.Options(r.Context()))
}
