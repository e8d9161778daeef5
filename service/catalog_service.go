package service

import (
	"log"
	"sort"

	"void-apparel/models"
)

// Shop listing sort orders
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

const (
	categoryAll   = "All"
	featuredCount = 4
)

var shopCategories = []string{"All", "Hoodie", "T-Shirt", "Track Pants", "Jacket"}

var shopStyles = []string{"Ed Hardy", "Punk", "Darkwave", "Grunge", "Occult", "Japanese", "Limited"}

var shopProducts = []models.Product{
	{ID: "1", Name: "Chaos Theory Cargo Pants", Price: 17500, Image: "/assets/generated_images/cargoppants.jpg", Category: "pants", IsNew: true, Tags: []string{"Punk"}},
	{ID: "2", Name: "The Hardy Grunge Top", Price: 8500, Image: "/assets/generated_images/edhardytee.jpg", Category: "T-Shirt", IsNew: true, Tags: []string{"Ed Hardy", "Limited"}},
	{ID: "3", Name: "Anchor Soul Graphic Hoodie", Price: 14500, Image: "/assets/generated_images/thoodie.jpg", Category: "hoodie", Tags: []string{"Hoodie", "Traditional"}},
	{ID: "4", Name: "Bandana Breaker Jacket", Price: 22500, Image: "/assets/generated_images/jacket.jpg", Category: "Jacket", IsNew: true, Tags: []string{"Premium", "Limited"}},
	{ID: "5", Name: "All Seeing Eye Hoodie", Price: 16500, Image: "/assets/generated_images/alleye.jpg", Category: "Hoodie", Tags: []string{"Occult"}},
	{ID: "6", Name: "Thunderstrike Core", Price: 9500, Image: "/assets/generated_images/hoodie1.jpg", Category: "Hoodie", IsNew: true, Tags: []string{"Power you can feel"}},
	{ID: "7", Name: "Chaos Theory Cargo Pants", Price: 15500, Image: "/assets/generated_images/track.jpg", Category: "Pants", IsNew: true, Tags: []string{"Punk"}},
	{ID: "8", Name: "Void Walker Jacket", Price: 29500, Image: "/assets/generated_images/jacket.jpg", Category: "Jacket", Tags: []string{"Premium", "Limited"}},
	{ID: "9", Name: "Waves of Honor Bomber", Price: 7500, Image: "/assets/generated_images/sweatshirt.jpg", Category: "Shirt", IsNew: true, Tags: []string{"Japanese"}},
	{ID: "10", Name: "Chain Requiem Jacket", Price: 18500, Image: "/assets/generated_images/gothic.jpg", Category: "Jacket", Tags: []string{"Gothic"}},
	{ID: "11", Name: "Neon Venom Ravers", Price: 21000, Image: "/assets/generated_images/track.jpg", Category: "Track Pants", IsNew: true, Tags: []string{"Cyberpunk"}},
	{ID: "12", Name: "Rebel Spirit Distressed Hoodie", Price: 8900, Image: "/assets/generated_images/rebel.jpg", Category: "Shirt", Tags: []string{"Grunge"}},
}

// CatalogService serves the ready-made shop catalog.
// Implements CatalogServiceInterface
type CatalogService struct {
	products []models.Product
}

// NewCatalogService creates a CatalogService over the built-in shop products
func NewCatalogService() *CatalogService {
	return &CatalogService{products: shopProducts}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// List returns the products matching filter in the requested order
func (s *CatalogService) List(filter models.ProductFilter) *models.ProductListResponse {
	matched := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if matchesCategory(p, filter.Category) && matchesAnyStyle(p, filter.Styles) {
			matched = append(matched, cloneProduct(p))
		}
	}

	switch filter.Sort {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortNewest:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].IsNew && !matched[j].IsNew })
	}

	log.Printf("✅ ListProducts: category=%q styles=%v sort=%q matched=%d", filter.Category, filter.Styles, filter.Sort, len(matched))
	return &models.ProductListResponse{
		Products:   matched,
		Categories: append([]string(nil), shopCategories...),
		Styles:     append([]string(nil), shopStyles...),
	}
}

// Featured returns the first products of the catalog for the landing page
func (s *CatalogService) Featured() []models.Product {
	n := featuredCount
	if n > len(s.products) {
		n = len(s.products)
	}
	out := make([]models.Product, 0, n)
	for _, p := range s.products[:n] {
		out = append(out, cloneProduct(p))
	}
	return out
}

// GetByID returns the product with id or ErrProductNotFound
func (s *CatalogService) GetByID(id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			out := cloneProduct(p)
			return &out, nil
		}
	}
	return nil, ErrProductNotFound
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == categoryAll || p.Category == category
}

func matchesAnyStyle(p models.Product, styles []string) bool {
	if len(styles) == 0 {
		return true
	}
	for _, style := range styles {
		for _, tag := range p.Tags {
			if tag == style {
				return true
			}
		}
	}
	return false
}

func cloneProduct(p models.Product) models.Product {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
