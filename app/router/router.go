package router

import (
	"net/http"

	"void-apparel/app/controller"
	"void-apparel/app/middleware"
	"void-apparel/metrics"
)

type Controllers struct {
	Preview *controller.PreviewController
	Catalog *controller.CatalogController
	Graphic *controller.GraphicController
	Session *controller.SessionController
	Cart    *controller.CartController
	Order   *controller.OrderController

	// PreviewLimiter guards the image-generation routes. Nil disables limiting.
	PreviewLimiter *middleware.RateLimiter
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Operational endpoints
	mux.HandleFunc("GET /ping", pingHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	// Stateless preview proxy
	mux.Handle("POST /api/generate-preview", controllers.PreviewLimiter.Handler(http.HandlerFunc(controllers.Preview.GeneratePreview)))

	// Shop catalog
	mux.HandleFunc("GET /api/products", controllers.Catalog.ListProducts)
	mux.HandleFunc("GET /api/products/featured", controllers.Catalog.FeaturedProducts)
	mux.HandleFunc("GET /api/products/{id}", controllers.Catalog.GetProduct)

	// Studio
	mux.HandleFunc("GET /api/studio/options", controllers.Catalog.StudioOptions)
	mux.HandleFunc("POST /api/graphics/upload", controllers.Graphic.UploadGraphic)

	// Session state
	mux.HandleFunc("GET /api/session", controllers.Session.GetSession)
	mux.HandleFunc("DELETE /api/session", controllers.Session.EndSession)
	mux.HandleFunc("PATCH /api/session/customization", controllers.Session.UpdateCustomization)
	mux.HandleFunc("POST /api/session/customization/reset", controllers.Session.ResetCustomization)
	mux.HandleFunc("PUT /api/session/ui", controllers.Session.UpdateUI)
	mux.Handle("POST /api/session/preview", controllers.PreviewLimiter.Handler(http.HandlerFunc(controllers.Preview.GenerateSessionPreview)))

	// Session graphics
	mux.HandleFunc("POST /api/session/graphics", controllers.Graphic.AddGraphic)
	mux.HandleFunc("POST /api/session/graphics/preset", controllers.Graphic.AddPresetGraphic)
	mux.HandleFunc("POST /api/session/graphics/upload", controllers.Graphic.UploadSessionGraphic)
	mux.HandleFunc("PATCH /api/session/graphics/{id}", controllers.Graphic.UpdateGraphic)
	mux.HandleFunc("DELETE /api/session/graphics/{id}", controllers.Graphic.RemoveGraphic)

	// Cart and checkout
	mux.HandleFunc("POST /api/session/cart", controllers.Cart.AddToCart)
	mux.HandleFunc("DELETE /api/session/cart", controllers.Cart.ClearCart)
	mux.HandleFunc("GET /api/session/cart/summary", controllers.Cart.Summary)
	mux.HandleFunc("PATCH /api/session/cart/{id}", controllers.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/session/cart/{id}", controllers.Cart.RemoveItem)
	mux.HandleFunc("POST /api/session/cart/{id}/save-for-later", controllers.Cart.SaveForLater)
	mux.HandleFunc("POST /api/session/checkout", controllers.Cart.Checkout)

	// Orders
	mux.HandleFunc("GET /api/orders/{id}", controllers.Order.GetOrder)
	mux.HandleFunc("GET /api/session/orders", controllers.Order.ListSessionOrders)
}
