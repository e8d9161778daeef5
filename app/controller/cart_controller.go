package controller

import (
	"log"
	"net/http"

	"void-apparel/metrics"
	"void-apparel/models"
	"void-apparel/service"
)

// CartController handles HTTP requests for the session cart and checkout
type CartController struct {
	studioService   service.StudioServiceInterface
	checkoutService service.CheckoutServiceInterface
	sessions        *SessionResolver
}

// NewCartController creates a new CartController
func NewCartController(studioService service.StudioServiceInterface, checkoutService service.CheckoutServiceInterface, sessions *SessionResolver) *CartController {
	return &CartController{
		studioService:   studioService,
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// AddToCart handles POST /api/session/cart
// Adds the session's current design as a new cart item
func (c *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "AddToCart"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)
	writeJSON(w, op, http.StatusCreated, c.studioService.AddCurrentDesignToCart(st))
}

// UpdateQuantity handles PATCH /api/session/cart/{id}
// Example body: {"quantity": 3}
func (c *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "UpdateQuantity"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	_, st := c.sessions.Resolve(w, r)

	var req models.UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, op, err)
		return
	}

	item, err := st.UpdateQuantity(id, req.Quantity)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	metrics.RecordCartOperation("update_quantity")
	writeJSON(w, op, http.StatusOK, item)
}

// SaveForLater handles POST /api/session/cart/{id}/save-for-later
// Toggles the saved-for-later flag
func (c *CartController) SaveForLater(w http.ResponseWriter, r *http.Request) {
	const op = "SaveForLater"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	_, st := c.sessions.Resolve(w, r)

	item, err := st.ToggleSaveForLater(id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	metrics.RecordCartOperation("save_for_later")
	writeJSON(w, op, http.StatusOK, item)
}

// RemoveItem handles DELETE /api/session/cart/{id}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "RemoveItem"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	_, st := c.sessions.Resolve(w, r)

	if err := st.RemoveFromCart(id); err != nil {
		writeServiceError(w, op, err)
		return
	}
	metrics.RecordCartOperation("remove")
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart handles DELETE /api/session/cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "ClearCart"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)
	st.ClearCart()
	metrics.RecordCartOperation("clear")
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/session/cart/summary?shipping=express
func (c *CartController) Summary(w http.ResponseWriter, r *http.Request) {
	const op = "CartSummary"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.String())

	_, st := c.sessions.Resolve(w, r)

	summary, err := c.checkoutService.Summary(st, r.URL.Query().Get("shipping"))
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, summary)
}

// Checkout handles POST /api/session/checkout
// Places an order for the active cart items
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	const op = "Checkout"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	sessionID, st := c.sessions.Resolve(w, r)

	var req models.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, op, err)
		return
	}

	order, err := c.checkoutService.PlaceOrder(r.Context(), sessionID, st, req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	log.Printf("✅ %s: Order %s placed", op, order.ID)
	writeJSON(w, op, http.StatusCreated, order)
}
