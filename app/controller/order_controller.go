package controller

import (
	"log"
	"net/http"

	"void-apparel/service"
)

// OrderController handles HTTP requests for placed orders
type OrderController struct {
	checkoutService service.CheckoutServiceInterface
	sessions        *SessionResolver
}

// NewOrderController creates a new OrderController
func NewOrderController(checkoutService service.CheckoutServiceInterface, sessions *SessionResolver) *OrderController {
	return &OrderController{
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// GetOrder handles GET /api/orders/{id}
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	const op = "GetOrder"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	order, err := c.checkoutService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, order)
}

// ListSessionOrders handles GET /api/session/orders
// Returns the orders placed by the current session, newest first
func (c *OrderController) ListSessionOrders(w http.ResponseWriter, r *http.Request) {
	const op = "ListSessionOrders"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	sessionID, _ := c.sessions.Resolve(w, r)

	orders, err := c.checkoutService.ListOrders(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, orders)
}
