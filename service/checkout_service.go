package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"void-apparel/metrics"
	"void-apparel/models"
	"void-apparel/repository"
	"void-apparel/store"
	"void-apparel/utils"
)

// CheckoutService computes cart totals and turns a session cart into an order.
// Implements CheckoutServiceInterface
type CheckoutService struct {
	repository repository.OrderRepositoryInterface
	newID      func() string
}

// NewCheckoutService creates a CheckoutService persisting orders through repo
func NewCheckoutService(repo repository.OrderRepositoryInterface) *CheckoutService {
	return &CheckoutService{
		repository: repo,
		newID:      uuid.NewString,
	}
}

// Ensure CheckoutService implements CheckoutServiceInterface
var _ CheckoutServiceInterface = (*CheckoutService)(nil)

// Summary returns the active cart items (not saved for later) and their totals
func (s *CheckoutService) Summary(st *store.Store, shippingMethod string) (*models.CartSummary, error) {
	method := utils.NormalizeShippingMethod(shippingMethod)
	shipping, err := utils.CalculateShipping(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShippingMethod, method)
	}

	return summarize(activeItems(st.CartItems()), method, shipping), nil
}

func summarize(items []models.CartItem, method string, shipping int64) *models.CartSummary {
	summary := &models.CartSummary{
		Items:          items,
		ShippingMethod: method,
		Shipping:       shipping,
	}
	for _, item := range items {
		summary.ItemCount += item.Quantity
		summary.Subtotal += item.LineTotal()
	}
	summary.Total = summary.Subtotal + summary.Shipping

	summary.SubtotalFormatted = utils.FormatUSD(summary.Subtotal)
	summary.ShippingFormatted = utils.FormatUSD(summary.Shipping)
	summary.TotalFormatted = utils.FormatUSD(summary.Total)
	return summary
}

// PlaceOrder validates the checkout form, takes the active cart items out of the cart
// and persists an order for them. The items go back into the cart when persisting
// fails. Saved-for-later items stay in the cart.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, st *store.Store, req models.CheckoutRequest) (*models.Order, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	method := utils.NormalizeShippingMethod(req.ShippingMethod)
	shipping, err := utils.CalculateShipping(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShippingMethod, method)
	}

	items := st.TakeActiveItems()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	summary := summarize(items, method, shipping)

	order := &models.Order{
		ID:             s.newID(),
		SessionID:      sessionID,
		Status:         models.OrderStatusPlaced,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Address:        req.Address,
		City:           req.City,
		Zip:            req.Zip,
		ShippingMethod: summary.ShippingMethod,
		Lines:          make([]models.OrderLine, 0, len(summary.Items)),
		Subtotal:       summary.Subtotal,
		Shipping:       summary.Shipping,
		Total:          summary.Total,
	}
	for _, item := range summary.Items {
		order.Lines = append(order.Lines, models.OrderLine{
			CartItemID:    item.ID,
			Name:          item.Name,
			Customization: item.Customization,
			Quantity:      item.Quantity,
			UnitPrice:     item.Price,
			LineTotal:     item.LineTotal(),
			PreviewURL:    item.PreviewURL,
		})
	}

	created, err := s.repository.Create(ctx, order)
	if err != nil {
		st.RestoreCartItems(items)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	metrics.RecordOrder(created.Total)
	log.Printf("✅ PlaceOrder: Order %s placed for session %s, lines=%d, total=%s",
		created.ID, sessionID, len(created.Lines), utils.FormatUSD(created.Total))
	return created, nil
}

// GetOrder returns a placed order by id
func (s *CheckoutService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.repository.GetByID(ctx, id)
}

// ListOrders returns the orders placed by a session, newest first
func (s *CheckoutService) ListOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	orders, err := s.repository.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func activeItems(items []models.CartItem) []models.CartItem {
	active := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if !item.SavedForLater {
			active = append(active, item)
		}
	}
	return active
}
