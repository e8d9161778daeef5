package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"void-apparel/models"
	"void-apparel/repository"
	"void-apparel/store"
)

func validCheckout() models.CheckoutRequest {
	return models.CheckoutRequest{
		Email:          "raven@example.com",
		FirstName:      "Raven",
		LastName:       "Black",
		Address:        "13 Crypt Lane",
		City:           "Salem",
		Zip:            "01970",
		ShippingMethod: "express",
	}
}

func cartWithItems(t *testing.T) (*store.Store, models.CartItem, models.CartItem) {
	t.Helper()
	st := store.New()
	hoodie := st.AddToCart(models.CartItem{Name: "Void Black Hoodie", Customization: models.DefaultCustomization(), Quantity: 2, Price: 14500})
	tee := st.AddToCart(models.CartItem{Name: "Blood Red Tee", Customization: models.DefaultCustomization(), Quantity: 1, Price: 8500})
	return st, hoodie, tee
}

func TestCheckoutService_Summary(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	st, _, tee := cartWithItems(t)
	_, err := st.ToggleSaveForLater(tee.ID)
	require.NoError(t, err)

	summary, err := svc.Summary(st, "Overnight")
	require.NoError(t, err)

	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, "overnight", summary.ShippingMethod)
	assert.Equal(t, int64(29000), summary.Subtotal)
	assert.Equal(t, int64(4500), summary.Shipping)
	assert.Equal(t, int64(33500), summary.Total)
	assert.Equal(t, "$335.00", summary.TotalFormatted)
}

func TestCheckoutService_SummaryDefaultsToStandard(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	summary, err := svc.Summary(store.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "standard", summary.ShippingMethod)
	assert.Empty(t, summary.Items)
	assert.Equal(t, int64(0), summary.Total)
	assert.Equal(t, "$0.00", summary.TotalFormatted)
}

func TestCheckoutService_SummaryInvalidShipping(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	_, err := svc.Summary(store.New(), "teleport")
	assert.ErrorIs(t, err, ErrInvalidShippingMethod)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()
	svc := NewCheckoutService(repo)
	svc.newID = func() string { return "order-1" }
	st, hoodie, tee := cartWithItems(t)
	_, err := st.ToggleSaveForLater(tee.ID)
	require.NoError(t, err)

	order, err := svc.PlaceOrder(context.Background(), "session-1", st, validCheckout())
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "session-1", order.SessionID)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, "express", order.ShippingMethod)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, hoodie.ID, order.Lines[0].CartItemID)
	assert.Equal(t, int64(29000), order.Lines[0].LineTotal)
	assert.Equal(t, int64(29000), order.Subtotal)
	assert.Equal(t, int64(2500), order.Shipping)
	assert.Equal(t, int64(31500), order.Total)
	assert.NotEmpty(t, order.CreatedAt)

	// saved-for-later items stay in the cart
	remaining := st.CartItems()
	require.Len(t, remaining, 1)
	assert.Equal(t, tee.ID, remaining[0].ID)

	stored, err := svc.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
}

func TestCheckoutService_PlaceOrderValidation(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	st, _, _ := cartWithItems(t)

	req := validCheckout()
	req.Email = "not-an-email"
	req.FirstName = ""
	req.Zip = ""

	_, err := svc.PlaceOrder(context.Background(), "s", st, req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email: Invalid email", "firstName: Required", "zip: Required"}, verr.Issues)
	assert.Len(t, st.CartItems(), 2)
}

func TestCheckoutService_PlaceOrderEmptyCart(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	st := store.New()
	item := st.AddToCart(models.CartItem{Name: "x", Customization: models.DefaultCustomization(), Quantity: 1, Price: 8500})
	_, err := st.ToggleSaveForLater(item.ID)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), "s", st, validCheckout())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Len(t, st.CartItems(), 1)
}

type failingOrderRepo struct{ repository.OrderRepositoryInterface }

func (failingOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	return nil, errors.New("connection refused")
}

func TestCheckoutService_PlaceOrderRepositoryFailureKeepsCart(t *testing.T) {
	svc := NewCheckoutService(failingOrderRepo{})
	st, hoodie, tee := cartWithItems(t)

	_, err := svc.PlaceOrder(context.Background(), "s", st, validCheckout())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	items := st.CartItems()
	require.Len(t, items, 2)
	assert.Equal(t, hoodie.ID, items[0].ID)
	assert.Equal(t, tee.ID, items[1].ID)
}

// slowOrderRepo holds every Create long enough for checkouts to overlap
type slowOrderRepo struct {
	*repository.MemoryOrderRepository
}

func (r slowOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	time.Sleep(50 * time.Millisecond)
	return r.MemoryOrderRepository.Create(ctx, order)
}

func TestCheckoutService_ConcurrentCheckoutsOrderItemsOnce(t *testing.T) {
	repo := slowOrderRepo{repository.NewMemoryOrderRepository()}
	svc := NewCheckoutService(repo)
	st := store.New()
	st.AddToCart(models.CartItem{Name: "Void Black Hoodie", Customization: models.DefaultCustomization(), Quantity: 1, Price: 14500})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background(), "session-1", st, validCheckout())
		}(i)
	}
	wg.Wait()

	placed := 0
	for _, err := range errs {
		if err == nil {
			placed++
			continue
		}
		assert.ErrorIs(t, err, ErrEmptyCart)
	}
	assert.Equal(t, 1, placed)

	orders, err := svc.ListOrders(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Empty(t, st.CartItems())
}

func TestCheckoutService_GetOrderUnknown(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())
	_, err := svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestCheckoutService_ListOrders(t *testing.T) {
	svc := NewCheckoutService(repository.NewMemoryOrderRepository())

	orders, err := svc.ListOrders(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	st, _, _ := cartWithItems(t)
	placed, err := svc.PlaceOrder(context.Background(), "session-1", st, validCheckout())
	require.NoError(t, err)

	orders, err = svc.ListOrders(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
}
