package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"void-apparel/models"
)

// MemoryOrderRepository keeps orders in process memory. Used when no database is configured.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	now    func() time.Time
}

// NewMemoryOrderRepository creates an empty MemoryOrderRepository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]models.Order),
		now:    time.Now,
	}
}

// Ensure MemoryOrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*MemoryOrderRepository)(nil)

func (r *MemoryOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	created := cloneOrder(*order)
	created.CreatedAt = r.now().UTC().Format(time.RFC3339)

	r.mu.Lock()
	r.orders[created.ID] = created
	r.mu.Unlock()

	out := cloneOrder(created)
	return &out, nil
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	order, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrOrderNotFound
	}
	out := cloneOrder(order)
	return &out, nil
}

func (r *MemoryOrderRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	r.mu.RLock()
	orders := []models.Order{}
	for _, order := range r.orders {
		if order.SessionID == sessionID {
			orders = append(orders, cloneOrder(order))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt == orders[j].CreatedAt {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

func cloneOrder(o models.Order) models.Order {
	out := o
	out.Lines = make([]models.OrderLine, len(o.Lines))
	for i, line := range o.Lines {
		line.Customization = line.Customization.Clone()
		out.Lines[i] = line
	}
	return out
}
