package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/krobus00/order-splitter-service/internal/entity"
)

var (
	ErrDuplicateOrderID = errors.New("duplicate order id")
	ErrOrderNotFound    = errors.New("order not found")
)

// OrderLedgerRepository is an append-only in-memory store of completed
// orders, keyed by order ID. Entries are never updated or removed and the
// ledger clears on restart. FindAll enumerates in insertion order.
type OrderLedgerRepository struct {
	mu       sync.RWMutex
	orders   map[string]*entity.Order
	inserted []*entity.Order
}

func NewOrderLedgerRepository() *OrderLedgerRepository {
	return &OrderLedgerRepository{
		orders: make(map[string]*entity.Order),
	}
}

// Save inserts the order keyed by its ID. An ID collision fails with
// ErrDuplicateOrderID rather than overwriting; identities are generated
// fresh per order, so a collision is an invariant violation.
func (r *OrderLedgerRepository) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return ErrDuplicateOrderID
	}

	r.orders[order.ID] = order
	r.inserted = append(r.inserted, order)

	return nil
}

// FindAll returns every stored order in creation order. The returned slice
// is a snapshot; concurrent saves do not mutate it.
func (r *OrderLedgerRepository) FindAll(_ context.Context) []*entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entity.Order, len(r.inserted))
	copy(orders, r.inserted)

	return orders
}

func (r *OrderLedgerRepository) FindByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func (r *OrderLedgerRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.inserted)
}
