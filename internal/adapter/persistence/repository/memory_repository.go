package repository

import (
	"context"
	"sync"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps confirmed orders in process memory. Used when
// STORAGE_DRIVER=memory and in tests.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderMemoryRepository) Save(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return o.Clone(), nil
}

// ComplaintMemoryLog is the in-memory append-only complaint log.
type ComplaintMemoryLog struct {
	mu      sync.RWMutex
	records map[string]entities.ComplaintRecord
	order   []string
}

var _ interfaces.IComplaintLog = (*ComplaintMemoryLog)(nil)

func NewComplaintMemoryLog() *ComplaintMemoryLog {
	return &ComplaintMemoryLog{records: make(map[string]entities.ComplaintRecord)}
}

func (r *ComplaintMemoryLog) Append(_ context.Context, c entities.ComplaintRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[c.ID]; exists {
		return nil
	}
	r.records[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *ComplaintMemoryLog) GetByID(_ context.Context, id string) (entities.ComplaintRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

// All returns the log in append order.
func (r *ComplaintMemoryLog) All() []entities.ComplaintRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ComplaintRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out
}
