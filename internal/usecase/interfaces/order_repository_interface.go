package interfaces

import (
	"context"
	"retail_assistant/internal/domain/entities"
)

// IOrderRepository persists confirmed orders.
//
// Save has at-least-once semantics: saving the same order twice overwrites it.
// GetByID returns a zero Order (empty ID) when the order does not exist.

type IOrderRepository interface {
	Save(ctx context.Context, o entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
