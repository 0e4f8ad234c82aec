package interfaces

import (
	"context"
	"retail_assistant/internal/domain/entities"
)

// IComplaintLog is the append-only record of confirmed complaints.

type IComplaintLog interface {
	Append(ctx context.Context, r entities.ComplaintRecord) error
	GetByID(ctx context.Context, id string) (entities.ComplaintRecord, error)
}
