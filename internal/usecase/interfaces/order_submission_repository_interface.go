package interfaces

import (
	"context"
	"orcamento_bot/internal/domain/entities"
)

// IOrderSubmissionRepository persists the log of order submissions.
//
// GetByID returns a zero value (empty ID) and no error when nothing is found.
type IOrderSubmissionRepository interface {
	Create(ctx context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error)
	GetByID(ctx context.Context, id string) (entities.OrderSubmission, error)
	ListByChatID(ctx context.Context, chatID string) ([]entities.OrderSubmission, error)
	Update(ctx context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error)
}
