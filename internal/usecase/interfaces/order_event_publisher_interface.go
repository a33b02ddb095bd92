package interfaces

import (
	"context"
	"orcamento_bot/internal/domain/entities"
)

// IOrderEventPublisher announces successful submissions to downstream consumers.
type IOrderEventPublisher interface {
	PublishOrderSubmitted(ctx context.Context, submission entities.OrderSubmission) error
}
