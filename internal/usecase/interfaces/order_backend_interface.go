package interfaces

import (
	"context"
	"orcamento_bot/internal/domain/entities"
)

// IOrderBackend is the external order and customer API.
type IOrderBackend interface {
	SubmitOrders(ctx context.Context, records []entities.OrderRecord) error
	UpsertCustomer(ctx context.Context, customer entities.CustomerRecord) error
}
