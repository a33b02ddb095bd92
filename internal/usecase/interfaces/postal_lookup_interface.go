package interfaces

import (
	"context"
	"orcamento_bot/internal/domain/entities"
)

// IPostalLookup resolves an 8-digit postal code. found is false when the
// provider reports the code as unknown.
type IPostalLookup interface {
	LookupPostalCode(ctx context.Context, postalCode string) (addr entities.Address, found bool, err error)
}
