package interfaces

import "context"

// IHandoffRepository is the set of chats owned by a human operator.
//
// Add and Remove are idempotent and report whether the set changed.
type IHandoffRepository interface {
	Add(ctx context.Context, chatID string) (added bool, err error)
	Remove(ctx context.Context, chatID string) (removed bool, err error)
	Contains(ctx context.Context, chatID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
