package interfaces

import (
	"context"
	"orcamento_bot/internal/domain/entities"
)

// ISessionRepository stores one conversation session per chat.
type ISessionRepository interface {
	Get(ctx context.Context, chatID string) (session entities.Session, found bool, err error)
	Save(ctx context.Context, session entities.Session) error
	Delete(ctx context.Context, chatID string) error
}
