package interfaces

import "context"

// IChatQueue runs work on the single owner of a chat, after any work already
// queued for it.
type IChatQueue interface {
	Enqueue(chatID string, job func(ctx context.Context)) error
}
