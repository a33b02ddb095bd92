package interfaces

import "context"

// IMessenger delivers outbound chat messages through the active transport.
type IMessenger interface {
	SendText(ctx context.Context, chatID string, text string) error
	SendImage(ctx context.Context, chatID string, path string, caption string) error
}
