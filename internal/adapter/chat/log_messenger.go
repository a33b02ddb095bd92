package chat

import (
	"context"
	"log"

	"orcamento_bot/internal/usecase/interfaces"
)

// LogMessenger writes outbound messages to the log. It serves the webhook
// transport when no chat API is configured for replies.
type LogMessenger struct{}

var _ interfaces.IMessenger = LogMessenger{}

func (LogMessenger) SendText(_ context.Context, chatID, text string) error {
	log.Printf("[chat][log] send text chat_id=%s text=%q", chatID, text)
	return nil
}

func (LogMessenger) SendImage(_ context.Context, chatID, path, caption string) error {
	log.Printf("[chat][log] send image chat_id=%s path=%s caption=%q", chatID, path, caption)
	return nil
}
