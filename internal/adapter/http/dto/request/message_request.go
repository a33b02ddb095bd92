package request

import (
	"errors"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
)

var ErrInvalidMessage = errors.New("invalid inbound message")

// InboundMessageRequest is the webhook payload pushed by chat gateways that
// cannot be long-polled.
type InboundMessageRequest struct {
	ChatID     string     `json:"chat_id" binding:"required"`
	SenderID   string     `json:"sender_id"`
	Text       string     `json:"text" binding:"required"`
	ReceivedAt *time.Time `json:"received_at"`
}

func (r InboundMessageRequest) ToEntity(now time.Time) (entities.InboundMessage, error) {
	chatID := strings.TrimSpace(r.ChatID)
	text := strings.TrimSpace(r.Text)
	if chatID == "" || text == "" {
		return entities.InboundMessage{}, ErrInvalidMessage
	}
	msg := entities.InboundMessage{
		ChatID:     chatID,
		SenderID:   strings.TrimSpace(r.SenderID),
		Text:       text,
		ReceivedAt: now,
	}
	if r.ReceivedAt != nil && !r.ReceivedAt.IsZero() {
		msg.ReceivedAt = *r.ReceivedAt
	}
	return msg, nil
}
