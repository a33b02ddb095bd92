package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultPollTimeout = 60

var ErrInvalidChatID = errors.New("invalid telegram chat id")

// botAPI is the subset of *tgbotapi.BotAPI the transport uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Inbound receives every text message read from Telegram.
type Inbound interface {
	Dispatch(msg entities.InboundMessage) error
}

// Transport is the Telegram chat transport: long-polls updates into the
// dispatcher and sends replies.
type Transport struct {
	api         botAPI
	pollTimeout int
}

var _ interfaces.IMessenger = (*Transport)(nil)

func New(token string) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	log.Printf("[chat][telegram] authorized username=%s", api.Self.UserName)
	return newTransport(api), nil
}

func newTransport(api botAPI) *Transport {
	return &Transport{api: api, pollTimeout: defaultPollTimeout}
}

// Run reads updates until ctx is done.
func (t *Transport) Run(ctx context.Context, inbound Inbound) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.pollTimeout
	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	log.Printf("[chat][telegram] ready")
	for {
		select {
		case <-ctx.Done():
			log.Printf("[chat][telegram] stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				log.Printf("[chat][telegram] updates channel closed")
				return nil
			}
			msg, ok := toInbound(update)
			if !ok {
				continue
			}
			if err := inbound.Dispatch(msg); err != nil {
				log.Printf("[chat][telegram] dispatch failed chat_id=%s err=%v", msg.ChatID, err)
			}
		}
	}
}

func (t *Transport) SendText(_ context.Context, chatID string, text string) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}
	if _, err := t.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
		return fmt.Errorf("telegram: send text chat_id=%s: %w", chatID, err)
	}
	return nil
}

func (t *Transport) SendImage(_ context.Context, chatID string, path string, caption string) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(id, tgbotapi.FilePath(path))
	photo.Caption = caption
	if _, err := t.api.Send(photo); err != nil {
		return fmt.Errorf("telegram: send image chat_id=%s path=%s: %w", chatID, path, err)
	}
	return nil
}

func toInbound(update tgbotapi.Update) (entities.InboundMessage, bool) {
	m := update.Message
	if m == nil || m.Chat == nil {
		return entities.InboundMessage{}, false
	}
	text := m.Text
	if text == "" {
		text = m.Caption
	}
	if strings.TrimSpace(text) == "" {
		return entities.InboundMessage{}, false
	}
	msg := entities.InboundMessage{
		ChatID:     strconv.FormatInt(m.Chat.ID, 10),
		Text:       text,
		ReceivedAt: m.Time(),
	}
	if m.From != nil {
		msg.SenderID = strconv.FormatInt(m.From.ID, 10)
	}
	if msg.ReceivedAt.IsZero() || m.Date == 0 {
		msg.ReceivedAt = time.Now()
	}
	return msg, true
}

func parseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChatID, chatID)
	}
	return id, nil
}
