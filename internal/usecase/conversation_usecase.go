package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"strings"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

var ErrMessagePanic = errors.New("message handler panicked")

// IConversationUseCase is the single entry point for inbound chat messages.
type IConversationUseCase interface {
	HandleInbound(ctx context.Context, msg entities.InboundMessage) error
}

type ConversationUseCase struct {
	handoff  IHandoffUseCase
	imported IImportedOrderUseCase
	sessions ISessionUseCase
	metrics  interfaces.IMetrics
	opsChats map[string]struct{}
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

// NewConversationUseCase routes messages. Non-command messages from
// opsChats are ignored so ops channels never get a menu.
func NewConversationUseCase(
	handoff IHandoffUseCase,
	imported IImportedOrderUseCase,
	sessions ISessionUseCase,
	metrics interfaces.IMetrics,
	opsChats ...string,
) *ConversationUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	ops := map[string]struct{}{}
	for _, id := range opsChats {
		if id = strings.TrimSpace(id); id != "" {
			ops[id] = struct{}{}
		}
	}
	return &ConversationUseCase{
		handoff:  handoff,
		imported: imported,
		sessions: sessions,
		metrics:  metrics,
		opsChats: ops,
	}
}

func (u *ConversationUseCase) HandleInbound(ctx context.Context, msg entities.InboundMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[conversation][usecase] panic chat_id=%s err=%v\n%s", msg.ChatID, r, debug.Stack())
			u.metrics.ObserveStepFailure("panic")
			err = fmt.Errorf("%w: %v", ErrMessagePanic, r)
		}
	}()

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		u.metrics.ObserveInbound("empty")
		return nil
	}
	msg.Text = text

	handled, err := u.handoff.HandleCommand(ctx, msg)
	if err != nil {
		return err
	}
	if handled {
		u.metrics.ObserveInbound("command")
		return nil
	}
	if _, ok := u.opsChats[msg.ChatID]; ok {
		u.metrics.ObserveInbound("ops")
		return nil
	}

	inHandoff, err := u.handoff.IsHandedOff(ctx, msg.ChatID)
	if err != nil {
		return fmt.Errorf("check handoff: %w", err)
	}
	if inHandoff {
		u.metrics.ObserveDropped("handoff")
		return nil
	}

	if u.imported != nil {
		if channel, ok := u.imported.Detect(text); ok {
			u.metrics.ObserveInbound("imported")
			return u.imported.Handle(ctx, msg, channel)
		}
	}

	u.metrics.ObserveInbound("conversation")
	return u.sessions.HandleMessage(ctx, msg)
}
