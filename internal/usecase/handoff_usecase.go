package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
	"orcamento_bot/pkg/locales"
)

var ErrInvalidHandoffTarget = errors.New("invalid handoff target")

var (
	handoffCommand = regexp.MustCompile(`(?i)^!handoff(?:\s+(.+))?$`)
	botCommand     = regexp.MustCompile(`(?i)^!bot(?:\s+(.+))?$`)
	chatIDPattern  = regexp.MustCompile(`^-?\d+$`)
)

// IHandoffUseCase tracks which chats a human operator owns. While a chat is
// handed off the bot stays silent for it.
type IHandoffUseCase interface {
	StartHandoff(ctx context.Context, chatID string) (started bool, err error)
	EndHandoff(ctx context.Context, chatID string) (ended bool, err error)
	IsHandedOff(ctx context.Context, chatID string) (bool, error)
	List(ctx context.Context) ([]string, error)
	// HandleCommand consumes "!handoff" and "!bot" commands. handled is
	// false when msg is not a command.
	HandleCommand(ctx context.Context, msg entities.InboundMessage) (handled bool, err error)
}

type HandoffConfig struct {
	// CommandChatID is the ops chat allowed to issue commands.
	CommandChatID string
	// Operators are sender ids allowed to issue commands from any chat.
	Operators []string
}

type HandoffUseCase struct {
	repo      interfaces.IHandoffRepository
	sessions  interfaces.ISessionRepository
	queue     interfaces.IChatQueue
	messenger interfaces.IMessenger
	metrics   interfaces.IMetrics
	cfg       HandoffConfig
	operators map[string]struct{}
	msgs      *locales.Messages
}

var _ IHandoffUseCase = (*HandoffUseCase)(nil)

func NewHandoffUseCase(
	repo interfaces.IHandoffRepository,
	sessions interfaces.ISessionRepository,
	messenger interfaces.IMessenger,
	metrics interfaces.IMetrics,
	cfg HandoffConfig,
) *HandoffUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	ops := make(map[string]struct{}, len(cfg.Operators))
	for _, id := range cfg.Operators {
		if id = strings.TrimSpace(id); id != "" {
			ops[id] = struct{}{}
		}
	}
	return &HandoffUseCase{
		repo:      repo,
		sessions:  sessions,
		messenger: messenger,
		metrics:   metrics,
		cfg:       cfg,
		operators: ops,
		msgs:      locales.Get(),
	}
}

// SetQueue routes session resets through the chat's worker so they never
// race with a step in flight.
func (u *HandoffUseCase) SetQueue(q interfaces.IChatQueue) {
	u.queue = q
}

// NormalizeChatID accepts digits with an optional leading '-' (group chats)
// after dropping spaces, '+' and punctuation.
func NormalizeChatID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	neg := strings.HasPrefix(raw, "-")
	d := DigitsOnly(raw)
	if d == "" {
		return "", ErrInvalidHandoffTarget
	}
	if neg {
		d = "-" + d
	}
	if !chatIDPattern.MatchString(d) {
		return "", ErrInvalidHandoffTarget
	}
	return d, nil
}

func (u *HandoffUseCase) StartHandoff(ctx context.Context, chatID string) (bool, error) {
	added, err := u.repo.Add(ctx, chatID)
	if err != nil {
		return false, fmt.Errorf("add handoff: %w", err)
	}
	u.refreshGauge(ctx)
	if added {
		log.Printf("[handoff][usecase] started chat_id=%s", chatID)
		u.notify(ctx, chatID, u.msgs.Handoff.Started)
	}
	return added, nil
}

// EndHandoff returns the chat to the bot. The session always restarts from
// Init, even when the chat was not handed off.
func (u *HandoffUseCase) EndHandoff(ctx context.Context, chatID string) (bool, error) {
	removed, err := u.repo.Remove(ctx, chatID)
	if err != nil {
		return false, fmt.Errorf("remove handoff: %w", err)
	}
	u.refreshGauge(ctx)
	u.resetSession(ctx, chatID)
	if removed {
		log.Printf("[handoff][usecase] ended chat_id=%s", chatID)
		u.notify(ctx, chatID, u.msgs.Handoff.Ended)
	}
	return removed, nil
}

func (u *HandoffUseCase) IsHandedOff(ctx context.Context, chatID string) (bool, error) {
	return u.repo.Contains(ctx, chatID)
}

func (u *HandoffUseCase) List(ctx context.Context) ([]string, error) {
	ids, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (u *HandoffUseCase) HandleCommand(ctx context.Context, msg entities.InboundMessage) (bool, error) {
	text := strings.TrimSpace(msg.Text)
	start := true
	m := handoffCommand.FindStringSubmatch(text)
	if m == nil {
		start = false
		m = botCommand.FindStringSubmatch(text)
	}
	if m == nil {
		return false, nil
	}
	if !u.authorized(msg) {
		log.Printf("[handoff][usecase] unauthorized command chat_id=%s sender=%s", msg.ChatID, msg.SenderID)
		return true, nil
	}

	usage := u.msgs.Handoff.BotUsage
	if start {
		usage = u.msgs.Handoff.HandoffUsage
	}
	target := msg.ChatID
	if arg := strings.TrimSpace(m[1]); arg != "" {
		id, err := NormalizeChatID(arg)
		if err != nil {
			return true, u.reply(ctx, msg.ChatID, usage)
		}
		target = id
	}

	if start {
		added, err := u.StartHandoff(ctx, target)
		if err != nil {
			return true, err
		}
		tpl := u.msgs.Handoff.OperatorStarted
		if !added {
			tpl = u.msgs.Handoff.OperatorAlready
		}
		return true, u.reply(ctx, msg.ChatID, fmt.Sprintf(tpl, target))
	}

	removed, err := u.EndHandoff(ctx, target)
	if err != nil {
		return true, err
	}
	tpl := u.msgs.Handoff.OperatorEnded
	if !removed {
		tpl = u.msgs.Handoff.OperatorNotActive
	}
	return true, u.reply(ctx, msg.ChatID, fmt.Sprintf(tpl, target))
}

// IsOpsChat reports whether chatID is the command chat.
func (u *HandoffUseCase) IsOpsChat(chatID string) bool {
	return u.cfg.CommandChatID != "" && chatID == u.cfg.CommandChatID
}

func (u *HandoffUseCase) authorized(msg entities.InboundMessage) bool {
	if u.IsOpsChat(msg.ChatID) {
		return true
	}
	_, ok := u.operators[msg.SenderID]
	return ok
}

func (u *HandoffUseCase) resetSession(ctx context.Context, chatID string) {
	if u.sessions == nil {
		return
	}
	reset := func(ctx context.Context) {
		if err := u.sessions.Save(ctx, entities.NewSession(chatID)); err != nil {
			log.Printf("[handoff][usecase] session reset failed chat_id=%s err=%v", chatID, err)
		}
	}
	if u.queue == nil {
		reset(ctx)
		return
	}
	if err := u.queue.Enqueue(chatID, reset); err != nil {
		log.Printf("[handoff][usecase] enqueue reset failed chat_id=%s err=%v", chatID, err)
		reset(ctx)
	}
}

func (u *HandoffUseCase) refreshGauge(ctx context.Context) {
	ids, err := u.repo.List(ctx)
	if err != nil {
		return
	}
	u.metrics.SetActiveHandoffs(len(ids))
}

func (u *HandoffUseCase) notify(ctx context.Context, chatID, text string) {
	if err := u.messenger.SendText(ctx, chatID, text); err != nil {
		log.Printf("[handoff][usecase] notify failed chat_id=%s err=%v", chatID, err)
	}
}

func (u *HandoffUseCase) reply(ctx context.Context, chatID, text string) error {
	if err := u.messenger.SendText(ctx, chatID, text); err != nil {
		return fmt.Errorf("send handoff reply: %w", err)
	}
	return nil
}
