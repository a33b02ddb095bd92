package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
	"orcamento_bot/pkg/locales"
)

const defaultImageInterval = 400 * time.Millisecond

var ErrSessionNotFound = errors.New("session not found")

// ISessionUseCase drives the per-chat ordering conversation.
type ISessionUseCase interface {
	// HandleMessage applies one customer message. Callers must serialize
	// calls per chat.
	HandleMessage(ctx context.Context, msg entities.InboundMessage) error
	Get(ctx context.Context, chatID string) (entities.Session, error)
	Reset(ctx context.Context, chatID string) error
}

type SessionConfig struct {
	Hours           BusinessHours
	CatalogImages   []string
	SiteURL         string
	QuestionsChatID string
	// ImageInterval spaces catalog images so the transport keeps order.
	ImageInterval time.Duration
}

type SessionUseCase struct {
	sessions  interfaces.ISessionRepository
	catalog   ICatalogUseCase
	address   IAddressUseCase
	orders    IOrderSubmissionUseCase
	messenger interfaces.IMessenger
	metrics   interfaces.IMetrics
	cfg       SessionConfig
	msgs      *locales.Messages

	now        func() time.Time
	fileExists func(path string) bool
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	sessions interfaces.ISessionRepository,
	catalog ICatalogUseCase,
	address IAddressUseCase,
	orders IOrderSubmissionUseCase,
	messenger interfaces.IMessenger,
	metrics interfaces.IMetrics,
	cfg SessionConfig,
) *SessionUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	if cfg.Hours.CloseHour == 0 && cfg.Hours.OpenHour == 0 {
		cfg.Hours = AlwaysOpen()
	}
	if cfg.ImageInterval <= 0 {
		cfg.ImageInterval = defaultImageInterval
	}
	return &SessionUseCase{
		sessions:   sessions,
		catalog:    catalog,
		address:    address,
		orders:     orders,
		messenger:  messenger,
		metrics:    metrics,
		cfg:        cfg,
		msgs:       locales.Get(),
		now:        time.Now,
		fileExists: fileExists,
	}
}

func (u *SessionUseCase) HandleMessage(ctx context.Context, msg entities.InboundMessage) error {
	current, found, err := u.sessions.Get(ctx, msg.ChatID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !found {
		current = entities.NewSession(msg.ChatID)
	}

	next := current.Clone()
	res, err := u.step(ctx, &next, msg)
	if err != nil {
		u.metrics.ObserveStepFailure(string(current.Stage))
		log.Printf("[session][usecase] step failed chat_id=%s stage=%s err=%v", msg.ChatID, current.Stage, err)
		return err
	}
	if ctx.Err() != nil && !res.committed {
		log.Printf("[session][usecase] step interrupted chat_id=%s stage=%s", msg.ChatID, current.Stage)
		return ctx.Err()
	}
	if res.committed {
		ctx = context.WithoutCancel(ctx)
	}

	next.UpdatedAt = u.now().UTC()
	if err := u.sessions.Save(ctx, next); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if current.Stage != next.Stage {
		log.Printf("[session][usecase] step chat_id=%s stage=%s next=%s", msg.ChatID, current.Stage, next.Stage)
	}
	return u.deliver(ctx, msg.ChatID, res.replies)
}

func (u *SessionUseCase) Get(ctx context.Context, chatID string) (entities.Session, error) {
	s, found, err := u.sessions.Get(ctx, chatID)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *SessionUseCase) Reset(ctx context.Context, chatID string) error {
	return u.sessions.Save(ctx, entities.NewSession(chatID))
}

// deliver sends replies in order and stops at the first transport error.
func (u *SessionUseCase) deliver(ctx context.Context, chatID string, replies []entities.Reply) error {
	for i, r := range replies {
		if r.ImagePath != "" {
			if i > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(u.cfg.ImageInterval):
				}
			}
			if err := u.messenger.SendImage(ctx, chatID, r.ImagePath, r.Text); err != nil {
				return fmt.Errorf("send image: %w", err)
			}
			continue
		}
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		if err := u.messenger.SendText(ctx, chatID, r.Text); err != nil {
			return fmt.Errorf("send text: %w", err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
