package chat

import (
	"context"
	"errors"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/internal/usecase/interfaces"
)

const (
	defaultQueueSize   = 32
	defaultIdleTimeout = 10 * time.Minute
)

var (
	ErrDispatcherClosed = errors.New("dispatcher closed")
	ErrChatQueueFull    = errors.New("chat queue full")
	ErrEmptyChatID      = errors.New("empty chat id")
)

// interruptWords cancel the step in flight for the chat before being queued.
var interruptWords = map[string]bool{"MENU": true, "CANCELAR": true, "CANCEL": true}

type DispatcherConfig struct {
	QueueSize   int
	IdleTimeout time.Duration
}

// Dispatcher owns one worker goroutine per chat. Jobs for the same chat run
// in arrival order; different chats run concurrently.
type Dispatcher struct {
	conversation usecase.IConversationUseCase
	cfg          DispatcherConfig

	baseCtx context.Context
	stop    context.CancelFunc

	mu      sync.Mutex
	workers map[string]*worker
	closed  bool
	wg      sync.WaitGroup
}

type worker struct {
	chatID string
	jobs   chan func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
}

var _ interfaces.IChatQueue = (*Dispatcher)(nil)

func NewDispatcher(conversation usecase.IConversationUseCase, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Dispatcher{
		conversation: conversation,
		cfg:          cfg,
		baseCtx:      ctx,
		stop:         stop,
		workers:      map[string]*worker{},
	}
}

// Dispatch queues an inbound message on its chat's worker. Interrupt words
// cancel whatever that worker is running first.
func (d *Dispatcher) Dispatch(msg entities.InboundMessage) error {
	if IsInterrupt(msg.Text) {
		d.interrupt(msg.ChatID)
	}
	return d.Enqueue(msg.ChatID, func(ctx context.Context) {
		if err := d.conversation.HandleInbound(ctx, msg); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[chat][dispatcher] handle failed chat_id=%s err=%v", msg.ChatID, err)
		}
	})
}

func (d *Dispatcher) Enqueue(chatID string, job func(ctx context.Context)) error {
	if strings.TrimSpace(chatID) == "" {
		return ErrEmptyChatID
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDispatcherClosed
	}
	w, ok := d.workers[chatID]
	if !ok {
		w = &worker{chatID: chatID, jobs: make(chan func(ctx context.Context), d.cfg.QueueSize)}
		d.workers[chatID] = w
		d.wg.Add(1)
		go d.run(w)
	}
	select {
	case w.jobs <- job:
		return nil
	default:
		log.Printf("[chat][dispatcher] queue full chat_id=%s size=%d", chatID, d.cfg.QueueSize)
		return ErrChatQueueFull
	}
}

// Workers returns the number of live chat workers.
func (d *Dispatcher) Workers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.workers)
}

// Close stops accepting work, lets queued jobs drain and waits for the
// workers until ctx is done. Jobs still running when ctx expires are
// cancelled.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, w := range d.workers {
			close(w.jobs)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		d.stop()
		return nil
	case <-ctx.Done():
		d.stop()
		<-done
		return ctx.Err()
	}
}

func (d *Dispatcher) interrupt(chatID string) {
	d.mu.Lock()
	w := d.workers[chatID]
	d.mu.Unlock()
	if w == nil {
		return
	}
	w.mu.Lock()
	if w.cancel != nil {
		log.Printf("[chat][dispatcher] interrupting step chat_id=%s", chatID)
		w.cancel()
	}
	w.mu.Unlock()
}

func (d *Dispatcher) run(w *worker) {
	defer d.wg.Done()
	idle := time.NewTimer(d.cfg.IdleTimeout)
	defer idle.Stop()

	for {
		select {
		case job, ok := <-w.jobs:
			if !ok {
				return
			}
			d.exec(w, job)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(d.cfg.IdleTimeout)
		case <-idle.C:
			if d.retire(w) {
				return
			}
			idle.Reset(d.cfg.IdleTimeout)
		}
	}
}

// retire removes an idle worker. Sends happen under d.mu, so an empty
// queue seen here stays empty.
func (d *Dispatcher) retire(w *worker) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || len(w.jobs) > 0 {
		return false
	}
	delete(d.workers, w.chatID)
	return true
}

func (d *Dispatcher) exec(w *worker, job func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(d.baseCtx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.cancel = nil
		w.mu.Unlock()
		cancel()
		if r := recover(); r != nil {
			log.Printf("[chat][dispatcher] job panic chat_id=%s err=%v\n%s", w.chatID, r, debug.Stack())
		}
	}()
	job(ctx)
}

// IsInterrupt reports whether text is a command that abandons the current step.
func IsInterrupt(text string) bool {
	return interruptWords[entities.NormalizeText(text)]
}
