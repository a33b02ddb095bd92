package repository

import (
	"context"
	"sort"
	"sync"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

// MemorySessionRepository is the default session store for a single
// process. Sessions are lost on restart.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ interfaces.ISessionRepository = (*MemorySessionRepository)(nil)

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: map[string]entities.Session{}}
}

func (r *MemorySessionRepository) Get(_ context.Context, chatID string) (entities.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[chatID]
	if !ok {
		return entities.Session{}, false, nil
	}
	return s.Clone(), true, nil
}

func (r *MemorySessionRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ChatID] = s.Clone()
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
	return nil
}

type MemoryHandoffRepository struct {
	mu    sync.RWMutex
	chats map[string]struct{}
}

var _ interfaces.IHandoffRepository = (*MemoryHandoffRepository)(nil)

func NewMemoryHandoffRepository() *MemoryHandoffRepository {
	return &MemoryHandoffRepository{chats: map[string]struct{}{}}
}

func (r *MemoryHandoffRepository) Add(_ context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chats[chatID]; ok {
		return false, nil
	}
	r.chats[chatID] = struct{}{}
	return true, nil
}

func (r *MemoryHandoffRepository) Remove(_ context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chats[chatID]; !ok {
		return false, nil
	}
	delete(r.chats, chatID)
	return true, nil
}

func (r *MemoryHandoffRepository) Contains(_ context.Context, chatID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.chats[chatID]
	return ok, nil
}

func (r *MemoryHandoffRepository) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.chats))
	for id := range r.chats {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// MemoryOrderSubmissionRepository keeps the submission log in memory.
type MemoryOrderSubmissionRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.OrderSubmission
	order []string
}

var _ interfaces.IOrderSubmissionRepository = (*MemoryOrderSubmissionRepository)(nil)

func NewMemoryOrderSubmissionRepository() *MemoryOrderSubmissionRepository {
	return &MemoryOrderSubmissionRepository{byID: map[string]entities.OrderSubmission{}}
}

func (r *MemoryOrderSubmissionRepository) Create(_ context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *MemoryOrderSubmissionRepository) GetByID(_ context.Context, id string) (entities.OrderSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// ListByChatID returns the newest submissions first.
func (r *MemoryOrderSubmissionRepository) ListByChatID(_ context.Context, chatID string) ([]entities.OrderSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.OrderSubmission
	for i := len(r.order) - 1; i >= 0; i-- {
		if s := r.byID[r.order[i]]; s.ChatID == chatID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemoryOrderSubmissionRepository) Update(_ context.Context, s entities.OrderSubmission) (entities.OrderSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return entities.OrderSubmission{}, nil
	}
	r.byID[s.ID] = s
	return s, nil
}
