package usecase

import (
	"context"
	"sync"

	"orcamento_bot/internal/domain/entities"
)

type sentMessage struct {
	ChatID string
	Text   string
	Image  string
}

// recordingMessenger keeps every outbound message in order.
type recordingMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (m *recordingMessenger) SendText(_ context.Context, chatID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{ChatID: chatID, Text: text})
	return m.err
}

func (m *recordingMessenger) SendImage(_ context.Context, chatID, path, caption string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{ChatID: chatID, Image: path, Text: caption})
	return m.err
}

func (m *recordingMessenger) textsTo(chatID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, s := range m.sent {
		if s.ChatID == chatID && s.Image == "" {
			out = append(out, s.Text)
		}
	}
	return out
}

func (m *recordingMessenger) reset() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}

type memorySessions struct {
	mu   sync.Mutex
	data map[string]entities.Session
	err  error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{data: map[string]entities.Session{}}
}

func (r *memorySessions) Get(_ context.Context, chatID string) (entities.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return entities.Session{}, false, r.err
	}
	s, ok := r.data[chatID]
	return s.Clone(), ok, nil
}

func (r *memorySessions) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.data[s.ChatID] = s.Clone()
	return nil
}

func (r *memorySessions) Delete(_ context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, chatID)
	return nil
}

type memoryHandoffs struct {
	mu  sync.Mutex
	set map[string]struct{}
}

func newMemoryHandoffs() *memoryHandoffs {
	return &memoryHandoffs{set: map[string]struct{}{}}
}

func (r *memoryHandoffs) Add(_ context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.set[chatID]; ok {
		return false, nil
	}
	r.set[chatID] = struct{}{}
	return true, nil
}

func (r *memoryHandoffs) Remove(_ context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.set[chatID]; !ok {
		return false, nil
	}
	delete(r.set, chatID)
	return true, nil
}

func (r *memoryHandoffs) Contains(_ context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.set[chatID]
	return ok, nil
}

func (r *memoryHandoffs) List(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.set))
	for id := range r.set {
		out = append(out, id)
	}
	return out, nil
}

type countingMetrics struct {
	mu          sync.Mutex
	inbound     map[string]int
	dropped     map[string]int
	failures    map[string]int
	submissions map[string]int
	lookups     map[string]int
	catalogSize int
	handoffs    int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		inbound:     map[string]int{},
		dropped:     map[string]int{},
		failures:    map[string]int{},
		submissions: map[string]int{},
		lookups:     map[string]int{},
	}
}

func (m *countingMetrics) ObserveInbound(kind string) {
	m.mu.Lock()
	m.inbound[kind]++
	m.mu.Unlock()
}

func (m *countingMetrics) ObserveDropped(reason string) {
	m.mu.Lock()
	m.dropped[reason]++
	m.mu.Unlock()
}

func (m *countingMetrics) ObserveStepFailure(stage string) {
	m.mu.Lock()
	m.failures[stage]++
	m.mu.Unlock()
}

func (m *countingMetrics) ObserveSubmission(channel string, ok bool) {
	key := channel + ":fail"
	if ok {
		key = channel + ":ok"
	}
	m.mu.Lock()
	m.submissions[key]++
	m.mu.Unlock()
}

func (m *countingMetrics) ObservePostalLookup(result string) {
	m.mu.Lock()
	m.lookups[result]++
	m.mu.Unlock()
}

func (m *countingMetrics) SetCatalogSize(n int) {
	m.mu.Lock()
	m.catalogSize = n
	m.mu.Unlock()
}

func (m *countingMetrics) SetActiveHandoffs(n int) {
	m.mu.Lock()
	m.handoffs = n
	m.mu.Unlock()
}
