package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"orcamento_bot/internal/domain/entities"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	s := entities.NewSession("chat-1")
	s.Draft.Items = []entities.DraftItem{{Name: "MILHO", Quantity: 1}}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Draft.Items[0].Quantity = 99

	got, found, err := repo.Get(ctx, "chat-1")
	if err != nil || !found {
		t.Fatalf("expected session, got found=%v err=%v", found, err)
	}
	if got.Draft.Items[0].Quantity != 1 {
		t.Fatalf("stored session shares memory with caller: %+v", got.Draft.Items)
	}

	_ = repo.Delete(ctx, "chat-1")
	if _, found, _ := repo.Get(ctx, "chat-1"); found {
		t.Fatalf("expected session deleted")
	}
}

func TestMemoryHandoffRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryHandoffRepository()

	var wg sync.WaitGroup
	var mu sync.Mutex
	addedCount := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if added, _ := repo.Add(ctx, "chat-1"); added {
				mu.Lock()
				addedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if addedCount != 1 {
		t.Fatalf("expected exactly one add to win, got %d", addedCount)
	}

	_, _ = repo.Add(ctx, "chat-0")
	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0] != "chat-0" {
		t.Fatalf("unexpected list: %v", list)
	}
	if removed, _ := repo.Remove(ctx, "chat-1"); !removed {
		t.Fatalf("expected removed")
	}
	if removed, _ := repo.Remove(ctx, "chat-1"); removed {
		t.Fatalf("expected second remove to be a no-op")
	}
	if ok, _ := repo.Contains(ctx, "chat-1"); ok {
		t.Fatalf("expected chat-1 released")
	}
}

func TestMemoryOrderSubmissionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderSubmissionRepository()
	now := time.Now()

	_, _ = repo.Create(ctx, sampleSubmission("a", "chat-1", now))
	_, _ = repo.Create(ctx, sampleSubmission("b", "chat-2", now))
	_, _ = repo.Create(ctx, sampleSubmission("c", "chat-1", now))

	list, _ := repo.ListByChatID(ctx, "chat-1")
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "a" {
		t.Fatalf("unexpected list: %+v", list)
	}

	s := list[0]
	s.Status = entities.SubmissionStatusEnviado
	if got, _ := repo.Update(ctx, s); got.Status != entities.SubmissionStatusEnviado {
		t.Fatalf("unexpected update: %+v", got)
	}
	if got, _ := repo.Update(ctx, sampleSubmission("ghost", "chat-1", now)); got.ID != "" {
		t.Fatalf("expected zero value for missing submission, got %+v", got)
	}
	if got, _ := repo.GetByID(ctx, "missing"); got.ID != "" {
		t.Fatalf("expected zero value, got %+v", got)
	}
}
