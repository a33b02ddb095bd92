package repository

import (
	"context"
	"testing"
	"time"

	"orcamento_bot/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func openTestPebble(t *testing.T, dir string) *SessionPebbleRepository {
	t.Helper()
	repo, err := OpenSessionPebbleRepository(dir, true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return repo
}

func TestSessionPebbleRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("requires dir", func(t *testing.T) {
		if _, err := OpenSessionPebbleRepository("  ", false); err != ErrSessionStoreDirRequired {
			t.Fatalf("expected ErrSessionStoreDirRequired, got %v", err)
		}
	})

	t.Run("session survives reopen", func(t *testing.T) {
		dir := t.TempDir()
		repo := openTestPebble(t, dir)

		price := decimal.RequireFromString("10.50")
		updated := time.Date(2026, 3, 1, 12, 30, 0, 987654321, time.UTC)
		s := entities.NewSession("chat-1")
		s.Stage = entities.StageReviewSummary
		s.Draft.CustomerName = "João"
		s.Draft.Items = []entities.DraftItem{{Name: "MILHO", CatalogKey: "MILHO", Price: &price, Quantity: 2}}
		s.Draft.Address = &entities.Address{PostalCode: "01001000", City: "São Paulo"}
		s.UpdatedAt = updated
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := repo.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}

		reopened := openTestPebble(t, dir)
		t.Cleanup(func() { _ = reopened.Close() })

		got, found, err := reopened.Get(ctx, "chat-1")
		if err != nil || !found {
			t.Fatalf("expected session, got found=%v err=%v", found, err)
		}
		if got.Stage != entities.StageReviewSummary || got.Draft.CustomerName != "João" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if len(got.Draft.Items) != 1 || got.Draft.Items[0].Price == nil || !got.Draft.Items[0].Price.Equal(price) {
			t.Fatalf("unexpected items: %+v", got.Draft.Items)
		}
		if got.Draft.Address == nil || got.Draft.Address.City != "São Paulo" {
			t.Fatalf("unexpected address: %+v", got.Draft.Address)
		}
		if !got.UpdatedAt.Equal(updated) {
			t.Fatalf("expected updated_at %v, got %v", updated, got.UpdatedAt)
		}
	})

	t.Run("missing and deleted sessions", func(t *testing.T) {
		repo := openTestPebble(t, t.TempDir())
		t.Cleanup(func() { _ = repo.Close() })

		if _, found, err := repo.Get(ctx, "nobody"); err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
		_ = repo.Save(ctx, entities.NewSession("chat-2"))
		if err := repo.Delete(ctx, "chat-2"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, found, _ := repo.Get(ctx, "chat-2"); found {
			t.Fatalf("expected session deleted")
		}
	})

	t.Run("closed store", func(t *testing.T) {
		repo := openTestPebble(t, t.TempDir())
		_ = repo.Close()
		if _, _, err := repo.Get(ctx, "chat-1"); err != ErrSessionStoreClosed {
			t.Fatalf("expected ErrSessionStoreClosed, got %v", err)
		}
		if err := repo.Save(ctx, entities.NewSession("chat-1")); err != ErrSessionStoreClosed {
			t.Fatalf("expected ErrSessionStoreClosed, got %v", err)
		}
	})
}
