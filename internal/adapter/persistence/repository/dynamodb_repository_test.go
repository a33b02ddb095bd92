package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamento_bot/internal/domain/entities"
)

func sampleSubmission(id, chatID string, created time.Time) entities.OrderSubmission {
	return entities.OrderSubmission{
		ID:           id,
		ChatID:       chatID,
		Channel:      entities.ChannelInteractive.Name,
		CustomerName: "Maria",
		Status:       entities.SubmissionStatusPendente,
		Records: []entities.OrderRecord{
			{PostalCode: entities.NullableString("01001000"), Number: entities.NullableString("10"), Name: entities.NullableString("Maria"), Product: "MILHO", Quantity: 2, Price: 10.5},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestOrderSubmissionDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		now := time.Date(2026, 3, 1, 12, 0, 0, 123, time.UTC)
		in := sampleSubmission("s-1", "chat-1", now)
		in.Payment = &entities.PaymentCharge{ProviderID: "p-1", Status: entities.PaymentStatusPendente, Amount: "21.00"}

		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.GetByID(ctx, "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "s-1" || got.ChatID != "chat-1" || got.CustomerName != "Maria" {
			t.Fatalf("unexpected submission: %+v", got)
		}
		if len(got.Records) != 1 || got.Records[0].Product != "MILHO" || got.Records[0].Quantity != 2 {
			t.Fatalf("unexpected records: %+v", got.Records)
		}
		if got.Payment == nil || got.Payment.ProviderID != "p-1" || got.Payment.Amount != "21.00" {
			t.Fatalf("unexpected payment: %+v", got.Payment)
		}
		if !got.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, got.CreatedAt)
		}
	})

	t.Run("duplicate create is rejected", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		s := sampleSubmission("s-1", "chat-1", time.Now())
		if _, err := repo.Create(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Create(ctx, s); err == nil {
			t.Fatalf("expected error on duplicate id")
		}
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		got, err := repo.GetByID(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("update changes status and attempts", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		s := sampleSubmission("s-1", "chat-1", time.Now())
		_, _ = repo.Create(ctx, s)

		s.Status = entities.SubmissionStatusFalhou
		s.Attempts = 2
		s.LastError = "backend down"
		got, err := repo.Update(ctx, s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SubmissionStatusFalhou || got.Attempts != 2 || got.LastError != "backend down" {
			t.Fatalf("unexpected update result: %+v", got)
		}
		stored, _ := repo.GetByID(ctx, "s-1")
		if stored.Attempts != 2 {
			t.Fatalf("expected stored attempts 2, got %d", stored.Attempts)
		}
	})

	t.Run("update of missing submission returns zero value", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		got, err := repo.Update(ctx, sampleSubmission("ghost", "chat-1", time.Now()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("list by chat newest first", func(t *testing.T) {
		repo := newOrderSubmissionDynamoRepository(newFakeDynamo("id"), "orders")
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, _ = repo.Create(ctx, sampleSubmission("old", "chat-1", base))
		_, _ = repo.Create(ctx, sampleSubmission("new", "chat-1", base.Add(time.Hour)))
		_, _ = repo.Create(ctx, sampleSubmission("other", "chat-2", base))

		got, err := repo.ListByChatID(ctx, "chat-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("client errors are returned", func(t *testing.T) {
		ddb := newFakeDynamo("id")
		ddb.err = errors.New("throttled")
		repo := newOrderSubmissionDynamoRepository(ddb, "orders")
		if _, err := repo.GetByID(ctx, "s-1"); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := repo.ListByChatID(ctx, "chat-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSessionDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := newSessionDynamoRepository(newFakeDynamo("chat_id"), "sessions")

	t.Run("missing session", func(t *testing.T) {
		_, found, err := repo.Get(ctx, "chat-1")
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})

	t.Run("save and get keeps the draft", func(t *testing.T) {
		s := entities.NewSession("chat-1")
		s.Stage = entities.StageCollectQuantity
		s.Draft.CustomerName = "Maria"
		s.Draft.Items = []entities.DraftItem{{Name: "MILHO", Quantity: 3}}
		s.PendingItem = &entities.PendingItem{Name: "SOJA", SuggestedQuantity: 2}
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, found, err := repo.Get(ctx, "chat-1")
		if err != nil || !found {
			t.Fatalf("expected session, got found=%v err=%v", found, err)
		}
		if got.Stage != entities.StageCollectQuantity || got.Draft.CustomerName != "Maria" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if len(got.Draft.Items) != 1 || got.Draft.Items[0].Quantity != 3 {
			t.Fatalf("unexpected items: %+v", got.Draft.Items)
		}
		if got.PendingItem == nil || got.PendingItem.SuggestedQuantity != 2 {
			t.Fatalf("unexpected pending item: %+v", got.PendingItem)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, "chat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, found, _ := repo.Get(ctx, "chat-1"); found {
			t.Fatalf("expected session deleted")
		}
	})
}

func TestHandoffDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := newHandoffDynamoRepository(newFakeDynamo("chat_id"), "handoffs")

	added, err := repo.Add(ctx, "5511999")
	if err != nil || !added {
		t.Fatalf("expected added, got added=%v err=%v", added, err)
	}
	added, err = repo.Add(ctx, "5511999")
	if err != nil || added {
		t.Fatalf("expected idempotent add, got added=%v err=%v", added, err)
	}
	_, _ = repo.Add(ctx, "5511888")

	ok, err := repo.Contains(ctx, "5511999")
	if err != nil || !ok {
		t.Fatalf("expected contains, got ok=%v err=%v", ok, err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0] != "5511888" || list[1] != "5511999" {
		t.Fatalf("unexpected list: %v", list)
	}

	removed, err := repo.Remove(ctx, "5511999")
	if err != nil || !removed {
		t.Fatalf("expected removed, got removed=%v err=%v", removed, err)
	}
	removed, err = repo.Remove(ctx, "5511999")
	if err != nil || removed {
		t.Fatalf("expected idempotent remove, got removed=%v err=%v", removed, err)
	}
}
