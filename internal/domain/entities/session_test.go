package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderDraft_MergeItem(t *testing.T) {
	t.Run("same catalog key sums quantity", func(t *testing.T) {
		var d OrderDraft
		d.MergeItem(DraftItem{Name: "MILHO ENSACADO 25KG", CatalogKey: "MILHO ENSACADO 25KG", Quantity: 2})
		got := d.MergeItem(DraftItem{Name: "Milho Ensacado 25kg", CatalogKey: "MILHO ENSACADO 25KG", Quantity: 3})
		if got != 5 || len(d.Items) != 1 || d.Items[0].Quantity != 5 {
			t.Fatalf("expected single line with qty 5, got %+v", d.Items)
		}
	})

	t.Run("free text matches by normalized name", func(t *testing.T) {
		var d OrderDraft
		d.MergeItem(DraftItem{Name: "ração de gato", Quantity: 1})
		d.MergeItem(DraftItem{Name: "RACAO  DE GATO", Quantity: 4})
		if len(d.Items) != 1 || d.Items[0].Quantity != 5 {
			t.Fatalf("expected merge by name, got %+v", d.Items)
		}
	})

	t.Run("late catalog match fills key and price", func(t *testing.T) {
		var d OrderDraft
		price := decimal.RequireFromString("10.5")
		d.MergeItem(DraftItem{Name: "ALPISTE", Quantity: 1})
		d.MergeItem(DraftItem{Name: "Alpiste", CatalogKey: "ALPISTE", Price: &price, Quantity: 1})
		if d.Items[0].CatalogKey != "ALPISTE" || d.Items[0].Price == nil {
			t.Fatalf("expected key and price filled, got %+v", d.Items[0])
		}
	})

	t.Run("different products stay apart", func(t *testing.T) {
		var d OrderDraft
		d.MergeItem(DraftItem{Name: "A", CatalogKey: "A", Quantity: 1})
		d.MergeItem(DraftItem{Name: "B", CatalogKey: "B", Quantity: 1})
		if len(d.Items) != 2 {
			t.Fatalf("expected 2 lines, got %+v", d.Items)
		}
	})
}

func TestOrderDraft_SetItem(t *testing.T) {
	var d OrderDraft
	d.MergeItem(DraftItem{Name: "A", CatalogKey: "A", Quantity: 4})
	d.SetItem(DraftItem{Name: "A", CatalogKey: "A", Quantity: 1})
	if d.Items[0].Quantity != 1 {
		t.Fatalf("expected replaced qty, got %d", d.Items[0].Quantity)
	}
}

func TestOrderDraft_SummaryAndTotals(t *testing.T) {
	p := decimal.RequireFromString("2.50")
	d := OrderDraft{Items: []DraftItem{
		{Name: "A", Price: &p, Quantity: 2},
		{Name: "B", Quantity: 3},
	}}
	if d.ItemSummary() != "1. 2 x A\n2. 3 x B" {
		t.Fatalf("unexpected summary: %q", d.ItemSummary())
	}
	if d.TotalQuantity() != 5 {
		t.Fatalf("expected 5, got %d", d.TotalQuantity())
	}
	if !d.Total().Equal(decimal.RequireFromString("5")) {
		t.Fatalf("expected total 5, got %s", d.Total())
	}
}

func TestOrderDraft_MissingFields(t *testing.T) {
	d := OrderDraft{}
	if len(d.MissingFields()) != 5 {
		t.Fatalf("expected 5 missing fields, got %v", d.MissingFields())
	}
	d = OrderDraft{
		CustomerName:  "Loja",
		Items:         []DraftItem{{Name: "A", Quantity: 1}},
		Address:       &Address{PostalCode: "01001000"},
		PaymentMethod: "Pix",
	}
	if m := d.MissingFields(); len(m) != 1 || m[0] != "número" {
		t.Fatalf("expected only the number missing, got %v", m)
	}
	d.Number = "  "
	if m := d.MissingFields(); len(m) != 1 {
		t.Fatalf("blank number must count as missing, got %v", m)
	}
	d.Number = "10"
	if m := d.MissingFields(); len(m) != 0 {
		t.Fatalf("expected complete draft, got %v", m)
	}
}

func TestOrderDraft_ComposeFullAddress(t *testing.T) {
	d := OrderDraft{
		Address:    &Address{PostalCode: "01001000", Street: "Praça da Sé", District: "Sé", City: "São Paulo", State: "SP"},
		Number:     "10",
		Complement: "Loja 2",
	}
	d.ComposeFullAddress()
	want := "Praça da Sé, Sé, São Paulo - SP, CEP: 01001000, Nº 10, Compl.: Loja 2"
	if d.FullAddress != want {
		t.Fatalf("expected %q, got %q", want, d.FullAddress)
	}
}

func TestSession_CloneAndReset(t *testing.T) {
	s := NewSession("chat-1")
	s.Stage = StageMoreItems
	s.Draft.MergeItem(DraftItem{Name: "A", Quantity: 1})
	s.PendingItem = &PendingItem{Name: "B"}

	c := s.Clone()
	c.Draft.Items[0].Quantity = 99
	c.PendingItem.Name = "changed"
	if s.Draft.Items[0].Quantity != 1 || s.PendingItem.Name != "B" {
		t.Fatalf("clone shares state with original")
	}

	s.Reset()
	if s.Stage != StageInit || len(s.Draft.Items) != 0 || s.PendingItem != nil || s.ChatID != "chat-1" {
		t.Fatalf("unexpected reset session: %+v", s)
	}
}
