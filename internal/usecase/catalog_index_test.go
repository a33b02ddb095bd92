package usecase

import (
	"encoding/json"
	"testing"

	"orcamento_bot/internal/domain/entities"
)

func TestBuildCatalogIndex(t *testing.T) {
	t.Run("heterogeneous records", func(t *testing.T) {
		ix := BuildCatalogIndex([]map[string]any{
			{"nome": "Milho Ensacado 25kg", "codigo": "MIL2515", "preco": 10.5},
			{"Descricao": "Arroz Tipo 1", "cod_produto": "ARZ1", "valor": "R$ 22,90"},
			{"produto": "Café Torrado", "id": json.Number("77")},
			{"preco": 5.0},
			{"nome": "   "},
		})
		if ix.Len() != 3 {
			t.Fatalf("expected 3 entries, got %d: %+v", ix.Len(), ix.Entries())
		}
		arroz := ix.Lookup("ARZ1")
		if arroz.Kind != entities.MatchUnique || arroz.Entry.Key != "ARROZ TIPO 1" || arroz.Entry.Price.StringFixed(2) != "22.90" {
			t.Fatalf("unexpected arroz match: %+v", arroz)
		}
		cafe := ix.Lookup("77")
		if cafe.Kind != entities.MatchUnique || cafe.Entry.Name != "Café Torrado" {
			t.Fatalf("expected id fallback code, got %+v", cafe)
		}
	})

	t.Run("later duplicates win", func(t *testing.T) {
		ix := BuildCatalogIndex([]map[string]any{
			{"nome": "Feijão", "codigo": "OLD"},
			{"nome": "FEIJAO", "codigo": "NEW"},
		})
		if ix.Len() != 1 {
			t.Fatalf("expected 1 entry, got %d", ix.Len())
		}
		if m := ix.Lookup("OLD"); m.Kind == entities.MatchUnique && m.Entry.Code == "OLD" {
			t.Fatalf("stale code must not resolve: %+v", m)
		}
		if m := ix.Lookup("NEW"); m.Kind != entities.MatchUnique || m.Entry.Name != "FEIJAO" {
			t.Fatalf("unexpected match: %+v", m)
		}
	})
}

func TestExtractCode(t *testing.T) {
	cases := []struct {
		name string
		rec  map[string]any
		want string
	}{
		{"exact beats contains", map[string]any{"codigo_barras": "789", "Code": "C1"}, "C1"},
		{"codigo beats cod", map[string]any{"cod_interno": "X", "codigo_sku": "Y"}, "Y"},
		{"cod beats id", map[string]any{"id": 10.0, "codfab": "F"}, "F"},
		{"id fallback", map[string]any{"id_produto": 42.0}, "42"},
		{"zero id ignored", map[string]any{"id": 0.0}, ""},
		{"nested object", map[string]any{"detalhes": map[string]any{"codigo": "N1"}}, "N1"},
		{"nested array", map[string]any{"variantes": []any{map[string]any{"x": 1.0}, map[string]any{"cod": "V2"}}}, "V2"},
		{"accented key", map[string]any{"Código": "AC1"}, "AC1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extractCode(c.rec); got != c.want {
				t.Fatalf("extractCode = %q, want %q", got, c.want)
			}
		})
	}

	t.Run("cyclic record", func(t *testing.T) {
		rec := map[string]any{"nome": "Loop"}
		rec["self"] = rec
		if got := extractCode(rec); got != "" {
			t.Fatalf("expected empty code, got %q", got)
		}
	})
}

func TestCatalogIndex_Lookup(t *testing.T) {
	ix := BuildCatalogIndex([]map[string]any{
		{"nome": "Milho Ensacado 25kg", "codigo": "MIL2515"},
		{"nome": "Milho Pipoca 500g", "codigo": "MIP500"},
		{"nome": "Feijão Carioca 1kg", "codigo": "FEI1"},
		{"nome": "Feijão Preto 1kg", "codigo": "FEI2"},
		{"nome": "Sal", "codigo": "S"},
		{"nome": "Ai", "codigo": "A1"},
	})

	t.Run("exact code and name", func(t *testing.T) {
		for _, e := range ix.Entries() {
			if m := ix.Lookup(e.Code); m.Kind != entities.MatchUnique || m.Entry.Key != e.Key {
				t.Fatalf("Lookup(code %q) = %+v", e.Code, m)
			}
			if m := ix.Lookup(e.Name); m.Kind != entities.MatchUnique || m.Entry.Key != e.Key {
				t.Fatalf("Lookup(name %q) = %+v", e.Name, m)
			}
		}
	})

	t.Run("accents and case ignored", func(t *testing.T) {
		if m := ix.Lookup("feijao preto 1KG"); m.Kind != entities.MatchUnique {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("substring unique", func(t *testing.T) {
		if m := ix.Lookup("pipoca"); m.Kind != entities.MatchUnique || m.Entry.Code != "MIP500" {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("query contains key", func(t *testing.T) {
		if m := ix.Lookup("quero milho pipoca 500g por favor"); m.Kind != entities.MatchUnique || m.Entry.Code != "MIP500" {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("token subset", func(t *testing.T) {
		m := ix.Lookup("Milho 25kg")
		if m.Kind != entities.MatchUnique || m.Entry.Key != "MILHO ENSACADO 25KG" {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		m := ix.Lookup("milho")
		if m.Kind != entities.MatchAmbiguous || len(m.Candidates) != 2 {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("short keys never match inside queries", func(t *testing.T) {
		if m := ix.Lookup("caixa"); m.Kind != entities.MatchNone {
			t.Fatalf("unexpected match: %+v", m)
		}
	})

	t.Run("no match", func(t *testing.T) {
		for _, q := range []string{"", " ", "x", "parafuso"} {
			if m := ix.Lookup(q); m.Kind != entities.MatchNone {
				t.Fatalf("Lookup(%q) = %+v", q, m)
			}
		}
	})

	t.Run("ambiguous list is capped", func(t *testing.T) {
		var recs []map[string]any
		for i := 0; i < 15; i++ {
			recs = append(recs, map[string]any{"nome": "Ração " + string(rune('A'+i))})
		}
		m := BuildCatalogIndex(recs).Lookup("racao")
		if m.Kind != entities.MatchAmbiguous || len(m.Candidates) != maxAmbiguousCandidates {
			t.Fatalf("unexpected match: kind=%s n=%d", m.Kind, len(m.Candidates))
		}
	})
}
