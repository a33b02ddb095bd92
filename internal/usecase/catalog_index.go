package usecase

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"orcamento_bot/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	maxAmbiguousCandidates = 10
	// Keys shorter than this never match by "query contains key".
	minReverseMatchLen = 3
)

var (
	codeKeyExact = regexp.MustCompile(`^(codigo|cod|code)$`)
	idKey        = regexp.MustCompile(`^id(_|$)`)

	nameKeys  = []string{"Nome", "nome", "Name", "name", "Descricao", "descricao", "titulo", "Titulo"}
	priceKeys = []string{"preco", "Preco", "price", "Price", "valor", "Valor"}
)

// CatalogIndex is an immutable lookup structure over catalog records.
// Build a new one to refresh; never mutate a published index.
type CatalogIndex struct {
	entries []entities.CatalogEntry
	byKey   map[string]int
	byCode  map[string]int
}

// BuildCatalogIndex indexes raw records by normalized name and code.
// Records without any usable name are skipped; on duplicate names the
// later record wins.
func BuildCatalogIndex(records []map[string]any) *CatalogIndex {
	ix := &CatalogIndex{byKey: map[string]int{}, byCode: map[string]int{}}
	for _, rec := range records {
		name := extractName(rec)
		key := entities.NormalizeText(name)
		if key == "" {
			continue
		}
		entry := entities.CatalogEntry{
			Key:   key,
			Code:  entities.NormalizeText(extractCode(rec)),
			Name:  strings.TrimSpace(name),
			Price: extractPrice(rec),
			Raw:   rec,
		}
		if i, ok := ix.byKey[key]; ok {
			if old := ix.entries[i].Code; old != "" && ix.byCode[old] == i {
				delete(ix.byCode, old)
			}
			ix.entries[i] = entry
		} else {
			ix.entries = append(ix.entries, entry)
			ix.byKey[key] = len(ix.entries) - 1
		}
		if entry.Code != "" {
			ix.byCode[entry.Code] = ix.byKey[key]
		}
	}
	return ix
}

func (ix *CatalogIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

func (ix *CatalogIndex) Entries() []entities.CatalogEntry {
	if ix == nil {
		return nil
	}
	return append([]entities.CatalogEntry(nil), ix.entries...)
}

// Lookup resolves free text to a catalog entry: exact code, exact name,
// substring in either direction, then token containment.
func (ix *CatalogIndex) Lookup(query string) entities.CatalogMatch {
	q := entities.NormalizeText(query)
	if ix == nil || q == "" {
		return entities.NoMatch()
	}
	if i, ok := ix.byCode[q]; ok {
		return entities.UniqueMatch(ix.entries[i])
	}
	if i, ok := ix.byKey[q]; ok {
		return entities.UniqueMatch(ix.entries[i])
	}
	if len(q) < 2 {
		return entities.NoMatch()
	}

	var byName, byCode []int
	for i, e := range ix.entries {
		if containsEitherWay(e.Key, q) {
			byName = append(byName, i)
		}
		if e.Code != "" && containsEitherWay(e.Code, q) {
			byCode = append(byCode, i)
		}
	}
	switch {
	case len(byName) == 1:
		return entities.UniqueMatch(ix.entries[byName[0]])
	case len(byName) == 0 && len(byCode) == 1:
		return entities.UniqueMatch(ix.entries[byCode[0]])
	case len(byName)+len(byCode) > 0:
		return ix.ambiguous(append(byName, byCode...))
	}

	tokens := strings.Fields(q)
	var byTokens []int
	for i, e := range ix.entries {
		if containsAllTokens(e.Key, tokens) {
			byTokens = append(byTokens, i)
		}
	}
	switch len(byTokens) {
	case 0:
		return entities.NoMatch()
	case 1:
		return entities.UniqueMatch(ix.entries[byTokens[0]])
	default:
		return ix.ambiguous(byTokens)
	}
}

func (ix *CatalogIndex) ambiguous(idx []int) entities.CatalogMatch {
	seen := map[int]bool{}
	var out []entities.CatalogEntry
	for _, i := range idx {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, ix.entries[i])
		if len(out) == maxAmbiguousCandidates {
			break
		}
	}
	if len(out) == 1 {
		return entities.UniqueMatch(out[0])
	}
	return entities.AmbiguousMatches(out)
}

func containsEitherWay(candidate, q string) bool {
	if strings.Contains(candidate, q) {
		return true
	}
	return len(candidate) >= minReverseMatchLen && strings.Contains(q, candidate)
}

func containsAllTokens(key string, tokens []string) bool {
	have := map[string]bool{}
	for _, t := range strings.Fields(key) {
		have[t] = true
	}
	for _, t := range tokens {
		if !have[t] {
			return false
		}
	}
	return true
}

func extractName(rec map[string]any) string {
	for _, k := range nameKeys {
		if s, ok := rec[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	keys := sortedKeys(rec)
	for _, k := range keys {
		if isCodeLikeKey(k) {
			continue
		}
		if s, ok := rec[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func extractCode(rec map[string]any) string {
	return findCode(rec, map[uintptr]bool{})
}

var codeKeyPasses = []func(k string) bool{
	func(k string) bool { return codeKeyExact.MatchString(k) },
	func(k string) bool { return strings.Contains(k, "codigo") },
	func(k string) bool { return strings.Contains(k, "cod") },
	func(k string) bool { return idKey.MatchString(k) },
}

// findCode walks the record in pass order, then recurses into nested
// objects. visited guards against shared or cyclic maps.
func findCode(rec map[string]any, visited map[uintptr]bool) string {
	if len(rec) == 0 {
		return ""
	}
	ptr := reflect.ValueOf(rec).Pointer()
	if visited[ptr] {
		return ""
	}
	visited[ptr] = true

	keys := sortedKeys(rec)
	for _, pass := range codeKeyPasses {
		for _, k := range keys {
			if pass(normalizeKey(k)) {
				if v := scalarString(rec[k]); v != "" {
					return v
				}
			}
		}
	}
	for _, k := range keys {
		switch v := rec[k].(type) {
		case map[string]any:
			if c := findCode(v, visited); c != "" {
				return c
			}
		case []any:
			for _, el := range v {
				if m, ok := el.(map[string]any); ok {
					if c := findCode(m, visited); c != "" {
						return c
					}
				}
			}
		}
	}
	return ""
}

func isCodeLikeKey(k string) bool {
	nk := normalizeKey(k)
	for _, pass := range codeKeyPasses {
		if pass(nk) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(entities.NormalizeText(k))
}

// scalarString renders non-empty scalars; zero numbers count as empty.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		if t.String() == "0" {
			return ""
		}
		return t.String()
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	}
	return ""
}

func extractPrice(rec map[string]any) *decimal.Decimal {
	for _, k := range priceKeys {
		switch v := rec[k].(type) {
		case float64:
			d := decimal.NewFromFloat(v)
			return &d
		case json.Number:
			if d, err := decimal.NewFromString(v.String()); err == nil {
				return &d
			}
		case string:
			if d, ok := ParseBRLAmount(v); ok {
				return &d
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
