package entities

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CatalogEntry is one product of the external catalog.
//
// Key and Code are stored normalized (see NormalizeText); Name keeps the
// original text for display.
type CatalogEntry struct {
	Key   string           `json:"key"`
	Code  string           `json:"code,omitempty"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price,omitempty"`

	Raw map[string]any `json:"-"`
}

type MatchKind string

const (
	MatchNone      MatchKind = "none"
	MatchUnique    MatchKind = "unique"
	MatchAmbiguous MatchKind = "ambiguous"
)

// CatalogMatch is the result of a catalog lookup. Entry is set only for
// MatchUnique; Candidates only for MatchAmbiguous.
type CatalogMatch struct {
	Kind       MatchKind
	Entry      CatalogEntry
	Candidates []CatalogEntry
}

func NoMatch() CatalogMatch { return CatalogMatch{Kind: MatchNone} }

func UniqueMatch(e CatalogEntry) CatalogMatch {
	return CatalogMatch{Kind: MatchUnique, Entry: e}
}

func AmbiguousMatches(candidates []CatalogEntry) CatalogMatch {
	return CatalogMatch{Kind: MatchAmbiguous, Candidates: candidates}
}

// NormalizeText uppercases, strips diacritics and collapses whitespace.
// It is used for every comparison against catalog keys and codes.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToUpper(stripped)), " ")
}
