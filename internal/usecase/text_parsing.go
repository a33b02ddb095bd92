package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const maxQuantity = 99999

var (
	leadingQuantity = regexp.MustCompile(`^(\d{1,5})\s+(.+)$`)
	leadingQtyX     = regexp.MustCompile(`(?i)^(\d{1,5})\s*x\s+(.+)$`)
	firstNumber     = regexp.MustCompile(`\d+`)
	nonDigits       = regexp.MustCompile(`\D`)

	// Words that mean the leading number is a measure, not a quantity.
	unitWords = map[string]bool{"KG": true, "KGS": true, "G": true, "GR": true, "L": true, "LT": true, "LTS": true, "ML": true}
)

// ParseQuantityAndItem splits "3 milho" or "3x milho" into (3, "milho").
// quantity is 0 when the text carries none; "25kg milho" and "10 kg milho"
// are item text.
func ParseQuantityAndItem(text string) (quantity int, itemText string) {
	text = strings.TrimSpace(text)
	m := leadingQtyX.FindStringSubmatch(text)
	if m == nil {
		m = leadingQuantity.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, text
	}
	rest := strings.TrimSpace(m[2])
	if f := strings.Fields(strings.ToUpper(rest)); len(f) > 0 && unitWords[f[0]] {
		return 0, text
	}
	q, err := strconv.Atoi(m[1])
	if err != nil || q <= 0 || rest == "" {
		return 0, text
	}
	return q, rest
}

// ParseQuantity reads the first run of digits. It returns 0 for input
// without a positive number.
func ParseQuantity(text string) int {
	s := firstNumber.FindString(text)
	if s == "" {
		return 0
	}
	q, err := strconv.Atoi(s)
	if err != nil || q <= 0 || q > maxQuantity {
		return 0
	}
	return q
}

// DigitsOnly drops every non-digit rune.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ParseBRLAmount parses "R$ 1.234,56", "1234,56" and "10.50".
func ParseBRLAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 3:
	default:
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
