package usecase

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"orcamento_bot/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrImportedOrderNoItems = errors.New("imported order has no items")

const (
	resellerMarker = "NOVO ORCAMENTO, VENDEDOR"
	customerMarker = "NOVO ORCAMENTO, USUARIO"
)

var (
	itemSectionStart = regexp.MustCompile(`(?i)^(item|itens):?$`)
	itemSectionEnd   = regexp.MustCompile(`(?i)^(total:|---|endereço:|endereco:|entrega:|pagamento:)`)
	numberedLine     = regexp.MustCompile(`^\d+\.`)
	linePrice        = regexp.MustCompile(`(?i)R\$\s*([0-9.,]+)`)
	lineQuantity     = regexp.MustCompile(`(?i)^(\d+)\s*x\s+`)
	lineEnumerator   = regexp.MustCompile(`^\d+\.?\s*`)
	parenthesized    = regexp.MustCompile(`\(.*?\)`)
	importedCEP      = regexp.MustCompile(`(?i)CEP[:\s]*([0-9]{5}-?[0-9]{3})`)
	importedNumber   = regexp.MustCompile(`(?i)\bN(?:º|°|o\b\.?)\s*[:\.]?\s*([^,\n]+)`)
	importedCompl    = regexp.MustCompile(`(?i)\bCompl(?:emento)?\.?\s*[:\.]?\s*([^,\n]+)`)
)

// ImportedItem is one parsed line of an imported order.
type ImportedItem struct {
	Name     string
	Quantity int
	Price    *decimal.Decimal
}

// ImportedOrder is a forwarded order report parsed into fields.
type ImportedOrder struct {
	ChatID        string
	SenderPhone   string
	Channel       entities.IntakeChannel
	CustomerName  string
	Items         []ImportedItem
	AddressText   string
	PostalCode    string
	Number        string
	Complement    string
	Delivery      string
	PaymentMethod string
	// Address is filled from the postal lookup when the code resolves.
	Address *entities.Address
}

// DetectIntakeChannel reports which imported channel the marker at the top
// of text names. Accents and case are ignored.
func DetectIntakeChannel(text string) (entities.IntakeChannel, bool) {
	norm := entities.NormalizeText(text)
	switch {
	case strings.HasPrefix(norm, resellerMarker):
		return entities.ChannelReseller, true
	case strings.HasPrefix(norm, customerMarker):
		return entities.ChannelCustomer, true
	}
	return entities.IntakeChannel{}, false
}

// ParseImportedOrder extracts labeled fields, items and address parts.
// The returned order has no Address; resolving the postal code is up to
// the caller.
func ParseImportedOrder(text string, channel entities.IntakeChannel) (ImportedOrder, error) {
	lines := splitLines(text)
	order := ImportedOrder{
		Channel:       channel,
		SenderPhone:   DigitsOnly(labeledValue(lines, "De")),
		CustomerName:  labeledValue(lines, "Nome"),
		AddressText:   labeledValue(lines, "Endereço", "Endereco"),
		Delivery:      labeledValue(lines, "Entrega"),
		PaymentMethod: labeledValue(lines, "Pagamento"),
	}

	for _, line := range itemLines(lines) {
		if item, ok := parseImportedItem(line); ok {
			order.Items = append(order.Items, item)
		}
	}
	if len(order.Items) == 0 {
		return order, ErrImportedOrderNoItems
	}

	if m := importedCEP.FindStringSubmatch(order.AddressText); m != nil {
		order.PostalCode = DigitsOnly(m[1])
	} else if m := importedCEP.FindStringSubmatch(text); m != nil {
		order.PostalCode = DigitsOnly(m[1])
	}
	if m := importedNumber.FindStringSubmatch(order.AddressText); m != nil {
		order.Number = strings.TrimSpace(m[1])
	}
	if m := importedCompl.FindStringSubmatch(order.AddressText); m != nil {
		order.Complement = strings.TrimSpace(m[1])
	}
	return order, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// labeledValue returns the value of the first "Label: value" line.
func labeledValue(lines []string, labels ...string) string {
	for _, label := range labels {
		re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(label) + `:\s*(.+)$`)
		for _, l := range lines {
			if m := re.FindStringSubmatch(l); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}

// itemLines returns the "Itens:" section, or every numbered line when the
// report has no such section.
func itemLines(lines []string) []string {
	start := -1
	for i, l := range lines {
		if itemSectionStart.MatchString(l) {
			start = i + 1
			break
		}
	}
	var out []string
	if start >= 0 {
		for _, l := range lines[start:] {
			if itemSectionEnd.MatchString(l) {
				break
			}
			out = append(out, l)
		}
		if len(out) > 0 {
			return out
		}
	}
	for _, l := range lines {
		if numberedLine.MatchString(l) {
			out = append(out, l)
		}
	}
	return out
}

func parseImportedItem(line string) (ImportedItem, bool) {
	item := ImportedItem{Quantity: 1}
	if m := linePrice.FindStringSubmatch(line); m != nil {
		if d, ok := ParseBRLAmount(strings.TrimRight(m[1], ".,")); ok {
			item.Price = &d
		}
	}

	rest := line
	m := lineQuantity.FindStringSubmatch(rest)
	if m == nil {
		rest = lineEnumerator.ReplaceAllString(rest, "")
		m = lineQuantity.FindStringSubmatch(rest)
	}
	if m != nil {
		if q, err := strconv.Atoi(m[1]); err == nil && q > 0 {
			item.Quantity = q
		}
		rest = rest[len(m[0]):]
	}

	rest = parenthesized.ReplaceAllString(rest, "")
	rest = linePrice.ReplaceAllString(rest, "")
	rest = strings.Trim(strings.Join(strings.Fields(rest), " "), " -:")
	if rest == "" {
		return ImportedItem{}, false
	}
	item.Name = rest
	return item, true
}
