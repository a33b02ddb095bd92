package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the position of a chat in the ordering conversation.
type Stage string

const (
	StageInit              Stage = "init"
	StageMainMenu          Stage = "main_menu"
	StageFAQ               Stage = "faq"
	StageQuestion          Stage = "question"
	StageClosing           Stage = "closing"
	StageCollectName       Stage = "collect_name"
	StageCollectItem       Stage = "collect_item"
	StageChooseItem        Stage = "choose_item"
	StageConfirmItem       Stage = "confirm_item"
	StageCollectQuantity   Stage = "collect_quantity"
	StageMoreItems         Stage = "more_items"
	StageCollectPostalCode Stage = "collect_postal_code"
	StageConfirmAddress    Stage = "confirm_address"
	StageCollectNumber     Stage = "collect_number"
	StageCollectComplement Stage = "collect_complement"
	StageCollectPayment    Stage = "collect_payment"
	StageReviewSummary     Stage = "review_summary"
	StageDone              Stage = "done"
)

// DeliveryChartered is the only delivery mode offered to customers.
const DeliveryChartered = "Fretado"

// DraftItem is one line of the order draft. CatalogKey is empty for
// free-text items that did not match the catalog.
type DraftItem struct {
	Name       string           `json:"name"`
	CatalogKey string           `json:"catalog_key,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Quantity   int              `json:"quantity"`
}

// PendingItem is the item being confirmed before its quantity is known.
type PendingItem struct {
	Name              string           `json:"name"`
	CatalogKey        string           `json:"catalog_key,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	SuggestedQuantity int              `json:"suggested_quantity,omitempty"`
}

func (p PendingItem) DraftItem(quantity int) DraftItem {
	return DraftItem{Name: p.Name, CatalogKey: p.CatalogKey, Price: p.Price, Quantity: quantity}
}

// OrderDraft accumulates what the customer has told the bot so far.
type OrderDraft struct {
	CustomerName     string      `json:"customer_name,omitempty"`
	Items            []DraftItem `json:"items,omitempty"`
	Address          *Address    `json:"address,omitempty"`
	Number           string      `json:"number,omitempty"`
	Complement       string      `json:"complement,omitempty"`
	FullAddress      string      `json:"full_address,omitempty"`
	Delivery         string      `json:"delivery,omitempty"`
	PaymentMethod    string      `json:"payment_method,omitempty"`
	LastPostalLookup *Address    `json:"last_postal_lookup,omitempty"`
}

// findItem returns the index of the line matching item by catalog key,
// then by normalized name, or -1.
func (d *OrderDraft) findItem(item DraftItem) int {
	if item.CatalogKey != "" {
		for i, it := range d.Items {
			if it.CatalogKey != "" && it.CatalogKey == item.CatalogKey {
				return i
			}
		}
	}
	name := NormalizeText(item.Name)
	for i, it := range d.Items {
		if NormalizeText(it.Name) == name {
			return i
		}
	}
	return -1
}

// MergeItem adds item to the draft, summing quantities with an existing
// line for the same product. It returns the resulting line quantity.
func (d *OrderDraft) MergeItem(item DraftItem) int {
	if i := d.findItem(item); i >= 0 {
		d.Items[i].Quantity += item.Quantity
		d.fillFrom(i, item)
		return d.Items[i].Quantity
	}
	d.Items = append(d.Items, item)
	return item.Quantity
}

// SetItem replaces the quantity of the matching line, appending when absent.
func (d *OrderDraft) SetItem(item DraftItem) int {
	if i := d.findItem(item); i >= 0 {
		d.Items[i].Quantity = item.Quantity
		d.fillFrom(i, item)
		return item.Quantity
	}
	d.Items = append(d.Items, item)
	return item.Quantity
}

func (d *OrderDraft) fillFrom(i int, item DraftItem) {
	if d.Items[i].CatalogKey == "" && item.CatalogKey != "" {
		d.Items[i].CatalogKey = item.CatalogKey
	}
	if d.Items[i].Price == nil && item.Price != nil {
		d.Items[i].Price = item.Price
	}
}

// ItemSummary renders the numbered "qty x name" lines.
func (d OrderDraft) ItemSummary() string {
	lines := make([]string, 0, len(d.Items))
	for i, it := range d.Items {
		lines = append(lines, fmt.Sprintf("%d. %d x %s", i+1, it.Quantity, it.Name))
	}
	return strings.Join(lines, "\n")
}

func (d OrderDraft) TotalQuantity() int {
	total := 0
	for _, it := range d.Items {
		total += it.Quantity
	}
	return total
}

// Total sums price x quantity of the lines with a known price.
func (d OrderDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		if it.Price == nil {
			continue
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// MissingFields lists the fields still required before submission.
func (d OrderDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.CustomerName) == "" {
		missing = append(missing, "nome")
	}
	if len(d.Items) == 0 {
		missing = append(missing, "itens")
	}
	if d.Address == nil || d.Address.PostalCode == "" {
		missing = append(missing, "endereço")
	}
	if strings.TrimSpace(d.Number) == "" {
		missing = append(missing, "número")
	}
	if strings.TrimSpace(d.PaymentMethod) == "" {
		missing = append(missing, "pagamento")
	}
	return missing
}

// ComposeFullAddress joins the confirmed address with number and complement.
func (d *OrderDraft) ComposeFullAddress() {
	var parts []string
	if d.Address != nil {
		if base := d.Address.Display(); base != "" {
			parts = append(parts, base)
		}
	}
	if d.Number != "" {
		parts = append(parts, "Nº "+d.Number)
	}
	if d.Complement != "" {
		parts = append(parts, "Compl.: "+d.Complement)
	}
	d.FullAddress = strings.Join(parts, ", ")
}

// Session is the per-chat conversation state. It is owned by one chat
// worker at a time and persisted between messages.
type Session struct {
	ChatID          string         `json:"chat_id"`
	Stage           Stage          `json:"stage"`
	Draft           OrderDraft     `json:"draft"`
	PendingItem     *PendingItem   `json:"pending_item,omitempty"`
	Candidates      []CatalogEntry `json:"candidates,omitempty"`
	ReturnToSummary bool           `json:"return_to_summary,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func NewSession(chatID string) Session {
	return Session{ChatID: chatID, Stage: StageInit, UpdatedAt: time.Now().UTC()}
}

// Reset clears the draft and every transient field and returns to Init.
func (s *Session) Reset() {
	*s = Session{ChatID: s.ChatID, Stage: StageInit, UpdatedAt: time.Now().UTC()}
}

// Clone returns a deep copy so a failed step cannot leak partial changes.
func (s Session) Clone() Session {
	out := s
	if s.Draft.Items != nil {
		out.Draft.Items = append([]DraftItem(nil), s.Draft.Items...)
	}
	if s.Draft.Address != nil {
		a := *s.Draft.Address
		out.Draft.Address = &a
	}
	if s.Draft.LastPostalLookup != nil {
		a := *s.Draft.LastPostalLookup
		out.Draft.LastPostalLookup = &a
	}
	if s.PendingItem != nil {
		p := *s.PendingItem
		out.PendingItem = &p
	}
	if s.Candidates != nil {
		out.Candidates = append([]CatalogEntry(nil), s.Candidates...)
	}
	return out
}
