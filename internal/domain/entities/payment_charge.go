package entities

import "encoding/json"

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentCharge is the Pix charge created for a submitted order.
//
// ProviderPayload keeps the provider response for traceability; the copy
// code and ticket URL are extracted from it when present.
type PaymentCharge struct {
	ProviderID      string          `json:"provider_id"`
	ProviderStatus  string          `json:"provider_status"`
	Status          PaymentStatus   `json:"status"`
	Amount          string          `json:"amount"`
	PixCopyCode     string          `json:"pix_copy_code,omitempty"`
	TicketURL       string          `json:"ticket_url,omitempty"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}
