package entities

import "time"

// SubmissionStatus is the lifecycle of an order submission to the backend.
type SubmissionStatus string

const (
	SubmissionStatusPendente SubmissionStatus = "pendente"
	SubmissionStatusEnviado  SubmissionStatus = "enviado"
	SubmissionStatusFalhou   SubmissionStatus = "falhou"
)

// OrderSubmission records one attempt to hand an order to the backend.
//
// A failed submission is never retried automatically; operators resubmit
// it explicitly through the admin API.
type OrderSubmission struct {
	ID           string           `json:"id"`
	ChatID       string           `json:"chat_id"`
	Channel      string           `json:"channel"`
	CustomerName string           `json:"customer_name"`
	Records      []OrderRecord    `json:"records"`
	Status       SubmissionStatus `json:"status"`
	Attempts     int              `json:"attempts"`
	LastError    string           `json:"last_error,omitempty"`
	Payment      *PaymentCharge   `json:"payment,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
