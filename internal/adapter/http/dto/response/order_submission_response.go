package response

import (
	"time"

	"orcamento_bot/internal/domain/entities"
)

type PaymentChargeResponse struct {
	ProviderID     string `json:"provider_id"`
	ProviderStatus string `json:"provider_status"`
	Status         string `json:"status"`
	Amount         string `json:"amount"`
	PixCopyCode    string `json:"pix_copy_code,omitempty"`
	TicketURL      string `json:"ticket_url,omitempty"`
}

type OrderSubmissionResponse struct {
	ID           string                 `json:"id"`
	ChatID       string                 `json:"chat_id"`
	Channel      string                 `json:"channel"`
	CustomerName string                 `json:"customer_name,omitempty"`
	Status       string                 `json:"status"`
	Attempts     int                    `json:"attempts"`
	LastError    string                 `json:"last_error,omitempty"`
	Records      []entities.OrderRecord `json:"records"`
	Payment      *PaymentChargeResponse `json:"payment,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func FromOrderSubmission(s entities.OrderSubmission) OrderSubmissionResponse {
	out := OrderSubmissionResponse{
		ID:           s.ID,
		ChatID:       s.ChatID,
		Channel:      s.Channel,
		CustomerName: s.CustomerName,
		Status:       string(s.Status),
		Attempts:     s.Attempts,
		LastError:    s.LastError,
		Records:      s.Records,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if out.Records == nil {
		out.Records = []entities.OrderRecord{}
	}
	if p := s.Payment; p != nil {
		out.Payment = &PaymentChargeResponse{
			ProviderID:     p.ProviderID,
			ProviderStatus: p.ProviderStatus,
			Status:         string(p.Status),
			Amount:         p.Amount,
			PixCopyCode:    p.PixCopyCode,
			TicketURL:      p.TicketURL,
		}
	}
	return out
}

func FromOrderSubmissions(list []entities.OrderSubmission) []OrderSubmissionResponse {
	out := make([]OrderSubmissionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromOrderSubmission(s))
	}
	return out
}
