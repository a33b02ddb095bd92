package response

import (
	"time"

	"orcamento_bot/internal/domain/entities"
)

type DraftItemResponse struct {
	Name       string  `json:"name"`
	CatalogKey string  `json:"catalog_key,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      *string `json:"price,omitempty"`
}

type SessionResponse struct {
	ChatID          string              `json:"chat_id"`
	Stage           string              `json:"stage"`
	CustomerName    string              `json:"customer_name,omitempty"`
	Items           []DraftItemResponse `json:"items"`
	Address         *entities.Address   `json:"address,omitempty"`
	Number          string              `json:"number,omitempty"`
	Complement      string              `json:"complement,omitempty"`
	FullAddress     string              `json:"full_address,omitempty"`
	Delivery        string              `json:"delivery,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	Total           string              `json:"total"`
	MissingFields   []string            `json:"missing_fields"`
	ReturnToSummary bool                `json:"return_to_summary"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromSession(s entities.Session) SessionResponse {
	items := make([]DraftItemResponse, 0, len(s.Draft.Items))
	for _, it := range s.Draft.Items {
		item := DraftItemResponse{Name: it.Name, CatalogKey: it.CatalogKey, Quantity: it.Quantity}
		if it.Price != nil {
			p := it.Price.StringFixed(2)
			item.Price = &p
		}
		items = append(items, item)
	}
	missing := s.Draft.MissingFields()
	if missing == nil {
		missing = []string{}
	}
	return SessionResponse{
		ChatID:          s.ChatID,
		Stage:           string(s.Stage),
		CustomerName:    s.Draft.CustomerName,
		Items:           items,
		Address:         s.Draft.Address,
		Number:          s.Draft.Number,
		Complement:      s.Draft.Complement,
		FullAddress:     s.Draft.FullAddress,
		Delivery:        s.Draft.Delivery,
		PaymentMethod:   s.Draft.PaymentMethod,
		Total:           s.Draft.Total().StringFixed(2),
		MissingFields:   missing,
		ReturnToSummary: s.ReturnToSummary,
		UpdatedAt:       s.UpdatedAt,
	}
}
