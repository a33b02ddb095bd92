package entities

// IntakeChannel identifies how an order reached the bot. The backend reads
// Origin and StatusLabel to decide how to triage imported orders; the
// interactive channel sends neither.
type IntakeChannel struct {
	Name        string `json:"name"`
	Origin      string `json:"origin,omitempty"`
	StatusLabel string `json:"status_label,omitempty"`
	// IncludePhone attaches the sender phone to every record.
	IncludePhone bool `json:"include_phone,omitempty"`
	// NormalizeProduct sends catalog-normalized product text.
	NormalizeProduct bool `json:"normalize_product,omitempty"`
}

var (
	ChannelInteractive = IntakeChannel{Name: "interactive"}
	ChannelReseller    = IntakeChannel{Name: "reseller", Origin: "vendedor", StatusLabel: "Em analise", NormalizeProduct: true}
	ChannelCustomer    = IntakeChannel{Name: "customer", Origin: "usuario", StatusLabel: "Em orçamento", IncludePhone: true}
)

// ChannelByName resolves a channel persisted by name.
func ChannelByName(name string) (IntakeChannel, bool) {
	for _, c := range []IntakeChannel{ChannelInteractive, ChannelReseller, ChannelCustomer} {
		if c.Name == name {
			return c, true
		}
	}
	return IntakeChannel{}, false
}

// OrderRecord is one line of the POST /pedido payload. Field names follow
// the backend contract.
type OrderRecord struct {
	PostalCode    *string `json:"cep"`
	Number        *string `json:"numero"`
	Complement    *string `json:"complemento"`
	District      *string `json:"bairro"`
	Street        *string `json:"logradouro"`
	City          *string `json:"cidade"`
	Name          *string `json:"nome"`
	Phone         *string `json:"telefone,omitempty"`
	Product       string  `json:"produto"`
	PaymentMethod *string `json:"metodo_pagamento"`
	Price         float64 `json:"preco"`
	Quantity      int     `json:"quantidade"`
	Origin        string  `json:"origem,omitempty"`
	StatusLabel   string  `json:"Status_pedprod,omitempty"`
}

// CustomerRecord is the POST /cadastro payload.
type CustomerRecord struct {
	Name       string  `json:"nome"`
	Phone      *string `json:"telefone"`
	PostalCode *string `json:"cep"`
	Number     *string `json:"numero"`
	Complement *string `json:"complemento"`
	Email      *string `json:"email"`
	Password   *string `json:"senha"`
}

// NullableString returns nil for blank strings so the backend receives null.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
