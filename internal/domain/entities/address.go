package entities

import "strings"

// Address is a postal-code lookup result. PostalCode holds only digits.
type Address struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Display renders "street, district, city - UF, CEP: 00000000", skipping empty parts.
func (a Address) Display() string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.District != "" {
		parts = append(parts, a.District)
	}
	var cityState []string
	if a.City != "" {
		cityState = append(cityState, a.City)
	}
	if a.State != "" {
		cityState = append(cityState, a.State)
	}
	if len(cityState) > 0 {
		parts = append(parts, strings.Join(cityState, " - "))
	}
	if a.PostalCode != "" {
		parts = append(parts, "CEP: "+a.PostalCode)
	}
	return strings.Join(parts, ", ")
}
