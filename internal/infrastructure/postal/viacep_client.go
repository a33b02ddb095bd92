package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

const DefaultViaCEPBaseURL = "https://viacep.com.br"

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	// ViaCEP answers unknown codes with 200 and {"erro": true}; older
	// deployments send the string "true".
	Erro any `json:"erro"`
}

// ViaCEPClient resolves Brazilian postal codes through ViaCEP.
type ViaCEPClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IPostalLookup = (*ViaCEPClient)(nil)

func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultViaCEPBaseURL
	}
	return &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *ViaCEPClient) LookupPostalCode(ctx context.Context, postalCode string) (entities.Address, bool, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Address{}, false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return entities.Address{}, false, nil
	case resp.StatusCode/100 != 2:
		return entities.Address{}, false, fmt.Errorf("viacep: status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, false, fmt.Errorf("viacep: decode: %w", err)
	}
	if isErro(body.Erro) {
		return entities.Address{}, false, nil
	}
	return entities.Address{
		PostalCode: postalCode,
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
	}, true, nil
}

func isErro(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	}
	return false
}
