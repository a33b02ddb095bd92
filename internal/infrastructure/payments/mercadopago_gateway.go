package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"orcamento_bot/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

type MercadoPagoConfig struct {
	AccessToken string
	// Mock answers every charge locally with a pending Pix and a fake code.
	Mock bool
}

// MercadoPagoGateway creates Pix payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}
	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(token)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized sandbox=%t", strings.HasPrefix(token, "TEST-"))
	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, pixPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockPix(pixPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(pixPayload))

	var req payment.Request
	if err := json.Unmarshal(pixPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPix echoes the request and adds the fields a real Pix response
// carries, so the confirmation flow can be exercised offline.
func (g *MercadoPagoGateway) mockPix(pixPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(pixPayload) > 0 && json.Valid(pixPayload) {
		if err := json.Unmarshal(pixPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(pixPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "pending"
	resp["status_detail"] = "pending_waiting_transfer"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["point_of_interaction"] = map[string]any{
		"type": "PIX",
		"transaction_data": map[string]any{
			"qr_code":    fmt.Sprintf("00020126MOCKPIX%s", id),
			"ticket_url": fmt.Sprintf("https://mock.mercadopago.local/pix/%s", id),
		},
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=pending", id)
	return id, "pending", b, nil
}
