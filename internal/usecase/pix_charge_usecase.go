package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrInvalidChargeAmount            = errors.New("invalid charge amount")
	ErrInvalidChargeSubmission        = errors.New("invalid charge submission")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPixChargeUseCase creates a Pix charge for a submitted order.
type IPixChargeUseCase interface {
	CreateCharge(ctx context.Context, submission entities.OrderSubmission, amount decimal.Decimal) (entities.PaymentCharge, error)
}

type PixChargeUseCase struct {
	gateway    interfaces.IPaymentGateway
	payerEmail string
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(gateway interfaces.IPaymentGateway, payerEmail string) *PixChargeUseCase {
	return &PixChargeUseCase{gateway: gateway, payerEmail: strings.TrimSpace(payerEmail)}
}

// IsPixPayment reports whether the customer chose Pix.
func IsPixPayment(method string) bool {
	return strings.Contains(entities.NormalizeText(method), "PIX")
}

func (u *PixChargeUseCase) CreateCharge(ctx context.Context, submission entities.OrderSubmission, amount decimal.Decimal) (entities.PaymentCharge, error) {
	log.Printf("[payment][usecase] pix charge start submission_id=%s amount=%s", submission.ID, amount.StringFixed(2))
	if strings.TrimSpace(submission.ID) == "" {
		return entities.PaymentCharge{}, ErrInvalidChargeSubmission
	}
	if !amount.IsPositive() {
		log.Printf("[payment][usecase] invalid amount submission_id=%s amount=%s", submission.ID, amount.String())
		return entities.PaymentCharge{}, ErrInvalidChargeAmount
	}
	if u == nil || u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured submission_id=%s", submission.ID)
		return entities.PaymentCharge{}, ErrPaymentGatewayNotConfigured
	}

	reqMap := map[string]any{
		"transaction_amount": amount.Round(2).InexactFloat64(),
		"payment_method_id":  "pix",
		"description":        fmt.Sprintf("Orçamento %s", submission.ID),
		"external_reference": submission.ID,
	}
	if u.payerEmail != "" {
		reqMap["payer"] = map[string]any{"email": u.payerEmail}
	}
	normalizeSandboxPayerFromUserID(reqMap)
	ensurePayerDefaults(reqMap)
	if !hasPayer(reqMap) {
		log.Printf("[payment][usecase] payer email not configured submission_id=%s; provider may reject", submission.ID)
	}

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentCharge{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed submission_id=%s err=%v", submission.ID, err)
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.PaymentCharge{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return entities.PaymentCharge{}, ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return entities.PaymentCharge{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.PaymentCharge{}, ErrPaymentGatewayBadRequest
		}
		return entities.PaymentCharge{}, err
	}
	log.Printf("[payment][usecase] payment gateway success submission_id=%s provider_payment_id=%s provider_status=%s", submission.ID, providerID, providerStatus)

	charge := entities.PaymentCharge{
		ProviderID:      providerID,
		ProviderStatus:  providerStatus,
		Status:          paymentStatusFromProvider(providerStatus),
		Amount:          amount.StringFixed(2),
		ProviderPayload: providerResp,
	}
	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed submission_id=%s err=%v", submission.ID, err)
		return charge, nil
	}
	if poi, ok := parsed["point_of_interaction"].(map[string]any); ok {
		if td, ok := poi["transaction_data"].(map[string]any); ok {
			charge.PixCopyCode, _ = td["qr_code"].(string)
			charge.TicketURL, _ = td["ticket_url"].(string)
		}
	}
	return charge, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendente
}

// PixInstructions renders what the customer needs to pay.
func PixInstructions(c entities.PaymentCharge) string {
	var lines []string
	if c.PixCopyCode != "" {
		lines = append(lines, "Pix copia e cola:", c.PixCopyCode)
	}
	if c.TicketURL != "" {
		lines = append(lines, c.TicketURL)
	}
	if len(lines) == 0 {
		return ""
	}
	lines = append(lines, fmt.Sprintf("Valor: R$ %s", c.Amount))
	return strings.Join(lines, "\n")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
