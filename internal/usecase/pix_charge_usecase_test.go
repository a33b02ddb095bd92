package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"orcamento_bot/internal/domain/entities"
	mock_interfaces "orcamento_bot/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPixChargeUseCase_CreateCharge_Validations(t *testing.T) {
	t.Run("empty submission id", func(t *testing.T) {
		uc := NewPixChargeUseCase(nil, "")
		_, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{}, decimal.NewFromInt(10))
		if !errors.Is(err, ErrInvalidChargeSubmission) {
			t.Fatalf("expected ErrInvalidChargeSubmission, got %v", err)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		uc := NewPixChargeUseCase(nil, "")
		_, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{ID: "sub-1"}, decimal.Zero)
		if !errors.Is(err, ErrInvalidChargeAmount) {
			t.Fatalf("expected ErrInvalidChargeAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPixChargeUseCase(nil, "")
		_, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{ID: "sub-1"}, decimal.NewFromInt(10))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPixChargeUseCase_CreateCharge_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPixChargeUseCase(gateway, "x@test.com")

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{ID: "sub-1"}, decimal.NewFromInt(10))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixChargeUseCase(gateway, "x@test.com")

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{ID: "sub-1"}, decimal.NewFromInt(10))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPixChargeUseCase_CreateCharge_Success(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPixChargeUseCase(gateway, "buyer@test.com")

	providerResp := json.RawMessage(`{"id":77,"status":"pending","point_of_interaction":{"transaction_data":{"qr_code":"000201PIX","ticket_url":"https://mp/ticket"}}}`)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if req["payment_method_id"] != "pix" || req["external_reference"] != "sub-1" || req["transaction_amount"] != 25.5 {
				t.Fatalf("unexpected payload: %s", payload)
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "buyer@test.com" || payer["type"] != "customer" {
				t.Fatalf("unexpected payer: %+v", payer)
			}
			return "77", "pending", providerResp, nil
		},
	)

	charge, err := uc.CreateCharge(context.Background(), entities.OrderSubmission{ID: "sub-1"}, decimal.RequireFromString("25.50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ProviderID != "77" || charge.Status != entities.PaymentStatusPendente || charge.Amount != "25.50" {
		t.Fatalf("unexpected charge: %+v", charge)
	}
	if charge.PixCopyCode != "000201PIX" || charge.TicketURL != "https://mp/ticket" {
		t.Fatalf("expected pix data extracted, got %+v", charge)
	}
	if text := PixInstructions(charge); text == "" {
		t.Fatalf("expected instructions")
	}
}

func TestPixChargeUseCase_StatusAndMethod(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":   entities.PaymentStatusAprovado,
		"rejected":   entities.PaymentStatusNegado,
		"pending":    entities.PaymentStatusPendente,
		"in_process": entities.PaymentStatusPendente,
	}
	for in, want := range cases {
		if got := paymentStatusFromProvider(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
	if !IsPixPayment(" pix ") || !IsPixPayment("PIX copia e cola") || IsPixPayment("Boleto") {
		t.Fatalf("unexpected pix detection")
	}
	if PixInstructions(entities.PaymentCharge{}) != "" {
		t.Fatalf("expected empty instructions without pix data")
	}
}

func TestPixChargeUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) {
			t.Fatalf("expected false")
		}
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) {
			t.Fatalf("expected false for nil id")
		}
		if hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		m := map[string]any{}
		ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		m2 := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "custom@test.com")
		ensurePayerDefaults(m2)
		payer2 := m2["payer"].(map[string]any)
		if payer2["email"] != "custom@test.com" {
			t.Fatalf("expected env email fallback")
		}

		m3 := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		ensurePayerDefaults(m3)
		payer3 := m3["payer"].(map[string]any)
		if payer3["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}

		m4 := map[string]any{"payer": "invalid"}
		ensurePayerDefaults(m4)
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		m := map[string]any{}
		normalizeSandboxPayerFromUserID(m)

		m2 := map[string]any{"payer": "invalid"}
		normalizeSandboxPayerFromUserID(m2)

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP-123")
		m3 := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m3)
		if _, ok := m3["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		mCfgMissing := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(mCfgMissing)
		if _, ok := mCfgMissing["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map when env config is missing")
		}

		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		m4 := map[string]any{"payer": map[string]any{"id": "999"}}
		normalizeSandboxPayerFromUserID(m4)
		if _, ok := m4["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		m5 := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m5)
		payer := m5["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("gateway helper classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayInvalidUsers(nil) || isGatewayCustomerNotFound(nil) {
			t.Fatalf("all nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
		if !isGatewayCustomerNotFound(errors.New(`customer not found`)) {
			t.Fatalf("expected customer not found true")
		}
	})
}
