package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway creates a Pix payment for a submitted order.
//
// pixPayload is a Mercado Pago payment body: transaction_amount,
// payment_method_id "pix", description, external_reference (the submission
// id) and an optional payer. The raw provider answer is returned so the
// copy code and ticket URL under point_of_interaction.transaction_data can
// be read from it.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, pixPayload json.RawMessage) (paymentID string, status string, rawResponse json.RawMessage, err error)
}
