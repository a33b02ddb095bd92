package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
	"orcamento_bot/pkg/locales"
)

// IImportedOrderUseCase submits forwarded order reports without going
// through the interactive stages.
type IImportedOrderUseCase interface {
	Detect(text string) (entities.IntakeChannel, bool)
	Handle(ctx context.Context, msg entities.InboundMessage, channel entities.IntakeChannel) error
}

type ImportedOrderUseCase struct {
	submissions IOrderSubmissionUseCase
	address     IAddressUseCase
	messenger   interfaces.IMessenger
	msgs        *locales.Messages
}

var _ IImportedOrderUseCase = (*ImportedOrderUseCase)(nil)

func NewImportedOrderUseCase(submissions IOrderSubmissionUseCase, address IAddressUseCase, messenger interfaces.IMessenger) *ImportedOrderUseCase {
	return &ImportedOrderUseCase{
		submissions: submissions,
		address:     address,
		messenger:   messenger,
		msgs:        locales.Get(),
	}
}

func (u *ImportedOrderUseCase) Detect(text string) (entities.IntakeChannel, bool) {
	return DetectIntakeChannel(text)
}

func (u *ImportedOrderUseCase) Handle(ctx context.Context, msg entities.InboundMessage, channel entities.IntakeChannel) error {
	order, err := ParseImportedOrder(msg.Text, channel)
	if errors.Is(err, ErrImportedOrderNoItems) {
		log.Printf("[imported][usecase] no items chat_id=%s channel=%s", msg.ChatID, channel.Name)
		return u.reply(ctx, msg.ChatID, u.msgs.Imported.NoItems)
	}
	if err != nil {
		return err
	}
	order.ChatID = msg.ChatID
	if order.SenderPhone == "" {
		order.SenderPhone = DigitsOnly(msg.SenderID)
	}
	if order.SenderPhone == "" {
		order.SenderPhone = DigitsOnly(msg.ChatID)
	}

	if order.PostalCode != "" && u.address != nil {
		addr, found, err := u.address.Resolve(ctx, order.PostalCode)
		if err != nil {
			log.Printf("[imported][usecase] invalid cep chat_id=%s cep=%s err=%v", msg.ChatID, order.PostalCode, err)
		} else if found {
			order.Address = &addr
		}
	}

	log.Printf("[imported][usecase] parsed chat_id=%s channel=%s items=%d cep=%s", msg.ChatID, channel.Name, len(order.Items), order.PostalCode)
	sub, err := u.submissions.SubmitImported(ctx, order)
	if err != nil {
		log.Printf("[imported][usecase] submit failed chat_id=%s err=%v", msg.ChatID, err)
		return u.reply(ctx, msg.ChatID, u.msgs.Imported.Failure)
	}
	return u.reply(ctx, msg.ChatID, fmt.Sprintf(u.msgs.Imported.Success, len(sub.Records)))
}

func (u *ImportedOrderUseCase) reply(ctx context.Context, chatID, text string) error {
	if err := u.messenger.SendText(ctx, chatID, text); err != nil {
		return fmt.Errorf("send imported reply: %w", err)
	}
	return nil
}
