package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
	"orcamento_bot/pkg/locales"

	"github.com/google/uuid"
)

const (
	DefaultOrderTimeout = 10 * time.Second

	unknownCustomerName = "Desconhecido"
)

var (
	ErrOrderSubmissionNotFound  = errors.New("order submission not found")
	ErrOrderSubmissionFailed    = errors.New("order submission failed")
	ErrOrderAlreadySubmitted    = errors.New("order already submitted")
	ErrInvalidOrderSubmissionID = errors.New("invalid order submission id")
	ErrInvalidChatID            = errors.New("invalid chat id")
	ErrEmptyOrder               = errors.New("order has no items")
)

// IOrderSubmissionUseCase hands finished orders to the backend.
//
// Submissions are attempted once. Failures are reported to the customer
// and the ops channel; operators may Resubmit explicitly.
type IOrderSubmissionUseCase interface {
	SubmitDraft(ctx context.Context, chatID string, draft entities.OrderDraft) (entities.OrderSubmission, error)
	SubmitImported(ctx context.Context, order ImportedOrder) (entities.OrderSubmission, error)
	Resubmit(ctx context.Context, id string) (entities.OrderSubmission, error)
	GetByID(ctx context.Context, id string) (entities.OrderSubmission, error)
	ListByChatID(ctx context.Context, chatID string) ([]entities.OrderSubmission, error)
}

type OrderSubmissionConfig struct {
	// OpsChatID receives order reports and submission outcomes.
	OpsChatID string
	Timeout   time.Duration
}

type OrderSubmissionUseCase struct {
	backend   interfaces.IOrderBackend
	repo      interfaces.IOrderSubmissionRepository
	messenger interfaces.IMessenger
	events    interfaces.IOrderEventPublisher
	pix       IPixChargeUseCase
	metrics   interfaces.IMetrics
	cfg       OrderSubmissionConfig
	msgs      *locales.Messages
	now       func() time.Time
}

var _ IOrderSubmissionUseCase = (*OrderSubmissionUseCase)(nil)

// NewOrderSubmissionUseCase wires the gateway. events, pix and metrics are
// optional.
func NewOrderSubmissionUseCase(
	backend interfaces.IOrderBackend,
	repo interfaces.IOrderSubmissionRepository,
	messenger interfaces.IMessenger,
	events interfaces.IOrderEventPublisher,
	pix IPixChargeUseCase,
	metrics interfaces.IMetrics,
	cfg OrderSubmissionConfig,
) *OrderSubmissionUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultOrderTimeout
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &OrderSubmissionUseCase{
		backend:   backend,
		repo:      repo,
		messenger: messenger,
		events:    events,
		pix:       pix,
		metrics:   metrics,
		cfg:       cfg,
		msgs:      locales.Get(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderSubmissionUseCase) SubmitDraft(ctx context.Context, chatID string, draft entities.OrderDraft) (entities.OrderSubmission, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return entities.OrderSubmission{}, ErrInvalidChatID
	}
	if len(draft.Items) == 0 {
		return entities.OrderSubmission{}, ErrEmptyOrder
	}
	// The customer already confirmed; finish even if the chat moves on.
	ctx = context.WithoutCancel(ctx)

	phone := DigitsOnly(chatID)
	records := BuildDraftRecords(draft, phone)
	u.notifyOps(ctx, u.buildDraftReport(chatID, draft))

	name := draft.CustomerName
	if strings.TrimSpace(name) == "" {
		name = phone
	}
	customer := entities.CustomerRecord{
		Name:       name,
		Phone:      entities.NullableString(phone),
		Number:     entities.NullableString(strings.TrimSpace(draft.Number)),
		Complement: entities.NullableString(strings.TrimSpace(draft.Complement)),
	}
	if draft.Address != nil {
		customer.PostalCode = entities.NullableString(draft.Address.PostalCode)
	}

	sub, err := u.submit(ctx, chatID, entities.ChannelInteractive, name, records, customer)
	if err != nil {
		return sub, err
	}
	if u.pix != nil && IsPixPayment(draft.PaymentMethod) {
		if total := draft.Total(); total.IsPositive() {
			charge, err := u.pix.CreateCharge(ctx, sub, total)
			if err != nil {
				log.Printf("[order][usecase] pix charge failed submission_id=%s err=%v", sub.ID, err)
			} else {
				sub.Payment = &charge
				sub = u.persist(ctx, sub)
			}
		}
	}
	return sub, nil
}

func (u *OrderSubmissionUseCase) SubmitImported(ctx context.Context, order ImportedOrder) (entities.OrderSubmission, error) {
	if len(order.Items) == 0 {
		return entities.OrderSubmission{}, ErrEmptyOrder
	}
	ctx = context.WithoutCancel(ctx)

	records := BuildImportedRecords(order)
	u.notifyOps(ctx, u.buildImportedReport(order))

	name := ImportedCustomerName(order)
	customer := entities.CustomerRecord{
		Name:       name,
		Phone:      entities.NullableString(order.SenderPhone),
		PostalCode: entities.NullableString(order.PostalCode),
		Number:     entities.NullableString(order.Number),
		Complement: entities.NullableString(order.Complement),
	}
	return u.submit(ctx, order.ChatID, order.Channel, name, records, customer)
}

func (u *OrderSubmissionUseCase) submit(
	ctx context.Context,
	chatID string,
	channel entities.IntakeChannel,
	customerName string,
	records []entities.OrderRecord,
	customer entities.CustomerRecord,
) (entities.OrderSubmission, error) {
	now := u.now()
	sub := entities.OrderSubmission{
		ID:           uuid.NewString(),
		ChatID:       chatID,
		Channel:      channel.Name,
		CustomerName: customerName,
		Records:      records,
		Status:       entities.SubmissionStatusPendente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.repo != nil {
		if created, err := u.repo.Create(ctx, sub); err != nil {
			log.Printf("[order][usecase] submission log create failed submission_id=%s err=%v", sub.ID, err)
		} else {
			sub = created
		}
	}

	u.ensureCustomer(ctx, customer)
	return u.send(ctx, sub, channel)
}

// send posts the records once and records the outcome.
func (u *OrderSubmissionUseCase) send(ctx context.Context, sub entities.OrderSubmission, channel entities.IntakeChannel) (entities.OrderSubmission, error) {
	log.Printf("[order][usecase] submitting submission_id=%s chat_id=%s channel=%s records=%d", sub.ID, sub.ChatID, sub.Channel, len(sub.Records))
	for i, r := range sub.Records {
		cep := "null"
		if r.PostalCode != nil {
			cep = *r.PostalCode
		}
		log.Printf("[order][usecase] record[%d] produto=%q quantidade=%d preco=%.2f cep=%s", i, r.Product, r.Quantity, r.Price, cep)
	}

	sendCtx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	err := u.backend.SubmitOrders(sendCtx, sub.Records)
	cancel()

	imported := channel.Origin != ""
	sub.Attempts++
	sub.UpdatedAt = u.now()
	if err != nil {
		log.Printf("[order][usecase] submit failed submission_id=%s chat_id=%s err=%v", sub.ID, sub.ChatID, err)
		sub.Status = entities.SubmissionStatusFalhou
		sub.LastError = err.Error()
		sub = u.persist(ctx, sub)
		u.metrics.ObserveSubmission(sub.Channel, false)
		tpl := u.msgs.Ops.Failed
		if imported {
			tpl = u.msgs.Ops.ImportedFailed
		}
		u.notifyOps(ctx, fmt.Sprintf(tpl, err.Error()))
		return sub, fmt.Errorf("%w: %v", ErrOrderSubmissionFailed, err)
	}

	log.Printf("[order][usecase] submit success submission_id=%s chat_id=%s records=%d", sub.ID, sub.ChatID, len(sub.Records))
	sub.Status = entities.SubmissionStatusEnviado
	sub.LastError = ""
	sub = u.persist(ctx, sub)
	u.metrics.ObserveSubmission(sub.Channel, true)
	tpl := u.msgs.Ops.Saved
	if imported {
		tpl = u.msgs.Ops.ImportedSaved
	}
	u.notifyOps(ctx, fmt.Sprintf(tpl, len(sub.Records)))

	if u.events != nil {
		if err := u.events.PublishOrderSubmitted(ctx, sub); err != nil {
			log.Printf("[order][usecase] publish event failed submission_id=%s err=%v", sub.ID, err)
		}
	}
	return sub, nil
}

func (u *OrderSubmissionUseCase) Resubmit(ctx context.Context, id string) (entities.OrderSubmission, error) {
	sub, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.OrderSubmission{}, err
	}
	if sub.Status == entities.SubmissionStatusEnviado {
		return sub, ErrOrderAlreadySubmitted
	}
	channel, ok := entities.ChannelByName(sub.Channel)
	if !ok {
		channel = entities.ChannelInteractive
	}
	log.Printf("[order][usecase] manual resubmit submission_id=%s attempts=%d", sub.ID, sub.Attempts)
	sub, err = u.send(ctx, sub, channel)
	if err != nil {
		return sub, err
	}
	u.notifyOps(ctx, fmt.Sprintf(u.msgs.Ops.Resubmitted, sub.ID, len(sub.Records)))
	return sub, nil
}

func (u *OrderSubmissionUseCase) GetByID(ctx context.Context, id string) (entities.OrderSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderSubmission{}, ErrInvalidOrderSubmissionID
	}
	if u.repo == nil {
		return entities.OrderSubmission{}, ErrOrderSubmissionNotFound
	}
	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderSubmission{}, err
	}
	if sub.ID == "" {
		return entities.OrderSubmission{}, ErrOrderSubmissionNotFound
	}
	return sub, nil
}

func (u *OrderSubmissionUseCase) ListByChatID(ctx context.Context, chatID string) ([]entities.OrderSubmission, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return nil, ErrInvalidChatID
	}
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.ListByChatID(ctx, chatID)
}

func (u *OrderSubmissionUseCase) persist(ctx context.Context, sub entities.OrderSubmission) entities.OrderSubmission {
	if u.repo == nil {
		return sub
	}
	updated, err := u.repo.Update(ctx, sub)
	if err != nil {
		log.Printf("[order][usecase] submission log update failed submission_id=%s err=%v", sub.ID, err)
		return sub
	}
	if updated.ID == "" {
		return sub
	}
	return updated
}

// ensureCustomer is best effort: the order is still sent when it fails.
func (u *OrderSubmissionUseCase) ensureCustomer(ctx context.Context, customer entities.CustomerRecord) {
	cctx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()
	if err := u.backend.UpsertCustomer(cctx, customer); err != nil {
		log.Printf("[order][usecase] ensure customer failed (non-fatal) nome=%q err=%v", customer.Name, err)
	}
}

func (u *OrderSubmissionUseCase) notifyOps(ctx context.Context, text string) {
	if u.cfg.OpsChatID == "" || u.messenger == nil {
		return
	}
	if err := u.messenger.SendText(ctx, u.cfg.OpsChatID, text); err != nil {
		log.Printf("[order][usecase] ops notification failed chat_id=%s err=%v", u.cfg.OpsChatID, err)
	}
}

func (u *OrderSubmissionUseCase) buildDraftReport(chatID string, d entities.OrderDraft) string {
	na := u.msgs.Summary.NotInformed
	from := DigitsOnly(chatID)
	if from == "" {
		from = "desconhecido"
	}
	lines := []string{
		u.msgs.Ops.OrderReportTitle,
		"De: " + from,
		"Nome: " + orDefault(d.CustomerName, na),
		"Item: \n" + orDefault(d.ItemSummary(), na),
		"---",
		"Endereço: " + orDefault(d.FullAddress, na),
		"Entrega: " + orDefault(d.Delivery, na),
		"Pagamento: " + orDefault(d.PaymentMethod, na),
	}
	return strings.Join(lines, "\n")
}

func (u *OrderSubmissionUseCase) buildImportedReport(o ImportedOrder) string {
	na := u.msgs.Summary.NotInformed
	lines := []string{
		fmt.Sprintf(u.msgs.Ops.ImportedReportTitle, o.Channel.Origin),
		"De: " + orDefault(o.SenderPhone, o.ChatID),
		"Nome: " + orDefault(o.CustomerName, na),
		"Itens:",
	}
	for i, it := range o.Items {
		price := "0,00"
		if it.Price != nil {
			price = it.Price.StringFixed(2)
		}
		lines = append(lines, fmt.Sprintf("%d. %d x %s (R$ %s)", i+1, it.Quantity, it.Name, price))
	}
	lines = append(lines,
		"---",
		"Endereço: "+orDefault(o.AddressText, na),
		"Entrega: "+orDefault(o.Delivery, na),
		"Pagamento: "+orDefault(o.PaymentMethod, na),
	)
	return strings.Join(lines, "\n")
}

// BuildDraftRecords turns a confirmed draft into one record per line.
func BuildDraftRecords(d entities.OrderDraft, phone string) []entities.OrderRecord {
	var addr entities.Address
	if d.Address != nil {
		addr = *d.Address
	}
	name := d.CustomerName
	if strings.TrimSpace(name) == "" {
		name = phone
	}
	records := make([]entities.OrderRecord, 0, len(d.Items))
	for _, it := range d.Items {
		price := 0.0
		if it.Price != nil {
			price = it.Price.InexactFloat64()
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		records = append(records, entities.OrderRecord{
			PostalCode:    entities.NullableString(PostalCodeDigits(addr.PostalCode)),
			Number:        entities.NullableString(strings.TrimSpace(d.Number)),
			Complement:    entities.NullableString(strings.TrimSpace(d.Complement)),
			District:      entities.NullableString(addr.District),
			Street:        entities.NullableString(addr.Street),
			City:          entities.NullableString(addr.City),
			Name:          entities.NullableString(name),
			Product:       it.Name,
			PaymentMethod: entities.NullableString(strings.TrimSpace(d.PaymentMethod)),
			Price:         price,
			Quantity:      qty,
		})
	}
	return records
}

// ImportedCustomerName falls back to the sender's phone digits, then to
// "Desconhecido", when the report carries no name.
func ImportedCustomerName(o ImportedOrder) string {
	if name := strings.TrimSpace(o.CustomerName); name != "" {
		return name
	}
	if phone := DigitsOnly(o.SenderPhone); phone != "" {
		return phone
	}
	return unknownCustomerName
}

// BuildImportedRecords applies the channel's origin, status and product rules.
func BuildImportedRecords(o ImportedOrder) []entities.OrderRecord {
	name := ImportedCustomerName(o)
	var addr entities.Address
	if o.Address != nil {
		addr = *o.Address
	}
	records := make([]entities.OrderRecord, 0, len(o.Items))
	for _, it := range o.Items {
		product := it.Name
		if o.Channel.NormalizeProduct {
			product = entities.NormalizeText(product)
		}
		price := 0.0
		if it.Price != nil {
			price = it.Price.InexactFloat64()
		}
		rec := entities.OrderRecord{
			PostalCode:    entities.NullableString(PostalCodeDigits(o.PostalCode)),
			Number:        entities.NullableString(o.Number),
			Complement:    entities.NullableString(o.Complement),
			District:      entities.NullableString(addr.District),
			Street:        entities.NullableString(addr.Street),
			City:          entities.NullableString(addr.City),
			Name:          entities.NullableString(name),
			Product:       product,
			PaymentMethod: entities.NullableString(o.PaymentMethod),
			Price:         price,
			Quantity:      it.Quantity,
			Origin:        o.Channel.Origin,
			StatusLabel:   o.Channel.StatusLabel,
		}
		if o.Channel.IncludePhone {
			rec.Phone = entities.NullableString(o.SenderPhone)
		}
		records = append(records, rec)
	}
	return records
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
