package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"orcamento_bot/internal/domain/entities"
)

var orderKeywords = regexp.MustCompile(`(?i)pedido|comprar|quero`)

type stepResult struct {
	replies []entities.Reply
	// committed marks steps with external effects that must not be rolled back.
	committed bool
}

func (r *stepResult) say(texts ...string) {
	for _, t := range texts {
		r.replies = append(r.replies, entities.TextReply(t))
	}
}

type stepFunc func(ctx context.Context, s *entities.Session, msg entities.InboundMessage, text string, res *stepResult) error

func (u *SessionUseCase) handlers() map[entities.Stage]stepFunc {
	return map[entities.Stage]stepFunc{
		entities.StageInit:              u.initStep,
		entities.StageMainMenu:          u.mainMenuStep,
		entities.StageFAQ:               u.faqStep,
		entities.StageQuestion:          u.questionStep,
		entities.StageClosing:           u.closingStep,
		entities.StageCollectName:       u.collectNameStep,
		entities.StageCollectItem:       u.collectItemStep,
		entities.StageChooseItem:        u.chooseItemStep,
		entities.StageConfirmItem:       u.confirmItemStep,
		entities.StageCollectQuantity:   u.collectQuantityStep,
		entities.StageMoreItems:         u.moreItemsStep,
		entities.StageCollectPostalCode: u.collectPostalCodeStep,
		entities.StageConfirmAddress:    u.confirmAddressStep,
		entities.StageCollectNumber:     u.collectNumberStep,
		entities.StageCollectComplement: u.collectComplementStep,
		entities.StageCollectPayment:    u.collectPaymentStep,
		entities.StageReviewSummary:     u.reviewSummaryStep,
		entities.StageDone:              u.doneStep,
	}
}

// step applies msg to s. s is a scratch copy: on error the caller drops it.
func (u *SessionUseCase) step(ctx context.Context, s *entities.Session, msg entities.InboundMessage) (stepResult, error) {
	var res stepResult
	text := strings.TrimSpace(msg.Text)

	switch strings.ToLower(text) {
	case "menu":
		s.Reset()
		s.Stage = entities.StageMainMenu
		res.say(u.msgs.Menu.Back, u.msgs.Menu.Main)
		return res, nil
	case "cancelar", "cancel":
		u.cancel(s, &res)
		return res, nil
	}

	h, ok := u.handlers()[s.Stage]
	if !ok {
		log.Printf("[session][usecase] unknown stage chat_id=%s stage=%s", s.ChatID, s.Stage)
		s.Reset()
		h = u.initStep
	}
	err := h(ctx, s, msg, text, &res)
	return res, err
}

func (u *SessionUseCase) cancel(s *entities.Session, res *stepResult) {
	s.Reset()
	s.Stage = entities.StageMainMenu
	res.say(u.msgs.Menu.Cancelled, u.msgs.Menu.Main)
}

func (u *SessionUseCase) initStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, _ string, res *stepResult) error {
	if !u.cfg.Hours.IsOpen(u.now()) {
		res.say(fmt.Sprintf(u.msgs.Menu.Closed, u.cfg.Hours.Label()))
		s.Stage = entities.StageInit
		return nil
	}
	res.say(u.msgs.Menu.Main)
	s.Stage = entities.StageMainMenu
	return nil
}

func (u *SessionUseCase) doneStep(ctx context.Context, s *entities.Session, msg entities.InboundMessage, text string, res *stepResult) error {
	s.Reset()
	return u.initStep(ctx, s, msg, text, res)
}

func (u *SessionUseCase) mainMenuStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	lower := strings.ToLower(text)
	switch {
	case text == "1" || strings.Contains(lower, "catalog"):
		res.say(u.msgs.Menu.CatalogSending)
		sent := 0
		for _, path := range u.cfg.CatalogImages {
			if !u.fileExists(path) {
				log.Printf("[session][usecase] catalog image missing path=%s", path)
				continue
			}
			res.replies = append(res.replies, entities.ImageReply(path))
			sent++
		}
		if sent == 0 {
			res.say(u.msgs.Menu.CatalogEmpty)
		} else {
			res.say(u.msgs.Menu.CatalogSent)
		}
		s.Stage = entities.StageMainMenu
	case text == "2" || orderKeywords.MatchString(text):
		s.Draft = entities.OrderDraft{}
		s.PendingItem = nil
		s.Candidates = nil
		s.ReturnToSummary = false
		res.say(u.msgs.Order.AskName)
		s.Stage = entities.StageCollectName
	case text == "3":
		res.say(u.msgs.FAQ.Menu)
		s.Stage = entities.StageFAQ
	case text == "4":
		res.say(fmt.Sprintf(u.msgs.Menu.Site, u.cfg.SiteURL))
		s.Stage = entities.StageClosing
	default:
		res.say(u.msgs.Menu.Invalid)
	}
	return nil
}

func (u *SessionUseCase) faqStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	switch text {
	case "1":
		res.say(fmt.Sprintf(u.msgs.FAQ.Text, u.cfg.Hours.Label()))
		s.Stage = entities.StageClosing
	case "2":
		res.say(u.msgs.FAQ.QuestionPrompt)
		s.Stage = entities.StageQuestion
	case "0":
		res.say(u.msgs.Menu.Main)
		s.Stage = entities.StageMainMenu
	default:
		res.say(u.msgs.FAQ.Invalid)
	}
	return nil
}

func (u *SessionUseCase) questionStep(ctx context.Context, s *entities.Session, msg entities.InboundMessage, text string, res *stepResult) error {
	if u.cfg.QuestionsChatID != "" {
		sender := DigitsOnly(msg.SenderID)
		if sender == "" {
			sender = msg.ChatID
		}
		report := fmt.Sprintf(u.msgs.FAQ.QuestionReport, sender, text)
		if err := u.messenger.SendText(ctx, u.cfg.QuestionsChatID, report); err != nil {
			log.Printf("[session][usecase] question forward failed chat_id=%s err=%v", msg.ChatID, err)
		} else {
			res.committed = true
		}
	}
	res.say(u.msgs.FAQ.QuestionReceived)
	s.Stage = entities.StageDone
	return nil
}

func (u *SessionUseCase) closingStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if text == "0" || strings.EqualFold(text, "voltar") {
		res.say(u.msgs.Menu.Back, u.msgs.Menu.Main)
		s.Stage = entities.StageMainMenu
		return nil
	}
	res.say(u.msgs.Menu.ClosingHint)
	return nil
}

func (u *SessionUseCase) collectNameStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if text == "" {
		res.say(u.msgs.Order.AskName)
		return nil
	}
	s.Draft.CustomerName = text
	if s.ReturnToSummary {
		res.say(u.msgs.Summary.NameUpdated)
		u.showSummary(s, res)
		return nil
	}
	res.say(u.msgs.Order.AskItem)
	s.Stage = entities.StageCollectItem
	return nil
}

func (u *SessionUseCase) collectItemStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	u.searchItem(s, text, res)
	return nil
}

// searchItem resolves free text against the catalog. Nothing is added to
// the draft here; a unique or chosen match still needs confirmation.
func (u *SessionUseCase) searchItem(s *entities.Session, text string, res *stepResult) {
	qty, itemText := ParseQuantityAndItem(text)
	if itemText == "" {
		res.say(u.msgs.Order.AskItemAgain)
		s.Stage = entities.StageCollectItem
		return
	}
	match := u.catalog.Lookup(itemText)
	switch match.Kind {
	case entities.MatchUnique:
		s.Candidates = nil
		s.PendingItem = pendingFromEntry(match.Entry, qty)
		res.say(fmt.Sprintf(u.msgs.Order.ItemFound, s.PendingItem.Name))
		s.Stage = entities.StageConfirmItem
	case entities.MatchAmbiguous:
		s.Candidates = match.Candidates
		s.PendingItem = &entities.PendingItem{SuggestedQuantity: qty}
		res.say(u.candidateList(match.Candidates))
		s.Stage = entities.StageChooseItem
	default:
		s.Candidates = nil
		s.PendingItem = nil
		res.say(fmt.Sprintf(u.msgs.Order.ItemNotFound, itemText))
		s.Stage = entities.StageCollectItem
	}
}

func pendingFromEntry(e entities.CatalogEntry, qty int) *entities.PendingItem {
	return &entities.PendingItem{
		Name:              e.Key,
		CatalogKey:        e.Key,
		Price:             e.Price,
		SuggestedQuantity: qty,
	}
}

func (u *SessionUseCase) candidateList(candidates []entities.CatalogEntry) string {
	lines := []string{u.msgs.Order.ItemChooseHeader, ""}
	for i, c := range candidates {
		line := fmt.Sprintf("%d. %s", i+1, c.Key)
		if c.Code != "" {
			line += " (" + c.Code + ")"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", u.msgs.Order.ItemChooseFooter)
	return strings.Join(lines, "\n")
}

func (u *SessionUseCase) chooseItemStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if text == "0" {
		s.Candidates = nil
		s.PendingItem = nil
		res.say(u.msgs.Order.AskItemAgain)
		s.Stage = entities.StageCollectItem
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		u.searchItem(s, text, res)
		return nil
	}
	if n < 1 || n > len(s.Candidates) {
		res.say(u.msgs.Order.ItemChooseInvalid)
		return nil
	}
	qty := 0
	if s.PendingItem != nil {
		qty = s.PendingItem.SuggestedQuantity
	}
	s.PendingItem = pendingFromEntry(s.Candidates[n-1], qty)
	s.Candidates = nil
	res.say(fmt.Sprintf(u.msgs.Order.ItemFound, s.PendingItem.Name))
	s.Stage = entities.StageConfirmItem
	return nil
}

func (u *SessionUseCase) confirmItemStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	switch text {
	case "1":
		res.say(u.msgs.Order.AskQuantity)
		s.Stage = entities.StageCollectQuantity
	case "2":
		s.PendingItem = nil
		res.say(u.msgs.Order.AskItemAgain)
		s.Stage = entities.StageCollectItem
	case "3":
		u.cancel(s, res)
	default:
		res.say(u.msgs.Order.ItemConfirmInvalid)
	}
	return nil
}

func (u *SessionUseCase) collectQuantityStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if s.PendingItem == nil {
		res.say(u.msgs.Order.AskItemAgain)
		s.Stage = entities.StageCollectItem
		return nil
	}
	qty := ParseQuantity(text)
	if qty <= 0 {
		qty = s.PendingItem.SuggestedQuantity
	}
	if qty <= 0 {
		res.say(u.msgs.Order.QuantityInvalid)
		return nil
	}

	item := s.PendingItem.DraftItem(qty)
	s.PendingItem = nil
	if s.ReturnToSummary {
		s.Draft.SetItem(item)
		res.say(u.msgs.Summary.ItemUpdated)
		u.showSummary(s, res)
		return nil
	}
	total := s.Draft.MergeItem(item)
	res.say(fmt.Sprintf(u.msgs.Order.ItemAdded, item.Name, total))
	s.Stage = entities.StageMoreItems
	return nil
}

func (u *SessionUseCase) moreItemsStep(ctx context.Context, s *entities.Session, msg entities.InboundMessage, text string, res *stepResult) error {
	switch text {
	case "1":
		res.say(u.msgs.Order.AskNextItem)
		s.Stage = entities.StageCollectItem
	case "2":
		if len(s.Draft.Items) == 0 {
			res.say(u.msgs.Order.NoItemsToFinish)
			s.Stage = entities.StageCollectItem
			return nil
		}
		res.say(fmt.Sprintf(u.msgs.Order.ItemsRegistered, s.Draft.ItemSummary()))
		s.Stage = entities.StageCollectPostalCode
	case "3":
		if len(s.Draft.Items) == 0 {
			res.say(u.msgs.Order.NoItemsYet)
			return nil
		}
		res.say(fmt.Sprintf(u.msgs.Order.ItemsSoFar, s.Draft.ItemSummary()))
	default:
		if _, err := strconv.Atoi(text); err != nil && text != "" {
			return u.collectItemStep(ctx, s, msg, text, res)
		}
		res.say(u.msgs.Order.MoreItemsInvalid)
	}
	return nil
}

func (u *SessionUseCase) collectPostalCodeStep(ctx context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if PostalCodeDigits(text) == "" {
		res.say(u.msgs.Address.Invalid)
		return nil
	}
	u.resolvePostalCode(ctx, s, text, res)
	return nil
}

func (u *SessionUseCase) resolvePostalCode(ctx context.Context, s *entities.Session, text string, res *stepResult) {
	res.say(u.msgs.Address.LookingUp)
	addr, found, err := u.address.Resolve(ctx, text)
	if err != nil || !found {
		s.Draft.LastPostalLookup = nil
		res.say(u.msgs.Address.NotFound)
		s.Stage = entities.StageCollectPostalCode
		return
	}
	s.Draft.LastPostalLookup = &addr
	res.say(fmt.Sprintf(u.msgs.Address.Found, addr.Display()))
	s.Stage = entities.StageConfirmAddress
}

func (u *SessionUseCase) confirmAddressStep(ctx context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	switch {
	case text == "1" && s.Draft.LastPostalLookup != nil:
		addr := *s.Draft.LastPostalLookup
		s.Draft.Address = &addr
		res.say(u.msgs.Order.AskNumber)
		s.Stage = entities.StageCollectNumber
	case text == "2":
		s.Draft.LastPostalLookup = nil
		res.say(u.msgs.Address.AskAgain)
		s.Stage = entities.StageCollectPostalCode
	case PostalCodeDigits(text) != "":
		u.resolvePostalCode(ctx, s, text, res)
	default:
		res.say(u.msgs.Address.ConfirmInvalid)
	}
	return nil
}

func (u *SessionUseCase) collectNumberStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	s.Draft.Number = text
	res.say(u.msgs.Order.AskComplement)
	s.Stage = entities.StageCollectComplement
	return nil
}

func (u *SessionUseCase) collectComplementStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if strings.EqualFold(text, "sem") {
		text = ""
	}
	s.Draft.Complement = text
	s.Draft.ComposeFullAddress()
	s.Draft.Delivery = entities.DeliveryChartered
	if s.ReturnToSummary {
		res.say(u.msgs.Summary.AddressUpdated)
		u.showSummary(s, res)
		return nil
	}
	res.say(u.msgs.Order.AskPayment)
	s.Stage = entities.StageCollectPayment
	return nil
}

func (u *SessionUseCase) collectPaymentStep(_ context.Context, s *entities.Session, _ entities.InboundMessage, text string, res *stepResult) error {
	if text == "" {
		res.say(u.msgs.Order.AskPayment)
		return nil
	}
	s.Draft.PaymentMethod = text
	if s.ReturnToSummary {
		res.say(u.msgs.Summary.PaymentUpdated)
	}
	u.showSummary(s, res)
	return nil
}

func (u *SessionUseCase) reviewSummaryStep(ctx context.Context, s *entities.Session, msg entities.InboundMessage, text string, res *stepResult) error {
	switch text {
	case "1":
		if missing := s.Draft.MissingFields(); len(missing) > 0 {
			res.say(fmt.Sprintf(u.msgs.Summary.Missing, strings.Join(missing, ", ")))
			return nil
		}
		return u.submit(ctx, s, msg, res)
	case "2":
		u.startEdit(s, res, u.msgs.Summary.EditName, entities.StageCollectName)
	case "3":
		u.startEdit(s, res, u.msgs.Summary.EditItem, entities.StageCollectItem)
	case "4":
		u.startEdit(s, res, u.msgs.Summary.EditAddress, entities.StageCollectPostalCode)
	case "5":
		u.startEdit(s, res, u.msgs.Summary.EditPayment, entities.StageCollectPayment)
	case "0":
		u.cancel(s, res)
	default:
		res.say(u.msgs.Summary.Invalid)
	}
	return nil
}

func (u *SessionUseCase) startEdit(s *entities.Session, res *stepResult, prompt string, stage entities.Stage) {
	s.ReturnToSummary = true
	s.PendingItem = nil
	s.Candidates = nil
	res.say(prompt)
	s.Stage = stage
}

func (u *SessionUseCase) submit(ctx context.Context, s *entities.Session, msg entities.InboundMessage, res *stepResult) error {
	res.committed = true
	sub, err := u.orders.SubmitDraft(ctx, msg.ChatID, s.Draft)
	if err != nil {
		log.Printf("[session][usecase] submission failed chat_id=%s err=%v", msg.ChatID, err)
		res.say(u.msgs.Order.SubmissionFailed)
	} else {
		res.say(u.msgs.Order.Confirmed)
		if sub.Payment != nil {
			if pix := PixInstructions(*sub.Payment); pix != "" {
				res.say(fmt.Sprintf(u.msgs.Order.PixCharge, pix))
			}
		}
	}
	s.Reset()
	s.Stage = entities.StageDone
	return nil
}

func (u *SessionUseCase) showSummary(s *entities.Session, res *stepResult) {
	s.ReturnToSummary = false
	s.Stage = entities.StageReviewSummary
	res.say(u.summaryText(s.Draft))
}

func (u *SessionUseCase) summaryText(d entities.OrderDraft) string {
	na := u.msgs.Summary.NotInformed
	parts := []string{
		u.msgs.Summary.Title,
		"Nome: " + orDefault(d.CustomerName, na),
		"Item: \n" + orDefault(d.ItemSummary(), na),
		"Endereço:\n" + orDefault(d.FullAddress, na),
		"Entrega: " + orDefault(d.Delivery, na),
		"Pagamento: " + orDefault(d.PaymentMethod, na),
		u.msgs.Summary.Options,
	}
	return strings.Join(parts, "\n\n")
}
