package locales

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var rawMessages []byte

type Menu struct {
	Main           string `yaml:"main"`
	Closed         string `yaml:"closed"`
	Back           string `yaml:"back"`
	Cancelled      string `yaml:"cancelled"`
	Invalid        string `yaml:"invalid"`
	CatalogSending string `yaml:"catalog_sending"`
	CatalogSent    string `yaml:"catalog_sent"`
	CatalogEmpty   string `yaml:"catalog_empty"`
	Site           string `yaml:"site"`
	ClosingHint    string `yaml:"closing_hint"`
}

type FAQ struct {
	Menu             string `yaml:"menu"`
	Text             string `yaml:"text"`
	Invalid          string `yaml:"invalid"`
	QuestionPrompt   string `yaml:"question_prompt"`
	QuestionReceived string `yaml:"question_received"`
	QuestionReport   string `yaml:"question_report"`
}

type Order struct {
	AskName            string `yaml:"ask_name"`
	AskItem            string `yaml:"ask_item"`
	AskItemAgain       string `yaml:"ask_item_again"`
	AskNextItem        string `yaml:"ask_next_item"`
	ItemFound          string `yaml:"item_found"`
	ItemNotFound       string `yaml:"item_not_found"`
	ItemChooseHeader   string `yaml:"item_choose_header"`
	ItemChooseFooter   string `yaml:"item_choose_footer"`
	ItemChooseInvalid  string `yaml:"item_choose_invalid"`
	ItemConfirmInvalid string `yaml:"item_confirm_invalid"`
	AskQuantity        string `yaml:"ask_quantity"`
	QuantityInvalid    string `yaml:"quantity_invalid"`
	ItemAdded          string `yaml:"item_added"`
	ItemsSoFar         string `yaml:"items_so_far"`
	NoItemsYet         string `yaml:"no_items_yet"`
	NoItemsToFinish    string `yaml:"no_items_to_finish"`
	MoreItemsInvalid   string `yaml:"more_items_invalid"`
	ItemsRegistered    string `yaml:"items_registered"`
	AskNumber          string `yaml:"ask_number"`
	AskComplement      string `yaml:"ask_complement"`
	AskPayment         string `yaml:"ask_payment"`
	Confirmed          string `yaml:"confirmed"`
	SubmissionFailed   string `yaml:"submission_failed"`
	PixCharge          string `yaml:"pix_charge"`
	NotIdentified      string `yaml:"not_identified"`
}

type Address struct {
	Invalid        string `yaml:"invalid"`
	LookingUp      string `yaml:"looking_up"`
	NotFound       string `yaml:"not_found"`
	Found          string `yaml:"found"`
	ConfirmInvalid string `yaml:"confirm_invalid"`
	AskAgain       string `yaml:"ask_again"`
}

type Summary struct {
	Title          string `yaml:"title"`
	Options        string `yaml:"options"`
	Invalid        string `yaml:"invalid"`
	Missing        string `yaml:"missing"`
	NotInformed    string `yaml:"not_informed"`
	EditName       string `yaml:"edit_name"`
	EditItem       string `yaml:"edit_item"`
	EditAddress    string `yaml:"edit_address"`
	EditPayment    string `yaml:"edit_payment"`
	NameUpdated    string `yaml:"name_updated"`
	ItemUpdated    string `yaml:"item_updated"`
	AddressUpdated string `yaml:"address_updated"`
	PaymentUpdated string `yaml:"payment_updated"`
}

type Handoff struct {
	Started           string `yaml:"started"`
	Ended             string `yaml:"ended"`
	HandoffUsage      string `yaml:"handoff_usage"`
	BotUsage          string `yaml:"bot_usage"`
	OperatorStarted   string `yaml:"operator_started"`
	OperatorAlready   string `yaml:"operator_already"`
	OperatorEnded     string `yaml:"operator_ended"`
	OperatorNotActive string `yaml:"operator_not_active"`
}

type Ops struct {
	OrderReportTitle    string `yaml:"order_report_title"`
	ImportedReportTitle string `yaml:"imported_report_title"`
	Saved               string `yaml:"saved"`
	Failed              string `yaml:"failed"`
	ImportedSaved       string `yaml:"imported_saved"`
	ImportedFailed      string `yaml:"imported_failed"`
	Resubmitted         string `yaml:"resubmitted"`
}

type Imported struct {
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
	NoItems string `yaml:"no_items"`
}

// Messages holds every text the bot sends to customers, operators and ops channels.
type Messages struct {
	Menu     Menu     `yaml:"menu"`
	FAQ      FAQ      `yaml:"faq"`
	Order    Order    `yaml:"order"`
	Address  Address  `yaml:"address"`
	Summary  Summary  `yaml:"summary"`
	Handoff  Handoff  `yaml:"handoff"`
	Ops      Ops      `yaml:"ops"`
	Imported Imported `yaml:"imported"`
}

var (
	once     sync.Once
	messages *Messages
	loadErr  error
)

// Load parses the embedded catalog once.
func Load() (*Messages, error) {
	once.Do(func() {
		var m Messages
		if err := yaml.Unmarshal(rawMessages, &m); err != nil {
			loadErr = fmt.Errorf("parse messages.yaml: %w", err)
			return
		}
		messages = &m
	})
	return messages, loadErr
}

// Get is Load for callers that cannot recover from a broken embedded file.
func Get() *Messages {
	m, err := Load()
	if err != nil {
		panic(err)
	}
	return m
}
