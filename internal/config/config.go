package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePebble   = "pebble"

	TransportTelegram = "telegram"
	TransportWebhook  = "webhook"
)

var (
	ErrMissingBackendURL    = errors.New("BACKEND_BASE_URL is required")
	ErrMissingTelegramToken = errors.New("TELEGRAM_BOT_TOKEN is required for the telegram transport")
	ErrInvalidValue         = errors.New("invalid configuration value")
)

type Backend struct {
	BaseURL          string
	CatalogEndpoints []string
	RefreshInterval  time.Duration
	OrderTimeout     time.Duration
}

type Postal struct {
	BaseURL string
	Timeout time.Duration
}

type Ops struct {
	CommandChatID   string
	OrdersChatID    string
	QuestionsChatID string
	Operators       []string
}

type Hours struct {
	Open     int
	Close    int
	Location *time.Location
}

type Storage struct {
	Sessions       string
	Handoffs       string
	Orders         string
	PebbleDir      string
	PebbleSync     bool
	SessionsTable  string
	HandoffsTable  string
	OrdersTable    string
	AWSRegion      string
	DynamoEndpoint string
	AWSAccessKeyID string
	AWSSecretKey   string
}

type Kafka struct {
	Brokers string
	Topic   string
}

type Payments struct {
	AccessToken string
	Mock        bool
	PayerEmail  string
}

type HTTP struct {
	Addr       string
	AdminToken string
}

type Dispatcher struct {
	QueueSize   int
	IdleTimeout time.Duration
}

type Config struct {
	Transport     string
	TelegramToken string
	CatalogImages []string
	SiteURL       string

	Backend    Backend
	Postal     Postal
	Ops        Ops
	Hours      Hours
	Storage    Storage
	Kafka      Kafka
	Payments   Payments
	HTTP       HTTP
	Dispatcher Dispatcher
}

// LoadEnvFile merges path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds the configuration from getenv.
func LoadFrom(getenv func(string) string) (Config, error) {
	r := reader{getenv: getenv}

	cfg := Config{
		Transport:     strings.ToLower(r.str("CHAT_TRANSPORT", TransportTelegram)),
		TelegramToken: r.str("TELEGRAM_BOT_TOKEN", ""),
		CatalogImages: r.list("CATALOG_IMAGES", nil),
		SiteURL:       r.str("SITE_URL", ""),
		Backend: Backend{
			BaseURL:          NormalizeBaseURL(r.str("BACKEND_BASE_URL", "")),
			CatalogEndpoints: r.list("CATALOG_ENDPOINTS", []string{"/produtos", "/ensacados", "/cereais"}),
			RefreshInterval:  r.duration("CATALOG_REFRESH_INTERVAL", 10*time.Minute),
			OrderTimeout:     r.duration("ORDER_TIMEOUT", 10*time.Second),
		},
		Postal: Postal{
			BaseURL: r.str("POSTAL_BASE_URL", "https://viacep.com.br"),
			Timeout: r.duration("POSTAL_TIMEOUT", 5*time.Second),
		},
		Ops: Ops{
			CommandChatID:   r.str("OPS_COMMAND_CHAT_ID", ""),
			OrdersChatID:    r.str("OPS_ORDERS_CHAT_ID", ""),
			QuestionsChatID: r.str("OPS_QUESTIONS_CHAT_ID", ""),
			Operators:       r.list("HANDOFF_OPERATORS", nil),
		},
		Hours: Hours{
			Open:  r.integer("BUSINESS_OPEN_HOUR", 0),
			Close: r.integer("BUSINESS_CLOSE_HOUR", 24),
		},
		Storage: Storage{
			Sessions:       strings.ToLower(r.str("SESSION_STORE", StoreMemory)),
			Handoffs:       strings.ToLower(r.str("HANDOFF_STORE", StoreMemory)),
			Orders:         strings.ToLower(r.str("ORDER_STORE", StoreMemory)),
			PebbleDir:      r.str("PEBBLE_DIR", "./data/sessions"),
			PebbleSync:     r.boolean("PEBBLE_SYNC", true),
			SessionsTable:  r.str("SESSIONS_TABLE", "chat_sessions"),
			HandoffsTable:  r.str("HANDOFFS_TABLE", "chat_handoffs"),
			OrdersTable:    r.str("ORDERS_TABLE", "order_submissions"),
			AWSRegion:      r.str("AWS_REGION", "us-east-1"),
			DynamoEndpoint: r.str("DYNAMODB_ENDPOINT", ""),
			AWSAccessKeyID: r.str("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey:   r.str("AWS_SECRET_ACCESS_KEY", ""),
		},
		Kafka: Kafka{
			Brokers: r.str("KAFKA_BROKERS", ""),
			Topic:   r.str("KAFKA_ORDER_TOPIC", "orcamento.orders.submitted"),
		},
		Payments: Payments{
			AccessToken: r.str("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:        r.boolean("PAYMENT_GATEWAY_MOCK", false),
			PayerEmail:  r.str("MERCADOPAGO_PAYER_EMAIL", ""),
		},
		HTTP: HTTP{
			Addr:       r.str("HTTP_ADDR", ":8080"),
			AdminToken: r.str("HTTP_ADMIN_TOKEN", ""),
		},
		Dispatcher: Dispatcher{
			QueueSize:   r.integer("DISPATCHER_QUEUE_SIZE", 32),
			IdleTimeout: r.duration("DISPATCHER_IDLE_TIMEOUT", 10*time.Minute),
		},
	}

	tz := r.str("BUSINESS_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		r.fail("BUSINESS_TIMEZONE", tz)
	}
	cfg.Hours.Location = loc

	if r.err != nil {
		return Config{}, r.err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return ErrMissingBackendURL
	}
	switch c.Transport {
	case TransportTelegram:
		if c.TelegramToken == "" {
			return ErrMissingTelegramToken
		}
	case TransportWebhook:
	default:
		return fmt.Errorf("%w: CHAT_TRANSPORT=%q", ErrInvalidValue, c.Transport)
	}
	for key, v := range map[string]string{"SESSION_STORE": c.Storage.Sessions, "HANDOFF_STORE": c.Storage.Handoffs, "ORDER_STORE": c.Storage.Orders} {
		switch v {
		case StoreMemory, StoreDynamoDB:
		case StorePebble:
			if key != "SESSION_STORE" {
				return fmt.Errorf("%w: %s=%q (pebble only backs sessions)", ErrInvalidValue, key, v)
			}
		default:
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
		}
	}
	if c.Hours.Open < 0 || c.Hours.Open > 23 || c.Hours.Close < 1 || c.Hours.Close > 24 {
		return fmt.Errorf("%w: business hours %d-%d", ErrInvalidValue, c.Hours.Open, c.Hours.Close)
	}
	return nil
}

// UsesDynamoDB reports whether any store needs a DynamoDB client.
func (c Config) UsesDynamoDB() bool {
	return c.Storage.Sessions == StoreDynamoDB || c.Storage.Handoffs == StoreDynamoDB || c.Storage.Orders == StoreDynamoDB
}

// NormalizeBaseURL trims trailing slashes and adds https:// when no scheme
// is given.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	if u == "" {
		return ""
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

// reader keeps the first parse error so Load reports one bad key.
type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) list(key string, def []string) []string {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *reader) integer(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v)
		return def
	}
	return n
}

// duration accepts Go durations ("90s", "10m") or whole seconds.
func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		r.fail(key, v)
		return def
	}
	return d
}

func (r *reader) boolean(key string, def bool) bool {
	switch strings.ToLower(r.str(key, "")) {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		r.fail(key, r.getenv(key))
		return def
	}
}

func (r *reader) fail(key, value string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}
}
