package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envOf(map[string]string{
		"BACKEND_BASE_URL":   "api.loja.com.br/",
		"TELEGRAM_BOT_TOKEN": "123:abc",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.BaseURL != "https://api.loja.com.br" {
		t.Fatalf("unexpected base url: %s", cfg.Backend.BaseURL)
	}
	if len(cfg.Backend.CatalogEndpoints) != 3 || cfg.Backend.CatalogEndpoints[2] != "/cereais" {
		t.Fatalf("unexpected endpoints: %v", cfg.Backend.CatalogEndpoints)
	}
	if cfg.Postal.Timeout != 5*time.Second || cfg.Backend.OrderTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: postal=%v order=%v", cfg.Postal.Timeout, cfg.Backend.OrderTimeout)
	}
	if cfg.Hours.Open != 0 || cfg.Hours.Close != 24 || cfg.Hours.Location.String() != "America/Sao_Paulo" {
		t.Fatalf("unexpected hours: %+v", cfg.Hours)
	}
	if cfg.Storage.Sessions != StoreMemory || cfg.UsesDynamoDB() {
		t.Fatalf("expected memory stores by default: %+v", cfg.Storage)
	}
	if cfg.Transport != TransportTelegram || cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected transport/http: %s %s", cfg.Transport, cfg.HTTP.Addr)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envOf(map[string]string{
		"BACKEND_BASE_URL":      "http://localhost:3000",
		"CHAT_TRANSPORT":        "Webhook",
		"CATALOG_ENDPOINTS":     "/a, /b",
		"POSTAL_TIMEOUT":        "2",
		"ORDER_TIMEOUT":         "1500ms",
		"HANDOFF_OPERATORS":     "5511999, 5511888",
		"BUSINESS_OPEN_HOUR":    "8",
		"BUSINESS_CLOSE_HOUR":   "18",
		"SESSION_STORE":         "pebble",
		"ORDER_STORE":           "dynamodb",
		"PAYMENT_GATEWAY_MOCK":  "true",
		"CATALOG_IMAGES":        "img/1.png,img/2.png",
		"DISPATCHER_QUEUE_SIZE": "8",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:3000" || cfg.Transport != TransportWebhook {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Backend.CatalogEndpoints) != 2 || cfg.Backend.CatalogEndpoints[1] != "/b" {
		t.Fatalf("unexpected endpoints: %v", cfg.Backend.CatalogEndpoints)
	}
	if cfg.Postal.Timeout != 2*time.Second || cfg.Backend.OrderTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected timeouts: %v %v", cfg.Postal.Timeout, cfg.Backend.OrderTimeout)
	}
	if len(cfg.Ops.Operators) != 2 || cfg.Ops.Operators[1] != "5511888" {
		t.Fatalf("unexpected operators: %v", cfg.Ops.Operators)
	}
	if !cfg.UsesDynamoDB() || cfg.Storage.Sessions != StorePebble || !cfg.Payments.Mock {
		t.Fatalf("unexpected storage/payments: %+v %+v", cfg.Storage, cfg.Payments)
	}
	if len(cfg.CatalogImages) != 2 || cfg.Dispatcher.QueueSize != 8 {
		t.Fatalf("unexpected images/queue: %v %d", cfg.CatalogImages, cfg.Dispatcher.QueueSize)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{"BACKEND_BASE_URL": "x", "TELEGRAM_BOT_TOKEN": "t"}
	}
	cases := []struct {
		name string
		set  map[string]string
		want error
	}{
		{"missing backend", map[string]string{"BACKEND_BASE_URL": ""}, ErrMissingBackendURL},
		{"missing token", map[string]string{"TELEGRAM_BOT_TOKEN": ""}, ErrMissingTelegramToken},
		{"bad number", map[string]string{"BUSINESS_OPEN_HOUR": "oito"}, ErrInvalidValue},
		{"bad duration", map[string]string{"POSTAL_TIMEOUT": "soon"}, ErrInvalidValue},
		{"bad bool", map[string]string{"PEBBLE_SYNC": "talvez"}, ErrInvalidValue},
		{"bad store", map[string]string{"SESSION_STORE": "redis"}, ErrInvalidValue},
		{"pebble handoffs", map[string]string{"HANDOFF_STORE": "pebble"}, ErrInvalidValue},
		{"bad hours", map[string]string{"BUSINESS_CLOSE_HOUR": "25"}, ErrInvalidValue},
		{"bad timezone", map[string]string{"BUSINESS_TIMEZONE": "Mars/Base"}, ErrInvalidValue},
		{"bad transport", map[string]string{"CHAT_TRANSPORT": "whatsapp"}, ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := base()
			for k, v := range tc.set {
				env[k] = v
			}
			if _, err := LoadFrom(envOf(env)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("does not override existing env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("ORC_TEST_A=file\nORC_TEST_B=file\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		t.Setenv("ORC_TEST_A", "process")
		t.Setenv("ORC_TEST_B", "")
		os.Unsetenv("ORC_TEST_B")

		if err := LoadEnvFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("ORC_TEST_A"); got != "process" {
			t.Fatalf("expected process value kept, got %s", got)
		}
		if got := os.Getenv("ORC_TEST_B"); got != "file" {
			t.Fatalf("expected file value, got %s", got)
		}
		os.Unsetenv("ORC_TEST_B")
	})
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"api.com":              "https://api.com",
		" http://api.com/ ":    "http://api.com",
		"https://api.com/v1//": "https://api.com/v1",
	}
	for in, want := range cases {
		if got := NormalizeBaseURL(in); got != want {
			t.Fatalf("NormalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
