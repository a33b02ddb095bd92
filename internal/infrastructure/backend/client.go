package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

const (
	DefaultTimeout = 10 * time.Second
	ordersPath     = "/pedido"
	customersPath  = "/cadastro"
	maxErrorBody   = 2048
)

var (
	DefaultCatalogEndpoints = []string{"/produtos", "/ensacados", "/cereais"}

	ErrCatalogUnavailable = errors.New("every catalog endpoint failed")
	ErrEmptyOrder         = errors.New("no order records to submit")
)

// StatusError is a non-2xx backend answer.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API %s respondeu %d: %s", e.Path, e.Status, e.Body)
}

type Config struct {
	BaseURL          string
	CatalogEndpoints []string
	Timeout          time.Duration
}

// Client talks to the order intake backend: catalog reads, order lines and
// customer upserts.
type Client struct {
	baseURL   string
	endpoints []string
	http      *http.Client
}

var (
	_ interfaces.ICatalogSource = (*Client)(nil)
	_ interfaces.IOrderBackend  = (*Client)(nil)
)

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	endpoints := cfg.CatalogEndpoints
	if len(endpoints) == 0 {
		endpoints = DefaultCatalogEndpoints
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		endpoints: endpoints,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchCatalog concatenates the arrays returned by every endpoint. A failing
// endpoint or a non-array body is skipped; the call fails only when no
// endpoint answered.
func (c *Client) FetchCatalog(ctx context.Context) ([]map[string]any, error) {
	var (
		all      []map[string]any
		answered int
		lastErr  error
	)
	for _, ep := range c.endpoints {
		records, err := c.getRecords(ctx, ep)
		if err != nil {
			log.Printf("[catalog][backend] endpoint failed path=%s err=%v", ep, err)
			lastErr = err
			continue
		}
		answered++
		all = append(all, records...)
	}
	if answered == 0 {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, lastErr)
	}
	log.Printf("[catalog][backend] fetched records=%d endpoints=%d", len(all), answered)
	return all, nil
}

func (c *Client) getRecords(ctx context.Context, path string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, statusError(path, resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	arr, ok := raw.([]any)
	if !ok {
		log.Printf("[catalog][backend] non-array body ignored path=%s", path)
		return nil, nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// SubmitOrders posts every record in one request.
func (c *Client) SubmitOrders(ctx context.Context, records []entities.OrderRecord) error {
	if len(records) == 0 {
		return ErrEmptyOrder
	}
	log.Printf("[order][backend] POST %s records=%d", ordersPath, len(records))
	body, err := c.post(ctx, ordersPath, records)
	if err != nil {
		log.Printf("[order][backend] submit failed err=%v", err)
		return err
	}
	log.Printf("[order][backend] submit ok response=%s", truncate(body, 256))
	return nil
}

// UpsertCustomer creates the customer when absent. The backend may answer
// an existing customer with an error status; callers treat it as advisory.
func (c *Client) UpsertCustomer(ctx context.Context, customer entities.CustomerRecord) error {
	if strings.TrimSpace(customer.Name) == "" {
		customer.Name = "Sem Nome"
	}
	if _, err := c.post(ctx, customersPath, customer); err != nil {
		log.Printf("[order][backend] customer upsert failed name=%s err=%v", customer.Name, err)
		return err
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, statusError(path, resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
}

func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
