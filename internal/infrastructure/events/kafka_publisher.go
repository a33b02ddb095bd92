package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultOrderTopic       = "orcamento.orders.submitted"
	EventTypeOrderSubmitted = "OrderSubmitted"
	defaultWriteTimeout     = 5 * time.Second
)

// OrderSubmittedEvent is the message value. Key is the chat id so one
// chat's events stay ordered on a partition.
type OrderSubmittedEvent struct {
	EventID      string                 `json:"event_id"`
	Type         string                 `json:"type"`
	OccurredAt   time.Time              `json:"occurred_at"`
	SubmissionID string                 `json:"submission_id"`
	ChatID       string                 `json:"chat_id"`
	Channel      string                 `json:"channel"`
	CustomerName string                 `json:"customer_name,omitempty"`
	Attempts     int                    `json:"attempts"`
	Records      []entities.OrderRecord `json:"records"`
}

// messageWriter abstracts kafka.Writer for tests.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
	now     func() time.Time
}

var _ interfaces.IOrderEventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher writes to topic on the comma separated brokers.
func NewKafkaPublisher(brokers string, topic string) *KafkaPublisher {
	if strings.TrimSpace(topic) == "" {
		topic = DefaultOrderTopic
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(SplitBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	log.Printf("[events][kafka] publisher ready topic=%s brokers=%s", topic, brokers)
	return newKafkaPublisher(w)
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: defaultWriteTimeout, now: time.Now}
}

func (p *KafkaPublisher) PublishOrderSubmitted(ctx context.Context, s entities.OrderSubmission) error {
	ev := OrderSubmittedEvent{
		EventID:      uuid.NewString(),
		Type:         EventTypeOrderSubmitted,
		OccurredAt:   p.now().UTC(),
		SubmissionID: s.ID,
		ChatID:       s.ChatID,
		Channel:      s.Channel,
		CustomerName: s.CustomerName,
		Attempts:     s.Attempts,
		Records:      s.Records,
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(s.ChatID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeOrderSubmitted)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write submission_id=%s: %w", s.ID, err)
	}
	log.Printf("[events][kafka] published submission_id=%s event_id=%s", s.ID, ev.EventID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func SplitBrokers(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
