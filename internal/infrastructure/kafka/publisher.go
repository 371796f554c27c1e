package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"aquaria-partner-portal/internal/domain/quote"
)

var (
	_ quote.EventPublisher = (*QuotePublisher)(nil)
	_ quote.EventPublisher = Nop{}
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// QuotePublisher writes quote lifecycle events as JSON, keyed by quote number
// so the events of one quote stay ordered within a partition.
type QuotePublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewQuotePublisher(brokers []string, topic string) *QuotePublisher {
	return &QuotePublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		timeout: 5 * time.Second,
	}
}

func (k *QuotePublisher) Publish(ctx context.Context, e quote.Event) error {
	msg, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.QuoteNumber),
		Value: msg,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}); err != nil {
		return fmt.Errorf("publish %s %s: %w", e.Type, e.QuoteNumber, err)
	}
	return nil
}

func (k *QuotePublisher) Close() error { return k.writer.Close() }

// Nop drops events. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, quote.Event) error { return nil }
func (Nop) Close() error                               { return nil }
