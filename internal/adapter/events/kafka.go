package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"collabhub/internal/core/domain"
)

// messageWriter is the subset of *kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes notifications to a single topic. Messages are
// keyed by campaign so all outcomes of one campaign keep their order on a
// partition; the notification id travels as a header for deduplication.
// Each Notify call flushes its own message so the caller's deadline bounds
// the write rather than the writer's batching window.
type KafkaNotifier struct {
	writer messageWriter
}

const batchTimeout = 5 * time.Millisecond

func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka notifier requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka notifier requires a topic")
	}
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			BatchSize:    1,
			BatchTimeout: batchTimeout,
		},
	}, nil
}

func (p *KafkaNotifier) Notify(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	key := n.CampaignID
	if key == "" {
		key = n.RecipientID
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  n.Timestamp,
		Headers: []kafka.Header{
			{Key: "notification-id", Value: []byte(n.ID)},
			{Key: "category", Value: []byte(n.Category)},
		},
	})
}

func (p *KafkaNotifier) Close() error {
	return p.writer.Close()
}
