package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier implements ports.NotificationService on a Kafka topic.
type KafkaNotifier struct {
	writer  messageWriter
	logger  *slog.Logger
	timeout time.Duration
}

// NewKafkaNotifier writes to topic on brokers. Messages of one audience share
// a key and therefore a partition, so a user sees them in order.
func NewKafkaNotifier(brokers []string, topic string, timeout time.Duration, logger *slog.Logger) *KafkaNotifier {
	return newKafkaNotifier(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, timeout, logger)
}

func newKafkaNotifier(w messageWriter, timeout time.Duration, logger *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer:  w,
		logger:  logger.With("component", "kafka_notifier"),
		timeout: timeout,
	}
}

func (k *KafkaNotifier) Send(ctx context.Context, n ports.Notification) error {
	env, err := newEnvelope(n, time.Now())
	if err != nil {
		return err
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(env.key()),
		Value: value,
		Time:  env.SentAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(env.Type)},
			{Key: "priority", Value: []byte(env.Priority)},
		},
	}
	if err = k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish notification %s: %w", env.ID, err)
	}

	k.logger.DebugContext(ctx, "Notification published", "notification_id", env.ID, "type", env.Type)
	return nil
}

func (k *KafkaNotifier) SendToUser(ctx context.Context, userID kernel.UUID, n ports.Notification) error {
	return k.Send(ctx, toUser(n, userID))
}

func (k *KafkaNotifier) SendToAdmins(ctx context.Context, n ports.Notification) error {
	return k.Send(ctx, toAdmins(n))
}

func (k *KafkaNotifier) Broadcast(ctx context.Context, n ports.Notification) error {
	return k.Send(ctx, toEveryone(n))
}

// Close flushes pending writes.
func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
