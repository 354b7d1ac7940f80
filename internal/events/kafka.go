package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher needs at least one broker")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  queueName(topic),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}

	return &KafkaPublisher{writer: w}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// keyed by booking code so events of one booking stay ordered
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingCode),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type KafkaConsumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	if groupID == "" {
		groupID = "cinema-booking-worker"
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    queueName(topic),
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &KafkaConsumer{reader: r, logger: slog.Default()}
}

func (c *KafkaConsumer) WithLogger(logger *slog.Logger) *KafkaConsumer {
	c.logger = logger
	return c
}

// Run commits each message after the handler returns, whether or not it
// succeeded, so a poison message cannot block the partition.
func (c *KafkaConsumer) Run(ctx context.Context, handler Handler) error {
	backoff := time.Second

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Warn("failed to fetch message", "error", err, "retry_in", backoff)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}

		backoff = time.Second

		if err := handleDelivery(ctx, msg.Value, handler); err != nil {
			c.logger.Error(
				"failed to handle booking event",
				"error", err,
				"partition", msg.Partition,
				"offset", msg.Offset,
			)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.Warn("failed to commit message", "error", err, "offset", msg.Offset)
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
