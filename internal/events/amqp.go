package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes persistent messages to a durable queue through the
// default exchange. The connection is re-established lazily after a failure.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, queue: queueName(queue)}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("amqp channel open: %w", err)
	}

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("amqp queue declare: %w", err)
	}

	p.conn = conn
	p.ch = ch

	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		MessageId:    event.BookingCode,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		p.closeLocked()
		return fmt.Errorf("amqp publish: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() error {
	var errs []error

	if p.ch != nil {
		errs = append(errs, ignoreClosed(p.ch.Close()))
		p.ch = nil
	}

	if p.conn != nil {
		errs = append(errs, ignoreClosed(p.conn.Close()))
		p.conn = nil
	}

	return errors.Join(errs...)
}

// AMQPConsumer reads the booking queue and reconnects with exponential
// backoff until its context is cancelled.
type AMQPConsumer struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAMQPConsumer(url, queue string) *AMQPConsumer {
	return &AMQPConsumer{url: url, queue: queueName(queue), logger: slog.Default()}
}

func (c *AMQPConsumer) WithLogger(logger *slog.Logger) *AMQPConsumer {
	c.logger = logger
	return c
}

func (c *AMQPConsumer) Run(ctx context.Context, handler Handler) error {
	backoff := time.Second

	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("failed to dial broker", "error", err, "retry_in", backoff)

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

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		err = c.consume(ctx, conn, handler)

		conn.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		c.logger.Warn("consume loop ended, reconnecting", "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
}

func (c *AMQPConsumer) consume(ctx context.Context, conn *amqp.Connection, handler Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(50, 0, false); err != nil {
		c.logger.Warn("failed to set QoS", "error", err)
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range deliveries {
		if err := handleDelivery(ctx, d.Body, handler); err != nil {
			c.logger.Error("failed to handle booking event", "error", err)
			// rejected without requeue to avoid redelivery loops
			_ = d.Nack(false, false)
			continue
		}

		_ = d.Ack(false)
	}

	return errors.New("deliveries channel closed")
}

func (c *AMQPConsumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	return ignoreClosed(c.conn.Close())
}

func handleDelivery(ctx context.Context, body []byte, handler Handler) error {
	ev, err := decodeEvent(body)
	if err != nil {
		return err
	}

	return handler(ctx, ev)
}

func queueName(name string) string {
	if name == "" {
		return DefaultTopic
	}

	return name
}

func ignoreClosed(err error) error {
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}

	return err
}
