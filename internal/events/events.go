// Package events publishes booking lifecycle events to a message broker and
// consumes them in the background worker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingUpdated   = "booking.updated"

	DefaultTopic = "cinema.bookings"
)

const (
	BrokerNone  = "none"
	BrokerAMQP  = "amqp"
	BrokerKafka = "kafka"
)

type BookingEvent struct {
	Type        string          `json:"type"`
	BookingCode string          `json:"booking_code"`
	ScreeningID int             `json:"screening_id"`
	Seats       []string        `json:"seats"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingCode: b.Code,
		ScreeningID: b.ScreeningID,
		Seats:       b.Seats,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		OccurredAt:  now.UTC(),
	}
}

func decodeEvent(body []byte) (BookingEvent, error) {
	var ev BookingEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return BookingEvent{}, fmt.Errorf("unmarshal booking event: %w", err)
	}

	if ev.Type == "" || ev.BookingCode == "" {
		return BookingEvent{}, fmt.Errorf("booking event is missing type or booking code")
	}

	return ev, nil
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// Handler processes one consumed event. Returning an error rejects the message.
type Handler func(ctx context.Context, event BookingEvent) error

type Consumer interface {
	Run(ctx context.Context, handler Handler) error
	Close() error
}

type Config struct {
	Broker       string
	AMQPURL      string
	KafkaBrokers []string
	Topic        string
	GroupID      string
}

func NewPublisher(cfg Config) (Publisher, error) {
	switch cfg.Broker {
	case "", BrokerNone:
		return NoopPublisher{}, nil
	case BrokerAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.Topic)
	case BrokerKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.Topic)
	default:
		return nil, fmt.Errorf("unknown event broker %q", cfg.Broker)
	}
}

func NewConsumer(cfg Config, logger *slog.Logger) (Consumer, error) {
	switch cfg.Broker {
	case BrokerAMQP:
		return NewAMQPConsumer(cfg.AMQPURL, cfg.Topic).WithLogger(logger), nil
	case BrokerKafka:
		return NewKafkaConsumer(cfg.KafkaBrokers, cfg.GroupID, cfg.Topic).WithLogger(logger), nil
	default:
		return nil, fmt.Errorf("event broker %q cannot be consumed", cfg.Broker)
	}
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
