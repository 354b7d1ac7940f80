package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-booking-system/internal/events"
)

// MockPublisher records published events in memory.
type MockPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
	Err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(_ context.Context, event events.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

func (m *MockPublisher) Events() []events.BookingEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]events.BookingEvent(nil), m.events...)
}
