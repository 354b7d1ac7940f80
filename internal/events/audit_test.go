package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditHandler(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		wantLevel string
		wantMsg   string
	}{
		{"confirmed", TypeBookingConfirmed, "INFO", "booking confirmed"},
		{"cancelled", TypeBookingCancelled, "INFO", "booking cancelled"},
		{"updated", TypeBookingUpdated, "INFO", "booking updated"},
		{"unknown", "booking.refunded", "WARN", "unknown booking event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			ev := BookingEvent{
				Type:        tt.eventType,
				BookingCode: "BK0123456789ABCDEF012",
				ScreeningID: 3,
				Seats:       []string{"1-1", "1-2"},
				TotalPrice:  decimal.NewFromInt(1600),
				Status:      "confirmed",
				OccurredAt:  time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC),
			}

			err := AuditHandler(logger)(context.Background(), ev)
			require.NoError(t, err)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.wantMsg, line["msg"])
			assert.Equal(t, "BK0123456789ABCDEF012", line["booking_code"])
			assert.Equal(t, "1-1,1-2", line["seats"])
			assert.Equal(t, "1600", line["total_price"])
			assert.EqualValues(t, 3, line["screening_id"])
		})
	}
}
