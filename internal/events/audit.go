package events

import (
	"context"
	"log/slog"
	"strings"
)

// AuditHandler writes one structured log line per booking event. Unknown
// event types are logged at Warn and still acknowledged.
func AuditHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, event BookingEvent) error {
		attrs := []any{
			"type", event.Type,
			"booking_code", event.BookingCode,
			"screening_id", event.ScreeningID,
			"seats", strings.Join(event.Seats, ","),
			"total_price", event.TotalPrice.String(),
			"status", event.Status,
			"occurred_at", event.OccurredAt,
		}

		switch event.Type {
		case TypeBookingConfirmed:
			logger.InfoContext(ctx, "booking confirmed", attrs...)
		case TypeBookingCancelled:
			logger.InfoContext(ctx, "booking cancelled", attrs...)
		case TypeBookingUpdated:
			logger.InfoContext(ctx, "booking updated", attrs...)
		default:
			logger.WarnContext(ctx, "unknown booking event", attrs...)
		}

		return nil
	}
}
