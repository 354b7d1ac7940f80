// Package ticket renders booking confirmations as QR images and PDF tickets.
package ticket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skip2/go-qrcode"
)

const (
	QRPayloadType = "cinema_booking"
	DefaultQRSize = 250
)

// QRPayload is the document encoded in a booking QR code.
type QRPayload struct {
	BookingCode string    `json:"booking_code"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Cinema      string    `json:"cinema"`
}

func NewQRPayload(code, cinema string, now time.Time) QRPayload {
	return QRPayload{
		BookingCode: code,
		Type:        QRPayloadType,
		Timestamp:   now.UTC().Truncate(time.Second),
		Cinema:      cinema,
	}
}

// QRCodePNG encodes the payload as JSON into a size x size PNG.
func QRCodePNG(payload QRPayload, size int) ([]byte, error) {
	text, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(string(text), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR to PNG: %w", err)
	}

	return png, nil
}
