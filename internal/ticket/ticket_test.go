package ticket

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRPayload(t *testing.T) {
	now := time.Date(2025, 12, 1, 18, 0, 0, 123, time.FixedZone("CET", 3600))

	got := NewQRPayload("BK0123", "Cinema Paradiso", now)

	assert.Equal(t, QRPayload{
		BookingCode: "BK0123",
		Type:        "cinema_booking",
		Timestamp:   time.Date(2025, 12, 1, 17, 0, 0, 0, time.UTC),
		Cinema:      "Cinema Paradiso",
	}, got)
}

func TestQRCodePNG(t *testing.T) {
	data, err := QRCodePNG(NewQRPayload("BK0123", "Cinema", time.Now()), DefaultQRSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, DefaultQRSize, bounds.Dx())
	assert.Equal(t, DefaultQRSize, bounds.Dy())
}

func TestRenderPDF(t *testing.T) {
	qr, err := QRCodePNG(NewQRPayload("BK0123", "Cinema", time.Now()), 128)
	require.NoError(t, err)

	data, err := RenderPDF(Details{
		BookingCode: "BK0123",
		Cinema:      "Cinéma Lumière",
		MovieTitle:  "Amélie",
		HallName:    "Hall 1",
		Date:        time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		Seats:       []string{"1-1", "2-1"},
		TotalPrice:  decimal.NewFromInt(1300),
		Status:      "confirmed",
		QRCodePNG:   qr,
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output is not a PDF document")
}

func TestRenderPDFWithoutQRCode(t *testing.T) {
	data, err := RenderPDF(Details{BookingCode: "BK0123", Cinema: "Cinema"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
