package app

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/ticket"
)

// GetBookingQRCode renders the QR image for an existing booking. The image is
// derived on demand and never stored.
func (app *Application) GetBookingQRCode(w http.ResponseWriter, r *http.Request, code string) {
	booking, ok := app.findBooking(w, r, code)
	if !ok {
		return
	}

	payload := ticket.NewQRPayload(booking.Code, app.config.CinemaName, time.Now())

	png, err := ticket.QRCodePNG(payload, ticket.DefaultQRSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (app *Application) GetBookingQRCodeImage(w http.ResponseWriter, r *http.Request, code string) {
	app.GetBookingQRCode(w, r, code)
}

func (app *Application) GetTicketPDF(w http.ResponseWriter, r *http.Request, code string) {
	booking, ok := app.findBooking(w, r, code)
	if !ok {
		return
	}

	if booking.Screening == nil {
		app.serverErrorResponse(w, r, fmt.Errorf("booking %s loaded without its screening", booking.Code))
		return
	}

	payload := ticket.NewQRPayload(booking.Code, app.config.CinemaName, time.Now())

	png, err := ticket.QRCodePNG(payload, ticket.DefaultQRSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	pdf, err := ticket.RenderPDF(ticket.Details{
		BookingCode: booking.Code,
		Cinema:      app.config.CinemaName,
		MovieTitle:  booking.Screening.MovieTitle,
		HallName:    booking.Screening.HallName,
		Date:        booking.Screening.Date,
		StartTime:   booking.Screening.StartTime,
		Seats:       booking.Seats,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
		QRCodePNG:   png,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"ticket-%s.pdf\"", booking.Code))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
