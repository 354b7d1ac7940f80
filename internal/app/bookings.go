package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const (
	DefaultPage        = 1
	DefaultPageSize    = 20
	DefaultBookingSort = "-created_at"

	// maxCodeAttempts bounds the retries after a booking code collision.
	maxCodeAttempts = 3
)

func (app *Application) ListBookings(w http.ResponseWriter, r *http.Request, params api.ListBookingsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), toBookingFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: make([]api.BookingResponse, len(bookings)),
		Metadata: toApiMetadata(metadata),
	}

	for i, booking := range bookings {
		resp.Bookings[i] = toBookingResponse(booking)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingFilters(params api.ListBookingsParams) domain.BookingFilters {
	filters := domain.BookingFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     DefaultBookingSort,
		},
	}

	if params.ScreeningId != nil {
		filters.ScreeningID = *params.ScreeningId
	}
	if params.Status != nil {
		filters.Status = domain.BookingStatus(*params.Status)
	}
	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	return filters
}

// CreateBooking books seats of a screening. By default the seat check and
// the insert are separate statements; with atomic booking enabled both run in
// one transaction holding a lock on the screening.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	logger = logger.With("screening_id", input.ScreeningId, "seats", input.Seats)

	screening, err := app.screeningRepo.GetById(r.Context(), input.ScreeningId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.fieldErrorsResponse(w, r, api.ValidationError{Field: "screening_id", Issue: ErrDoesNotExist})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), screening.HallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ok := app.checkBookingTotal(w, r, hall, input.Seats, *input.TotalPrice)
	if !ok {
		return
	}

	if !app.config.Booking.Atomic {
		booked, err := app.bookingRepo.GetBookedSeats(r.Context(), screening.ID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		err = domain.CheckSeatsAvailable(input.Seats, booked)
		if err != nil {
			app.seatConflictResponse(w, r, err)
			return
		}
	}

	booking := &domain.Booking{
		ScreeningID: screening.ID,
		Seats:       input.Seats,
		TotalPrice:  *input.TotalPrice,
		Status:      domain.BookingConfirmed,
		Screening:   screening,
	}

	err = app.insertBooking(r.Context(), booking)
	if err != nil {
		var conflictErr *domain.SeatConflictError

		switch {
		case errors.As(err, &conflictErr):
			app.seatConflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrReferenceNotFound):
			app.fieldErrorsResponse(w, r, api.ValidationError{Field: "screening_id", Issue: ErrDoesNotExist})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.bookingsCreated.Add(
		r.Context(),
		1,
		otelmetric.WithAttributes(attribute.Bool("atomic", app.config.Booking.Atomic)),
	)

	logger.Info("booking created", "booking_code", booking.Code, "total_price", booking.TotalPrice.String())

	app.publishBookingEvent(r.Context(), events.TypeBookingConfirmed, booking)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/bookings/%s", booking.Code))

	resp := toBookingResponse(booking)
	resp.QRCodeUrl = qrCodeURL(booking.Code)

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// insertBooking stores the booking under a fresh code, retrying when the
// generated code is already in use.
func (app *Application) insertBooking(ctx context.Context, booking *domain.Booking) error {
	var err error

	for range maxCodeAttempts {
		booking.Code, err = domain.NewBookingCode()
		if err != nil {
			return err
		}

		if app.config.Booking.Atomic {
			err = app.bookingRepo.CreateIfSeatsAvailable(ctx, booking)
		} else {
			err = app.bookingRepo.Create(ctx, booking)
		}

		if !errors.Is(err, domain.ErrBookingCodeTaken) {
			return err
		}

		app.loggerFromContext(ctx).Warn("booking code collision, regenerating", "booking_code", booking.Code)
	}

	return err
}

// checkBookingTotal compares the client supplied total with the seat grid
// prices. Mismatches are rejected under strict pricing and only logged otherwise.
func (app *Application) checkBookingTotal(
	w http.ResponseWriter,
	r *http.Request,
	hall *domain.Hall,
	seats []string,
	total decimal.Decimal) bool {

	logger := app.contextGetLogger(r)

	expected, err := domain.ResolveSeatGrid(hall, nil).Total(seats)

	if !app.config.Booking.StrictPricing {
		switch {
		case err != nil:
			logger.Warn("could not price requested seats", "error", err)
		case !expected.Equal(total):
			logger.Warn("client total differs from seat prices", "total_price", total.String(), "expected", expected.String())
		}

		return true
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownSeat), errors.Is(err, domain.ErrInvalidSeatID):
			app.fieldErrorsResponse(w, r, api.ValidationError{Field: "seats", Issue: err.Error()})
		default:
			app.serverErrorResponse(w, r, err)
		}

		return false
	}

	if !expected.Equal(total) {
		logger.Warn("rejected booking with mismatching total", "total_price", total.String(), "expected", expected.String())
		app.fieldErrorsResponse(w, r, api.ValidationError{
			Field: "total_price",
			Issue: fmt.Sprintf("%s, expected %s", domain.ErrPriceMismatch, expected.String()),
		})
		return false
	}

	return true
}

func (app *Application) seatConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.metrics.bookingConflicts.Add(r.Context(), 1)

	app.contextGetLogger(r).Warn("seat conflict", "error", err)

	app.conflictResponse(w, r, err.Error())
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request, code string) {
	booking, ok := app.findBooking(w, r, code)
	if !ok {
		return
	}

	resp := toBookingResponse(booking)
	resp.QRCodeUrl = qrCodeURL(booking.Code)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateBookingStatus moves a booking between pending, confirmed and cancelled.
// Confirming re-checks that none of its seats were taken in the meantime.
func (app *Application) UpdateBookingStatus(w http.ResponseWriter, r *http.Request, code string) {
	logger := app.contextGetLogger(r)

	var input api.UpdateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking, ok := app.findBooking(w, r, code)
	if !ok {
		return
	}

	status := domain.BookingStatus(input.Status)
	previous := booking.Status

	err = app.changeBookingStatus(r.Context(), booking, status)
	if err != nil {
		var conflictErr *domain.SeatConflictError

		switch {
		case errors.As(err, &conflictErr):
			app.seatConflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking status updated", "booking_code", booking.Code, "from", previous, "to", booking.Status)

	if previous != booking.Status {
		app.publishBookingEvent(r.Context(), eventTypeForStatus(booking.Status), booking)
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// changeBookingStatus stores the new status. Confirming requires the seats to
// still be free; with atomic booking the check and the update share a
// transaction holding the screening lock.
func (app *Application) changeBookingStatus(ctx context.Context, booking *domain.Booking, status domain.BookingStatus) error {
	confirming := status == domain.BookingConfirmed && booking.Status != domain.BookingConfirmed

	booking.Status = status

	if confirming && app.config.Booking.Atomic {
		return app.bookingRepo.UpdateStatusIfSeatsAvailable(ctx, booking)
	}

	if confirming {
		booked, err := app.bookingRepo.GetBookedSeats(ctx, booking.ScreeningID)
		if err != nil {
			return err
		}

		err = domain.CheckSeatsAvailable(booking.Seats, booked)
		if err != nil {
			return err
		}
	}

	return app.bookingRepo.UpdateStatus(ctx, booking)
}

// DeleteBooking cancels a booking by removing it, which frees its seats.
func (app *Application) DeleteBooking(w http.ResponseWriter, r *http.Request, code string) {
	logger := app.contextGetLogger(r)

	booking, err := app.bookingRepo.DeleteByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking cancelled", "booking_code", booking.Code, "screening_id", booking.ScreeningID)

	booking.Status = domain.BookingCancelled
	app.publishBookingEvent(r.Context(), events.TypeBookingCancelled, booking)

	err = app.writeMessage(w, http.StatusOK, "Booking cancelled successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) findBooking(w http.ResponseWriter, r *http.Request, code string) (*domain.Booking, bool) {
	booking, err := app.bookingRepo.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return booking, true
}

// publishBookingEvent hands the event to the broker in the background.
// Publishing failures are logged and never affect the response.
func (app *Application) publishBookingEvent(ctx context.Context, eventType string, booking *domain.Booking) {
	if app.publisher == nil {
		return
	}

	event := events.NewBookingEvent(eventType, booking, time.Now())

	app.background(ctx, func(ctx context.Context) {
		logger := app.loggerFromContext(ctx)

		err := app.publisher.Publish(ctx, event)
		if err != nil {
			logger.Error("failed to publish booking event", "event_type", event.Type, "booking_code", event.BookingCode, "error", err)
			return
		}

		logger.Debug("booking event published", "event_type", event.Type, "booking_code", event.BookingCode)
	})
}

func eventTypeForStatus(status domain.BookingStatus) string {
	switch status {
	case domain.BookingConfirmed:
		return events.TypeBookingConfirmed
	case domain.BookingCancelled:
		return events.TypeBookingCancelled
	default:
		return events.TypeBookingUpdated
	}
}

func qrCodeURL(code string) string {
	return fmt.Sprintf("/qr-code/booking/%s/image", code)
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	resp := api.BookingResponse{
		Id:          booking.ID,
		ScreeningId: booking.ScreeningID,
		BookingCode: booking.Code,
		Seats:       booking.Seats,
		TotalPrice:  booking.TotalPrice,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}

	if booking.Screening != nil {
		screening := toScreeningResponse(booking.Screening)
		resp.Screening = &screening
	}

	return resp
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
