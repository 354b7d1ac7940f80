package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxSeatsPerBooking = 6
	BookingCodePrefix  = "BK"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          int
	ScreeningID int
	Code        string
	Seats       []string
	TotalPrice  decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Screening is populated by read queries together with its movie and hall.
	Screening *Screening
}

type BookingFilters struct {
	ScreeningID int
	Status      BookingStatus
	Pagination
}

// SeatConflictError lists the requested seats that already belong to a
// confirmed booking of the same screening.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("the following seats are already booked: %s", strings.Join(e.Seats, ", "))
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatConflict
}

// FindSeatConflicts returns the requested seats present in booked, in the
// order they were requested.
func FindSeatConflicts(requested, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}

	var conflicts []string
	for _, s := range requested {
		if _, ok := taken[s]; ok {
			conflicts = append(conflicts, s)
		}
	}

	return conflicts
}

// CheckSeatsAvailable returns a *SeatConflictError when any requested seat is
// already booked.
func CheckSeatsAvailable(requested, booked []string) error {
	conflicts := FindSeatConflicts(requested, booked)
	if len(conflicts) > 0 {
		return &SeatConflictError{Seats: conflicts}
	}

	return nil
}

// NewBookingCode returns a short upper-case code such as BK0192F3A4B5C6D7E8F9A0B.
// The first twelve hex digits are the millisecond timestamp of a UUIDv7, the
// remainder comes from its random bits.
func NewBookingCode() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	h := strings.ReplaceAll(id.String(), "-", "")

	return BookingCodePrefix + strings.ToUpper(h[:12]+h[13:16]+h[17:21]), nil
}

type BookingRepository interface {
	// Create inserts the booking without inspecting existing bookings.
	Create(ctx context.Context, booking *Booking) error
	// CreateIfSeatsAvailable locks the screening, re-checks the confirmed seats
	// and inserts the booking in a single transaction.
	CreateIfSeatsAvailable(ctx context.Context, booking *Booking) error
	GetAll(ctx context.Context, filters BookingFilters) ([]*Booking, *Metadata, error)
	GetByCode(ctx context.Context, code string) (*Booking, error)
	UpdateStatus(ctx context.Context, booking *Booking) error
	// UpdateStatusIfSeatsAvailable locks the screening, re-checks the seats
	// confirmed by other bookings and updates the status in one transaction.
	UpdateStatusIfSeatsAvailable(ctx context.Context, booking *Booking) error
	DeleteByCode(ctx context.Context, code string) (*Booking, error)
	GetBookedSeats(ctx context.Context, screeningID int) ([]string, error)
}
