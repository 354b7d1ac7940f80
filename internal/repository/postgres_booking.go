package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const bookingColumns = `id, screening_id, booking_code, seats, total_price, status, created_at, updated_at`

const bookingWithScreeningColumns = `
	b.id, b.screening_id, b.booking_code, b.seats, b.total_price, b.status, b.created_at, b.updated_at,
	s.id, s.movie_id, s.cinema_hall_id, s.date, to_char(s.start_time, 'HH24:MI'), s.created_at, s.updated_at,
	m.title, m.duration, h.name`

const bookingJoins = `
	FROM bookings b
	JOIN screenings s ON s.id = b.screening_id
	JOIN movies m ON m.id = s.movie_id
	JOIN cinema_halls h ON h.id = s.cinema_hall_id`

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return insertBooking(ctx, p.db, booking)
}

func (p *PostgresBookingRepository) CreateIfSeatsAvailable(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := checkSeatsLocked(ctx, tx, booking)
		if err != nil {
			return err
		}

		return insertBooking(ctx, tx, booking)
	})
}

func (p *PostgresBookingRepository) UpdateStatusIfSeatsAvailable(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := checkSeatsLocked(ctx, tx, booking)
		if err != nil {
			return err
		}

		return updateStatus(ctx, tx, booking)
	})
}

// checkSeatsLocked takes a row lock on the screening, serialising every
// seat check of that screening until the transaction ends, and verifies no
// other confirmed booking holds the seats.
func checkSeatsLocked(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	var id int
	err := tx.QueryRow(ctx, `SELECT id FROM screenings WHERE id = $1 FOR UPDATE`, booking.ScreeningID).Scan(&id)
	if err != nil {
		return translateError(err)
	}

	booked, err := bookedSeats(ctx, tx, booking.ScreeningID, booking.ID)
	if err != nil {
		return err
	}

	return domain.CheckSeatsAvailable(booking.Seats, booked)
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	filters domain.BookingFilters) ([]*domain.Booking, *domain.Metadata, error) {

	query := fmt.Sprintf(`SELECT count(*) OVER(), %s
		%s
		WHERE ($1 = 0 OR b.screening_id = $1)
			AND ($2 = '' OR b.status = $2)
		ORDER BY b.%s %s, b.id ASC
		LIMIT $3 OFFSET $4`, bookingWithScreeningColumns, bookingJoins, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(
		ctx,
		query,
		filters.ScreeningID,
		string(filters.Status),
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	bookings := []*domain.Booking{}

	for rows.Next() {
		booking := &domain.Booking{Screening: &domain.Screening{}}

		err := rows.Scan(append([]any{&totalRecords}, bookingWithScreeningTargets(booking)...)...)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingWithScreeningColumns + bookingJoins + ` WHERE b.booking_code = $1`

	booking := &domain.Booking{Screening: &domain.Screening{}}

	err := p.db.QueryRow(ctx, query, code).Scan(bookingWithScreeningTargets(booking)...)
	if err != nil {
		return nil, translateError(err)
	}

	return booking, nil
}

func (p *PostgresBookingRepository) UpdateStatus(ctx context.Context, booking *domain.Booking) error {
	return updateStatus(ctx, p.db, booking)
}

func (p *PostgresBookingRepository) DeleteByCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `DELETE FROM bookings WHERE booking_code = $1 RETURNING ` + bookingColumns

	booking, err := scanBooking(p.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, translateError(err)
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetBookedSeats(ctx context.Context, screeningID int) ([]string, error) {
	return bookedSeats(ctx, p.db, screeningID, 0)
}

// bookedSeats merges the seats of every confirmed booking of the screening
// except excludeID, which is ignored when zero.
func bookedSeats(ctx context.Context, q querier, screeningID, excludeID int) ([]string, error) {
	query := `
		SELECT seat.value
		FROM bookings b
		CROSS JOIN LATERAL jsonb_array_elements_text(b.seats) WITH ORDINALITY AS seat(value, ord)
		WHERE b.screening_id = $1 AND b.status = 'confirmed' AND b.id <> $2
		ORDER BY b.id, seat.ord
	`

	rows, err := q.Query(ctx, query, screeningID, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []string{}

	for rows.Next() {
		var seat string

		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func insertBooking(ctx context.Context, q querier, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (screening_id, booking_code, seats, total_price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(
		ctx,
		query,
		booking.ScreeningID,
		booking.Code,
		booking.Seats,
		booking.TotalPrice,
		string(booking.Status),
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if isPgError(err, pgerrcode.UniqueViolation) {
		return domain.ErrBookingCodeTaken
	}

	return translateError(err)
}

func updateStatus(ctx context.Context, q querier, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE booking_code = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, string(booking.Status), booking.Code).Scan(&booking.UpdatedAt)

	return translateError(err)
}

// bookingWithScreeningTargets lists scan destinations matching
// bookingWithScreeningColumns. booking.Screening must not be nil.
func bookingWithScreeningTargets(booking *domain.Booking) []any {
	s := booking.Screening

	return []any{
		&booking.ID,
		&booking.ScreeningID,
		&booking.Code,
		&booking.Seats,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&s.ID,
		&s.MovieID,
		&s.HallID,
		&s.Date,
		&s.StartTime,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.MovieTitle,
		&s.MovieDuration,
		&s.HallName,
	}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.ScreeningID,
		&booking.Code,
		&booking.Seats,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
