package repository

import (
	"context"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const screeningSelect = `
	SELECT s.id, s.movie_id, s.cinema_hall_id, s.date, to_char(s.start_time, 'HH24:MI'),
		s.created_at, s.updated_at, m.title, m.duration, h.name
	FROM screenings s
	JOIN movies m ON m.id = s.movie_id
	JOIN cinema_halls h ON h.id = s.cinema_hall_id`

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	query := `
		INSERT INTO screenings (movie_id, cinema_hall_id, date, start_time)
		VALUES ($1, $2, $3, $4::text::time)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		screening.MovieID,
		screening.HallID,
		screening.Date,
		screening.StartTime,
	).Scan(&screening.ID, &screening.CreatedAt, &screening.UpdatedAt)

	return translateScreeningError(err)
}

func (p *PostgresScreeningRepository) GetAll(ctx context.Context, filters domain.ScreeningFilters) ([]*domain.Screening, error) {
	query := screeningSelect + `
		WHERE ($1::date IS NULL OR s.date = $1::date)
			AND ($2 = 0 OR s.movie_id = $2)
			AND ($3 = 0 OR s.cinema_hall_id = $3)
		ORDER BY s.date, s.start_time, s.id`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.MovieID, filters.HallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []*domain.Screening{}

	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, screening)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func (p *PostgresScreeningRepository) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	screening, err := scanScreening(p.db.QueryRow(ctx, screeningSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, translateError(err)
	}

	return screening, nil
}

func (p *PostgresScreeningRepository) Update(ctx context.Context, screening *domain.Screening) error {
	query := `
		UPDATE screenings
		SET movie_id = $1, cinema_hall_id = $2, date = $3, start_time = $4::text::time, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		screening.MovieID,
		screening.HallID,
		screening.Date,
		screening.StartTime,
		screening.ID,
	).Scan(&screening.UpdatedAt)

	return translateScreeningError(err)
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresScreeningRepository) SlotTaken(
	ctx context.Context,
	hallID int,
	date time.Time,
	startTime string,
	excludeID int) (bool, error) {

	query := `
		SELECT EXISTS (
			SELECT 1 FROM screenings
			WHERE cinema_hall_id = $1 AND date = $2 AND start_time = $3::text::time AND id <> $4
		)
	`

	var taken bool

	err := p.db.QueryRow(ctx, query, hallID, date, startTime, excludeID).Scan(&taken)
	if err != nil {
		return false, err
	}

	return taken, nil
}

func scanScreening(row pgx.Row) (*domain.Screening, error) {
	var screening domain.Screening

	err := row.Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.HallID,
		&screening.Date,
		&screening.StartTime,
		&screening.CreatedAt,
		&screening.UpdatedAt,
		&screening.MovieTitle,
		&screening.MovieDuration,
		&screening.HallName,
	)
	if err != nil {
		return nil, err
	}

	return &screening, nil
}

// translateScreeningError turns a race on the (hall, date, start time)
// constraint into the same error the pre-check reports.
func translateScreeningError(err error) error {
	if isPgError(err, pgerrcode.UniqueViolation) {
		return domain.ErrScheduleConflict
	}

	return translateError(err)
}
