package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const movieColumns = `id, title, poster_url, synopsis, duration, origin, created_at, updated_at`

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, poster_url, synopsis, duration, origin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.PosterUrl,
		movie.Synopsis,
		movie.Duration,
		movie.Origin,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
}

// GetAll lists movies. The sort column comes from a validated whitelist.
func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM movies
		WHERE ($1 = '' OR title ILIKE '%%' || $1 || '%%' OR origin ILIKE '%%' || $1 || '%%')
		ORDER BY %s %s, id ASC`, movieColumns, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, poster_url = $2, synopsis = $3, duration = $4, origin = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.PosterUrl,
		movie.Synopsis,
		movie.Duration,
		movie.Origin,
		movie.ID,
	).Scan(&movie.UpdatedAt)

	return translateError(err)
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.PosterUrl,
		&movie.Synopsis,
		&movie.Duration,
		&movie.Origin,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}
