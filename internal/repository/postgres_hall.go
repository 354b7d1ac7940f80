package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const hallColumns = `id, name, rows, seats_per_row, layout, standard_price, vip_price, is_active, created_at, updated_at`

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	layout, err := encodeLayout(hall.Layout)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cinema_halls (name, rows, seats_per_row, layout, standard_price, vip_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		hall.Name,
		hall.Rows,
		hall.SeatsPerRow,
		layout,
		hall.StandardPrice,
		hall.VIPPrice,
		hall.IsActive,
	).Scan(&hall.ID, &hall.CreatedAt, &hall.UpdatedAt)
}

func (p *PostgresHallRepository) GetAll(ctx context.Context, filters domain.HallFilters) ([]*domain.Hall, error) {
	query := `SELECT ` + hallColumns + `
		FROM cinema_halls
		WHERE (is_active OR NOT $1)
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, filters.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := []*domain.Hall{}

	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM cinema_halls WHERE id = $1`

	hall, err := scanHall(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}

	return hall, nil
}

func (p *PostgresHallRepository) Update(ctx context.Context, hall *domain.Hall) error {
	layout, err := encodeLayout(hall.Layout)
	if err != nil {
		return err
	}

	// an undecodable stored layout is kept as is unless a new one is supplied
	query := `
		UPDATE cinema_halls
		SET name = $1, rows = $2, seats_per_row = $3,
			layout = CASE WHEN $9 THEN layout ELSE $4 END,
			standard_price = $5, vip_price = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err = p.db.QueryRow(
		ctx,
		query,
		hall.Name,
		hall.Rows,
		hall.SeatsPerRow,
		layout,
		hall.StandardPrice,
		hall.VIPPrice,
		hall.IsActive,
		hall.ID,
		hall.LayoutMalformed,
	).Scan(&hall.UpdatedAt)

	return translateError(err)
}

// Delete removes the hall. Its screenings and their bookings go with it
// through ON DELETE CASCADE.
func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM cinema_halls WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanHall(row pgx.Row) (*domain.Hall, error) {
	var (
		hall      domain.Hall
		rawLayout []byte
	)

	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsPerRow,
		&rawLayout,
		&hall.StandardPrice,
		&hall.VIPPrice,
		&hall.IsActive,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	layout, err := domain.ParseLayout(rawLayout)
	if err != nil {
		hall.LayoutMalformed = true
	} else {
		hall.Layout = layout
	}

	return &hall, nil
}

func encodeLayout(layout domain.Layout) ([]byte, error) {
	if layout == nil {
		return nil, nil
	}

	return json.Marshal(layout)
}
