package domain

import (
	"context"
	"strings"
	"time"
)

type Movie struct {
	ID        int
	Title     string
	PosterUrl *string
	Synopsis  string
	Duration  int
	Origin    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MovieFilters struct {
	Term string
	Sort string
}

func (f MovieFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f MovieFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
