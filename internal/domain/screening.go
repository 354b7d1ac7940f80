package domain

import (
	"context"
	"time"
)

const DateFormat = "2006-01-02"

type Screening struct {
	ID        int
	MovieID   int
	HallID    int
	Date      time.Time
	StartTime string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by read queries only.
	MovieTitle    string
	MovieDuration int
	HallName      string
}

type ScreeningFilters struct {
	Date    *time.Time
	MovieID int
	HallID  int
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *Screening) error
	GetAll(ctx context.Context, filters ScreeningFilters) ([]*Screening, error)
	GetById(ctx context.Context, id int) (*Screening, error)
	Update(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, id int) error
	// SlotTaken reports whether another screening occupies exactly the given
	// hall, calendar date and start time. excludeID is ignored when zero.
	SlotTaken(ctx context.Context, hallID int, date time.Time, startTime string, excludeID int) (bool, error)
}
