package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxHallRows        = 20
	MaxHallSeatsPerRow = 15
)

var (
	DefaultStandardPrice = decimal.NewFromInt(500)
	DefaultVIPPrice      = decimal.NewFromInt(800)

	// MaxPrice is the largest amount a NUMERIC(10, 2) column holds.
	MaxPrice = decimal.RequireFromString("99999999.99")
)

// ValidPrice reports whether d is a non-negative amount with at most two
// decimal places that fits the price columns.
func ValidPrice(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(MaxPrice) && d.Equal(d.Round(2))
}

type Hall struct {
	ID            int
	Name          string
	Rows          int
	SeatsPerRow   int
	Layout        Layout
	StandardPrice decimal.Decimal
	VIPPrice      decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// LayoutMalformed is set when the stored layout document could not be decoded.
	LayoutMalformed bool
}

// Validate checks the invariants that span several fields.
func (h *Hall) Validate() error {
	if h.Layout != nil && !h.Layout.Fits(h.Rows, h.SeatsPerRow) {
		return ErrInvalidLayout
	}

	return nil
}

type HallFilters struct {
	ActiveOnly bool
}

type HallRepository interface {
	Create(ctx context.Context, hall *Hall) error
	GetAll(ctx context.Context, filters HallFilters) ([]*Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
	Update(ctx context.Context, hall *Hall) error
	Delete(ctx context.Context, id int) error
}
