package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHall() *Hall {
	vip := decimal.NewFromInt(800)
	std := decimal.NewFromInt(500)

	return &Hall{
		ID:            1,
		Name:          "Hall 1",
		Rows:          2,
		SeatsPerRow:   2,
		StandardPrice: decimal.NewFromInt(500),
		VIPPrice:      decimal.NewFromInt(800),
		IsActive:      true,
		Layout: Layout{
			{{Type: SeatVIP, Price: &vip}, {Type: SeatVIP, Price: &vip}},
			{{Type: SeatStandard, Price: &std}, {Type: SeatStandard, Price: &std}},
		},
	}
}

func TestResolveSeatGrid(t *testing.T) {
	custom := decimal.NewFromInt(650)

	tests := []struct {
		name   string
		hall   func() *Hall
		booked []string
		want   SeatGrid
	}{
		{
			name:   "stored layout with booked seats",
			hall:   testHall,
			booked: []string{"1-1", "2-1"},
			want: SeatGrid{
				State: GridReady,
				Rows: [][]GridSeat{
					{
						{Type: SeatTaken, Row: 1, Number: 1, Price: decimal.NewFromInt(800)},
						{Type: SeatVIP, Row: 1, Number: 2, Price: decimal.NewFromInt(800)},
					},
					{
						{Type: SeatTaken, Row: 2, Number: 1, Price: decimal.NewFromInt(500)},
						{Type: SeatStandard, Row: 2, Number: 2, Price: decimal.NewFromInt(500)},
					},
				},
			},
		},
		{
			name: "default rectangle when no layout is stored",
			hall: func() *Hall {
				h := testHall()
				h.Layout = nil
				h.Rows = 1
				h.SeatsPerRow = 3
				h.StandardPrice = decimal.NewFromInt(450)
				return h
			},
			want: SeatGrid{
				State: GridReady,
				Rows: [][]GridSeat{
					{
						{Type: SeatStandard, Row: 1, Number: 1, Price: decimal.NewFromInt(450)},
						{Type: SeatStandard, Row: 1, Number: 2, Price: decimal.NewFromInt(450)},
						{Type: SeatStandard, Row: 1, Number: 3, Price: decimal.NewFromInt(450)},
					},
				},
			},
		},
		{
			name: "disabled seats cost nothing and unknown types become standard",
			hall: func() *Hall {
				h := testHall()
				h.Layout = Layout{
					{{Type: SeatDisabled, Price: &custom}, {Type: "balcony"}, {}, {Type: SeatVIP}},
				}
				h.Rows = 1
				h.SeatsPerRow = 4
				return h
			},
			want: SeatGrid{
				State: GridReady,
				Rows: [][]GridSeat{
					{
						{Type: SeatDisabled, Row: 1, Number: 1, Price: decimal.Zero},
						{Type: SeatStandard, Row: 1, Number: 2, Price: decimal.NewFromInt(500)},
						{Type: SeatStandard, Row: 1, Number: 3, Price: decimal.NewFromInt(500)},
						{Type: SeatVIP, Row: 1, Number: 4, Price: decimal.NewFromInt(800)},
					},
				},
			},
		},
		{
			name: "falls back to default prices when the hall has none",
			hall: func() *Hall {
				h := testHall()
				h.Layout = Layout{{{Type: SeatStandard}, {Type: SeatVIP}}}
				h.StandardPrice = decimal.Zero
				h.VIPPrice = decimal.Zero
				return h
			},
			want: SeatGrid{
				State: GridReady,
				Rows: [][]GridSeat{
					{
						{Type: SeatStandard, Row: 1, Number: 1, Price: DefaultStandardPrice},
						{Type: SeatVIP, Row: 1, Number: 2, Price: DefaultVIPPrice},
					},
				},
			},
		},
		{
			name: "malformed layout is not configured",
			hall: func() *Hall {
				h := testHall()
				h.Layout = nil
				h.LayoutMalformed = true
				return h
			},
			want: SeatGrid{State: GridNotConfigured, Rows: [][]GridSeat{}},
		},
		{
			name: "empty layout is not configured",
			hall: func() *Hall {
				h := testHall()
				h.Layout = Layout{}
				return h
			},
			want: SeatGrid{State: GridNotConfigured, Rows: [][]GridSeat{}},
		},
		{
			name: "zero dimensions without layout are not configured",
			hall: func() *Hall {
				h := testHall()
				h.Layout = nil
				h.Rows = 0
				return h
			},
			want: SeatGrid{State: GridNotConfigured, Rows: [][]GridSeat{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSeatGrid(tt.hall(), tt.booked)

			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Errorf("ResolveSeatGrid() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeatGridTotal(t *testing.T) {
	grid := ResolveSeatGrid(testHall(), nil)

	total, err := grid.Total([]string{"1-1", "2-1"})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1300)), "got %s", total)

	_, err = grid.Total([]string{"3-1"})
	assert.True(t, errors.Is(err, ErrUnknownSeat))

	_, err = grid.Total([]string{"1-9"})
	assert.True(t, errors.Is(err, ErrUnknownSeat))
}

func TestHallValidate(t *testing.T) {
	h := testHall()
	require.NoError(t, h.Validate())

	h.SeatsPerRow = 1
	assert.ErrorIs(t, h.Validate(), ErrInvalidLayout)

	h.Layout = nil
	assert.NoError(t, h.Validate())
}

func TestValidPrice(t *testing.T) {
	tests := []struct {
		price string
		want  bool
	}{
		{price: "0", want: true},
		{price: "500", want: true},
		{price: "12.5", want: true},
		{price: "99999999.99", want: true},
		{price: "100000000", want: false},
		{price: "-0.01", want: false},
		{price: "1.005", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPrice(decimal.RequireFromString(tt.price)))
		})
	}
}
