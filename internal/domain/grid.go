package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type GridState string

const (
	GridReady         GridState = "ready"
	GridNotConfigured GridState = "not_configured"
)

type GridSeat struct {
	Type   SeatType
	Row    int
	Number int
	Price  decimal.Decimal
}

func (s GridSeat) ID() string {
	return SeatID{Row: s.Row, Number: s.Number}.String()
}

type SeatGrid struct {
	State GridState
	Rows  [][]GridSeat
}

// ResolveSeatGrid builds the seat grid shown to clients for one screening.
// The stored layout wins when present; otherwise every position of the
// rows x seats-per-row rectangle is a standard seat. Seats contained in booked
// are reported as taken.
func ResolveSeatGrid(hall *Hall, booked []string) SeatGrid {
	if hall == nil || hall.LayoutMalformed {
		return SeatGrid{State: GridNotConfigured, Rows: [][]GridSeat{}}
	}

	layout := hall.Layout
	if layout == nil {
		layout = defaultLayout(hall.Rows, hall.SeatsPerRow)
	}

	if len(layout) == 0 {
		return SeatGrid{State: GridNotConfigured, Rows: [][]GridSeat{}}
	}

	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}

	rows := make([][]GridSeat, len(layout))
	for i, row := range layout {
		seats := make([]GridSeat, len(row))

		for j, cell := range row {
			seat := GridSeat{
				Type:   cell.Type,
				Row:    i + 1,
				Number: j + 1,
			}

			if !seat.Type.Valid() {
				seat.Type = SeatStandard
			}

			seat.Price = seatPrice(hall, seat.Type, cell.Price)

			if _, ok := taken[seat.ID()]; ok {
				seat.Type = SeatTaken
			}

			seats[j] = seat
		}

		rows[i] = seats
	}

	return SeatGrid{State: GridReady, Rows: rows}
}

// Seat looks up a seat by its identifier.
func (g SeatGrid) Seat(id SeatID) (GridSeat, bool) {
	if id.Row < 1 || id.Row > len(g.Rows) {
		return GridSeat{}, false
	}

	row := g.Rows[id.Row-1]
	if id.Number < 1 || id.Number > len(row) {
		return GridSeat{}, false
	}

	return row[id.Number-1], true
}

// Total sums the price of the given seats. Unknown and disabled seats are rejected.
func (g SeatGrid) Total(seats []string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, s := range seats {
		id, err := ParseSeatID(s)
		if err != nil {
			return decimal.Zero, err
		}

		seat, ok := g.Seat(id)
		if !ok || seat.Type == SeatDisabled {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownSeat, s)
		}

		total = total.Add(seat.Price)
	}

	return total, nil
}

func seatPrice(hall *Hall, t SeatType, cellPrice *decimal.Decimal) decimal.Decimal {
	if t == SeatDisabled {
		return decimal.Zero
	}

	if cellPrice != nil {
		return *cellPrice
	}

	if t == SeatVIP {
		if hall.VIPPrice.IsPositive() {
			return hall.VIPPrice
		}
		return DefaultVIPPrice
	}

	if hall.StandardPrice.IsPositive() {
		return hall.StandardPrice
	}

	return DefaultStandardPrice
}

func defaultLayout(rows, seatsPerRow int) Layout {
	if rows < 1 || seatsPerRow < 1 {
		return nil
	}

	layout := make(Layout, rows)
	for i := range layout {
		row := make([]SeatCell, seatsPerRow)
		for j := range row {
			row[j] = SeatCell{Type: SeatStandard}
		}
		layout[i] = row
	}

	return layout
}
