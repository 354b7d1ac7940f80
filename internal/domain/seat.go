package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type SeatType string

const (
	SeatStandard SeatType = "standard"
	SeatVIP      SeatType = "vip"
	SeatDisabled SeatType = "disabled"
	SeatTaken    SeatType = "taken"
)

// Valid reports whether t can be stored in a hall layout.
// "taken" only exists in a resolved seat grid.
func (t SeatType) Valid() bool {
	return t == SeatStandard || t == SeatVIP || t == SeatDisabled
}

// SeatCell is a single position of a hall layout.
type SeatCell struct {
	Type  SeatType         `json:"type" validate:"required,seat_type"`
	Price *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0,money"`
}

// UnmarshalJSON accepts both the bare type form ("vip") and the
// object form ({"type": "vip", "price": 800}).
func (c *SeatCell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var t string
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}

		*c = SeatCell{Type: SeatType(t)}
		return nil
	}

	var obj struct {
		Type  SeatType         `json:"type"`
		Price *decimal.Decimal `json:"price"`
	}

	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("seat cell must be a type string or an object: %w", err)
	}

	*c = SeatCell{Type: obj.Type, Price: obj.Price}
	return nil
}

// Layout is a hall seat grid. The outer slice is rows, the inner one seats,
// both 0-based.
type Layout [][]SeatCell

// Fits reports whether the layout stays within the given hall dimensions.
func (l Layout) Fits(rows, seatsPerRow int) bool {
	if len(l) > rows {
		return false
	}

	for _, row := range l {
		if len(row) > seatsPerRow {
			return false
		}
	}

	return true
}

// ParseLayout decodes a stored layout document. A nil or "null" document
// yields a nil layout and no error.
func ParseLayout(raw []byte) (Layout, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var layout Layout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, err
	}

	return layout, nil
}

// canonical form only, leading zeros are rejected
var seatIDRgx = regexp.MustCompile(`^[1-9]\d{0,3}-[1-9]\d{0,3}$`)

// SeatID identifies a seat by its 1-based row and seat number.
type SeatID struct {
	Row    int
	Number int
}

func (s SeatID) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Number)
}

func ParseSeatID(s string) (SeatID, error) {
	if !seatIDRgx.MatchString(s) {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, s)
	}

	parts := strings.SplitN(s, "-", 2)

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, s)
	}

	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, s)
	}

	if row < 1 || number < 1 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, s)
	}

	return SeatID{Row: row, Number: number}, nil
}
